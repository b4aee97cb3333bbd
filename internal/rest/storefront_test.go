package rest

import (
	"context"
	"myStore/business/datalayer"
	"myStore/domain"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPageLoadService struct {
	identity domain.Identity
	err      error
	calls    int
}

func (m *mockPageLoadService) OnPageLoad(context.Context, string) (domain.Identity, error) {
	m.calls++
	return m.identity, m.err
}

type mockCartCounter struct {
	count int
}

func (m *mockCartCounter) TotalQuantity(context.Context, string) (int, error) {
	return m.count, nil
}

func TestState_LoggedOut(t *testing.T) {
	pageLoad := &mockPageLoadService{}
	sut := NewStorefrontHandler(pageLoad, &mockCartCounter{count: 0}, datalayer.NewQueue())

	c, rec := newCartContext(http.MethodGet, "/api/v1/storefront/state", "")

	err := sut.State(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, pageLoad.calls)
	assert.Contains(t, rec.Body.String(), `"logged_in":false`)
	assert.Contains(t, rec.Body.String(), `"login_button_label":"Login"`)
	assert.Contains(t, rec.Body.String(), `"wishlist_visible":false`)
}

func TestState_LoggedIn(t *testing.T) {
	pageLoad := &mockPageLoadService{identity: domain.Identity{UserID: "USR-1001", HashedEmail: "abc123"}}
	sut := NewStorefrontHandler(pageLoad, &mockCartCounter{count: 3}, datalayer.NewQueue())

	c, rec := newCartContext(http.MethodGet, "/api/v1/storefront/state", "")

	err := sut.State(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cart_count":3`)
	assert.Contains(t, rec.Body.String(), `"logged_in":true`)
	assert.Contains(t, rec.Body.String(), `"login_button_label":"Logout"`)
	assert.Contains(t, rec.Body.String(), `"wishlist_visible":true`)
}

func TestDrainDataLayer_PopsInOrder(t *testing.T) {
	queue := datalayer.NewQueue()
	queue.Publish(domain.LogoutEvent{Event: domain.EventLogout})
	queue.Publish(domain.IdentityRecord{UserID: "USR-1002", HashedEmail: "def456"})
	sut := NewStorefrontHandler(&mockPageLoadService{}, &mockCartCounter{}, queue)

	c, rec := newCartContext(http.MethodGet, "/api/v1/datalayer?limit=1", "")

	err := sut.DrainDataLayer(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), domain.EventLogout)
	assert.Contains(t, rec.Body.String(), `"remaining":1`)
	assert.Equal(t, 1, queue.Len())
}

func TestDrainDataLayer_InvalidLimit(t *testing.T) {
	sut := NewStorefrontHandler(&mockPageLoadService{}, &mockCartCounter{}, datalayer.NewQueue())

	c, rec := newCartContext(http.MethodGet, "/api/v1/datalayer?limit=zero", "")

	err := sut.DrainDataLayer(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDrainDataLayer_Empty(t *testing.T) {
	sut := NewStorefrontHandler(&mockPageLoadService{}, &mockCartCounter{}, datalayer.NewQueue())

	c, rec := newCartContext(http.MethodGet, "/api/v1/datalayer", "")

	err := sut.DrainDataLayer(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"records":[]`)
	assert.Contains(t, rec.Body.String(), `"remaining":0`)
}
