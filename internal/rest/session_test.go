package rest

import (
	"context"
	"myStore/domain"
	"myStore/pkg/utils"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSessionService struct {
	identity domain.Identity
	token    string
	err      error
}

func (m *mockSessionService) Login(context.Context, string) (domain.Identity, string, error) {
	return m.identity, m.token, m.err
}

func (m *mockSessionService) Logout(context.Context, string) error {
	return m.err
}

func (m *mockSessionService) Current(context.Context, string) (domain.Identity, error) {
	return m.identity, m.err
}

func TestGetSession_LoggedOut(t *testing.T) {
	sut := NewSessionHandler(&mockSessionService{})

	c, rec := newCartContext(http.MethodGet, "/api/v1/session", "")

	err := sut.GetSession(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"logged_in":false`)
	assert.NotContains(t, rec.Body.String(), "token_valid")
}

func TestGetSession_ValidBearerToken(t *testing.T) {
	utils.InitJWT("test-secret")
	token, err := utils.GenerateJWT("USR-1001", "abc123")
	require.NoError(t, err)

	sut := NewSessionHandler(&mockSessionService{
		identity: domain.Identity{UserID: "USR-1001", HashedEmail: "abc123"},
	})

	c, rec := newCartContext(http.MethodGet, "/api/v1/session", "")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	err = sut.GetSession(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"logged_in":true`)
	assert.Contains(t, rec.Body.String(), `"token_valid":true`)
}

func TestGetSession_TokenForOtherIdentity(t *testing.T) {
	utils.InitJWT("test-secret")
	token, err := utils.GenerateJWT("USR-1005", "zzz999")
	require.NoError(t, err)

	sut := NewSessionHandler(&mockSessionService{
		identity: domain.Identity{UserID: "USR-1001", HashedEmail: "abc123"},
	})

	c, rec := newCartContext(http.MethodGet, "/api/v1/session", "")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	err = sut.GetSession(c)
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"token_valid":false`)
}

func TestGetSession_GarbageBearerToken(t *testing.T) {
	utils.InitJWT("test-secret")

	sut := NewSessionHandler(&mockSessionService{
		identity: domain.Identity{UserID: "USR-1001", HashedEmail: "abc123"},
	})

	c, rec := newCartContext(http.MethodGet, "/api/v1/session", "")
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")

	err := sut.GetSession(c)
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"token_valid":false`)
}
