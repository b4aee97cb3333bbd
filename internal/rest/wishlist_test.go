package rest

import (
	"context"
	"myStore/business/wishlist"
	"myStore/domain"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockWishlistService struct {
	addFn    func(ctx context.Context, sessionID, itemID string) (domain.WishlistEntry, error)
	removeFn func(ctx context.Context, sessionID, itemID string) (domain.WishlistEntry, bool, error)
	getFn    func(ctx context.Context, sessionID string) (domain.Wishlist, error)
}

func (m *mockWishlistService) Add(ctx context.Context, sessionID, itemID string) (domain.WishlistEntry, error) {
	return m.addFn(ctx, sessionID, itemID)
}

func (m *mockWishlistService) Remove(ctx context.Context, sessionID, itemID string) (domain.WishlistEntry, bool, error) {
	return m.removeFn(ctx, sessionID, itemID)
}

func (m *mockWishlistService) GetWishlist(ctx context.Context, sessionID string) (domain.Wishlist, error) {
	return m.getFn(ctx, sessionID)
}

func TestWishlistAddItem_Success(t *testing.T) {
	svc := &mockWishlistService{
		addFn: func(_ context.Context, _, itemID string) (domain.WishlistEntry, error) {
			return domain.WishlistEntry{ItemID: itemID, ItemName: "Wireless Headphones", Price: 149.99}, nil
		},
	}
	sut := NewWishlistHandler(svc)

	c, rec := newCartContext(http.MethodPost, "/api/v1/wishlist", `{"item_id":"HDPH-220"}`)

	err := sut.AddItem(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wireless Headphones")
}

func TestWishlistAddItem_DuplicateIsConflict(t *testing.T) {
	svc := &mockWishlistService{
		addFn: func(context.Context, string, string) (domain.WishlistEntry, error) {
			return domain.WishlistEntry{}, wishlist.ErrAlreadyInWishlist
		},
	}
	sut := NewWishlistHandler(svc)

	c, rec := newCartContext(http.MethodPost, "/api/v1/wishlist", `{"item_id":"HDPH-220"}`)

	err := sut.AddItem(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "This item is already in your wishlist!")
}

func TestWishlistRemoveItem_Absent(t *testing.T) {
	svc := &mockWishlistService{
		removeFn: func(context.Context, string, string) (domain.WishlistEntry, bool, error) {
			return domain.WishlistEntry{}, false, nil
		},
	}
	sut := NewWishlistHandler(svc)

	c, rec := newCartContext(http.MethodDelete, "/api/v1/wishlist/HDPH-220", "")
	c.SetParamNames("itemId")
	c.SetParamValues("HDPH-220")

	err := sut.RemoveItem(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "item not in wishlist")
}
