package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"myStore/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockWishlistRepository struct {
	data  map[string][]byte
	saves int
	err   error
}

func newMockWishlistRepository() *mockWishlistRepository {
	return &mockWishlistRepository{data: make(map[string][]byte)}
}

func (m *mockWishlistRepository) Get(_ context.Context, sessionID string) (domain.Wishlist, error) {
	if m.err != nil {
		return domain.Wishlist{}, m.err
	}
	raw, ok := m.data[sessionID]
	if !ok {
		return domain.Wishlist{}, nil
	}
	var entries []domain.WishlistEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return domain.Wishlist{}, err
	}
	return domain.Wishlist{Entries: entries}, nil
}

func (m *mockWishlistRepository) Save(_ context.Context, sessionID string, wishlist domain.Wishlist) error {
	if m.err != nil {
		return m.err
	}
	raw, err := json.Marshal(wishlist.Entries)
	if err != nil {
		return err
	}
	m.data[sessionID] = raw
	m.saves++
	return nil
}

type mockCatalog struct {
	products map[string]domain.Product
}

func (m *mockCatalog) FindProductByItemID(_ context.Context, itemID string) (domain.Product, error) {
	product, ok := m.products[itemID]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return product, nil
}

type recordingPublisher struct {
	records []any
}

func (p *recordingPublisher) Publish(record any) {
	p.records = append(p.records, record)
}

func testCatalog() *mockCatalog {
	return &mockCatalog{products: map[string]domain.Product{
		"HDPH-220": {
			ItemID:       "HDPH-220",
			ItemName:     "Wireless Headphones",
			ItemBrand:    "SoundCore",
			ItemCategory: "Electronics",
			Coupon:       "SUMMER10",
			Discount:     15,
			Price:        149.99,
		},
		"SHIRT-042": {
			ItemID:       "SHIRT-042",
			ItemName:     "Organic Cotton Tee",
			ItemCategory: "Apparel",
			Price:        24.99,
		},
	}}
}

func TestAdd_AppendsSnapshot(t *testing.T) {
	repo := newMockWishlistRepository()
	pub := &recordingPublisher{}
	sut := NewWishlistService(repo, testCatalog(), pub)

	entry, err := sut.Add(context.Background(), "sess-1", "HDPH-220")
	require.NoError(t, err)
	assert.Equal(t, "HDPH-220", entry.ItemID)
	assert.Equal(t, "SUMMER10", entry.Coupon)

	wishlist, err := sut.GetWishlist(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Len(t, wishlist.Entries, 1)

	require.Len(t, pub.records, 1)
	event, ok := pub.records[0].(domain.WishlistEvent)
	require.True(t, ok)
	assert.Equal(t, domain.EventAddToWishlist, event.Event)
	assert.Equal(t, "USD", event.Ecommerce.Currency)
	assert.InDelta(t, 149.99, event.Ecommerce.Value, 0.001)
	require.Len(t, event.Ecommerce.Items, 1)
	assert.Equal(t, "Wireless Headphones", event.Ecommerce.Items[0].ItemName)
}

func TestAdd_DuplicateRejected(t *testing.T) {
	repo := newMockWishlistRepository()
	pub := &recordingPublisher{}
	sut := NewWishlistService(repo, testCatalog(), pub)

	_, err := sut.Add(context.Background(), "sess-1", "HDPH-220")
	require.NoError(t, err)
	savesBefore := repo.saves

	_, err = sut.Add(context.Background(), "sess-1", "HDPH-220")
	require.ErrorIs(t, err, ErrAlreadyInWishlist)

	// No second write, no second event, single entry survives.
	assert.Equal(t, savesBefore, repo.saves)
	assert.Len(t, pub.records, 1)

	wishlist, err := sut.GetWishlist(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Len(t, wishlist.Entries, 1)
}

func TestAdd_UnknownProduct(t *testing.T) {
	repo := newMockWishlistRepository()
	pub := &recordingPublisher{}
	sut := NewWishlistService(repo, testCatalog(), pub)

	_, err := sut.Add(context.Background(), "sess-1", "NOPE-000")
	require.Error(t, err)
	assert.Equal(t, "product not found", err.Error())
	assert.Empty(t, pub.records)
}

func TestRemove_DeletesEntry(t *testing.T) {
	repo := newMockWishlistRepository()
	pub := &recordingPublisher{}
	sut := NewWishlistService(repo, testCatalog(), pub)

	_, err := sut.Add(context.Background(), "sess-1", "HDPH-220")
	require.NoError(t, err)
	_, err = sut.Add(context.Background(), "sess-1", "SHIRT-042")
	require.NoError(t, err)

	removed, ok, err := sut.Remove(context.Background(), "sess-1", "HDPH-220")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "HDPH-220", removed.ItemID)

	wishlist, err := sut.GetWishlist(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Len(t, wishlist.Entries, 1)
	assert.Equal(t, "SHIRT-042", wishlist.Entries[0].ItemID)

	event := pub.records[len(pub.records)-1].(domain.WishlistEvent)
	assert.Equal(t, domain.EventRemoveFromWishlist, event.Event)
	assert.InDelta(t, 149.99, event.Ecommerce.Value, 0.001)
}

func TestRemove_AbsentIsNoOp(t *testing.T) {
	repo := newMockWishlistRepository()
	pub := &recordingPublisher{}
	sut := NewWishlistService(repo, testCatalog(), pub)

	_, ok, err := sut.Remove(context.Background(), "sess-1", "HDPH-220")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, repo.saves)
	assert.Empty(t, pub.records)
}
