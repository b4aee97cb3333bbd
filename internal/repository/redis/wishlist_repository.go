package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"myStore/domain"

	"github.com/redis/go-redis/v9"
)

type WishlistRepository struct {
	client *redis.Client
}

func NewWishlistRepository(client *redis.Client) *WishlistRepository {
	return &WishlistRepository{
		client: client,
	}
}

func (r *WishlistRepository) Get(ctx context.Context, sessionID string) (domain.Wishlist, error) {
	key := wishlistKey(sessionID)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Wishlist{}, nil
	}
	if err != nil {
		return domain.Wishlist{}, fmt.Errorf("%w: get wishlist: %v", ErrStorageUnavailable, err)
	}

	var entries []domain.WishlistEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return domain.Wishlist{}, fmt.Errorf("failed to unmarshal wishlist: %w", err)
	}

	return domain.Wishlist{Entries: entries}, nil
}

func (r *WishlistRepository) Save(ctx context.Context, sessionID string, wishlist domain.Wishlist) error {
	key := wishlistKey(sessionID)

	data, err := json.Marshal(wishlist.Entries)
	if err != nil {
		return fmt.Errorf("failed to marshal wishlist: %w", err)
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: save wishlist: %v", ErrStorageUnavailable, err)
	}

	return nil
}

func wishlistKey(sessionID string) string {
	return fmt.Sprintf("mystore:wishlist:%s", sessionID)
}
