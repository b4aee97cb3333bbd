package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"myStore/domain"

	"github.com/redis/go-redis/v9"
)

type CartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{
		client: client,
	}
}

// Get loads the cart for one browser session. A missing key is an empty cart,
// not an error, carts have no explicit creation step.
func (r *CartRepository) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	key := cartKey(sessionID)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%w: get cart: %v", ErrStorageUnavailable, err)
	}

	var items []domain.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return domain.Cart{}, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return domain.Cart{Items: items}, nil
}

// Save writes the full cart back under the session's key. The stored value is
// the ordered line item array, no TTL.
func (r *CartRepository) Save(ctx context.Context, sessionID string, cart domain.Cart) error {
	key := cartKey(sessionID)

	data, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: save cart: %v", ErrStorageUnavailable, err)
	}

	return nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("mystore:cart:%s", sessionID)
}
