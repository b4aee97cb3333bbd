package redis

import (
	"context"
	"fmt"
	"myStore/domain"

	"github.com/redis/go-redis/v9"
)

// IdentityRepository persists the two identity fields under separate keys.
// Writes and deletes always touch both, readers treat a partial pair as
// logged out.
type IdentityRepository struct {
	client *redis.Client
}

func NewIdentityRepository(client *redis.Client) *IdentityRepository {
	return &IdentityRepository{
		client: client,
	}
}

// Get returns the persisted identity. If either field is absent the result is
// the zero Identity, which reads as logged out.
func (r *IdentityRepository) Get(ctx context.Context, sessionID string) (domain.Identity, error) {
	vals, err := r.client.MGet(ctx, userIDKey(sessionID), hashedEmailKey(sessionID)).Result()
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: get identity: %v", ErrStorageUnavailable, err)
	}

	userID, okUser := vals[0].(string)
	hashedEmail, okEmail := vals[1].(string)
	if !okUser || !okEmail {
		return domain.Identity{}, nil
	}

	return domain.Identity{UserID: userID, HashedEmail: hashedEmail}, nil
}

// Save writes both fields. They are only ever written together.
func (r *IdentityRepository) Save(ctx context.Context, sessionID string, identity domain.Identity) error {
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, userIDKey(sessionID), identity.UserID, 0)
	pipe.Set(ctx, hashedEmailKey(sessionID), identity.HashedEmail, 0)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: save identity: %v", ErrStorageUnavailable, err)
	}

	return nil
}

// Clear removes both fields. They are only ever cleared together.
func (r *IdentityRepository) Clear(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, userIDKey(sessionID), hashedEmailKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: clear identity: %v", ErrStorageUnavailable, err)
	}

	return nil
}

func userIDKey(sessionID string) string {
	return fmt.Sprintf("mystore:identity:user_id:%s", sessionID)
}

func hashedEmailKey(sessionID string) string {
	return fmt.Sprintf("mystore:identity:hashed_email:%s", sessionID)
}
