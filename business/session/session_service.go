package session

import (
	"context"
	"fmt"
	"math/rand"
	"myStore/domain"
	"myStore/pkg/logger"
	"myStore/pkg/utils"
	"time"
)

// IdentityRepository contract interface
type IdentityRepository interface {
	Get(ctx context.Context, sessionID string) (domain.Identity, error)
	Save(ctx context.Context, sessionID string, identity domain.Identity) error
	Clear(ctx context.Context, sessionID string) error
}

// Publisher contract interface
type Publisher interface {
	Publish(record any)
}

type sessionService struct {
	identityRepo IdentityRepository
	publisher    Publisher
	directory    []domain.DirectoryUser
	rng          *rand.Rand
}

// NewSessionService builds the mock login manager. rng may be nil, in which
// case selection is seeded from the clock; tests pass a seeded source to make
// the picked sequence deterministic.
func NewSessionService(identityRepo IdentityRepository, publisher Publisher, directory []domain.DirectoryUser, rng *rand.Rand) *sessionService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &sessionService{
		identityRepo: identityRepo,
		publisher:    publisher,
		directory:    directory,
		rng:          rng,
	}
}

// Login picks one identity uniformly at random from the fixed directory and
// returns it with an informational session token. The currently logged-in
// identity is not excluded, re-login may reselect it. The caller is expected
// to refresh the page view afterwards.
func (s *sessionService) Login(ctx context.Context, sessionID string) (domain.Identity, string, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when logging in")
		return domain.Identity{}, "", fmt.Errorf("context error: %w", err)
	}

	pick := s.directory[s.rng.Intn(len(s.directory))]
	identity := domain.Identity{
		UserID:      pick.UserID,
		HashedEmail: pick.HashedEmail,
	}

	if err := s.identityRepo.Save(ctx, sessionID, identity); err != nil {
		logger.Error("Failed to persist identity", err)
		return domain.Identity{}, "", err
	}

	s.publisher.Publish(domain.LoginEvent{
		Event:       domain.EventLogin,
		LoginMethod: domain.LoginMethodEmail,
		UserID:      identity.UserID,
		HashedEmail: identity.HashedEmail,
	})

	// Informational session token; the mock login gates nothing.
	token, err := utils.GenerateJWT(identity.UserID, identity.HashedEmail)
	if err != nil {
		logger.Warn("Failed to generate session token", err)
	}

	logger.Info("user logged in", "user_id", identity.UserID)

	return identity, token, nil
}

// Logout clears both persisted identity fields and emits a bare logout
// event. The caller is expected to refresh the page view afterwards.
func (s *sessionService) Logout(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when logging out")
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.identityRepo.Clear(ctx, sessionID); err != nil {
		logger.Error("Failed to clear identity", err)
		return err
	}

	s.publisher.Publish(domain.LogoutEvent{
		Event: domain.EventLogout,
	})

	logger.Info("user logged out")

	return nil
}

// Current returns the persisted identity. A partial identity (either field
// missing) reads as logged out.
func (s *sessionService) Current(ctx context.Context, sessionID string) (domain.Identity, error) {
	identity, err := s.identityRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to read identity", err)
		return domain.Identity{}, err
	}

	return identity, nil
}

// OnPageLoad republishes the identity into the dataLayer before any page-view
// record can fire, so the tag manager can enrich it. Logged-out sessions
// publish nothing.
func (s *sessionService) OnPageLoad(ctx context.Context, sessionID string) (domain.Identity, error) {
	identity, err := s.identityRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to read identity on page load", err)
		return domain.Identity{}, err
	}

	if identity.IsLoggedIn() {
		s.publisher.Publish(domain.IdentityRecord{
			UserID:      identity.UserID,
			HashedEmail: identity.HashedEmail,
		})
	}

	return identity, nil
}
