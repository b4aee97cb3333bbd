package rest

import (
	"context"
	"errors"
	"myStore/domain"
	"myStore/internal/middleware"
	storeredis "myStore/internal/repository/redis"
	"myStore/pkg/logger"
	"myStore/pkg/metrics"
	"myStore/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type SessionService interface {
	Login(ctx context.Context, sessionID string) (domain.Identity, string, error)
	Logout(ctx context.Context, sessionID string) error
	Current(ctx context.Context, sessionID string) (domain.Identity, error)
}

type SessionHandler struct {
	sessionService SessionService
	timeout        time.Duration
}

func NewSessionHandler(sessionService SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		timeout:        10 * time.Second,
	}
}

// Login simulates the login button: a random directory identity is picked and
// persisted. reload tells the page to refresh so the button label and the
// wishlist link resync.
func (h *SessionHandler) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID := middleware.SessionID(c)

	identity, token, err := h.sessionService.Login(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to log in", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.SessionLoginsTotal.Inc()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":       "login successful",
		"user_id":       identity.UserID,
		"hashed_email":  identity.HashedEmail,
		"session_token": token,
		"reload":        true,
	})
}

func (h *SessionHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID := middleware.SessionID(c)

	if err := h.sessionService.Logout(ctx, sessionID); err != nil {
		logger.Error("Failed to log out", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "logout successful",
		"reload":  true,
	})
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID := middleware.SessionID(c)

	identity, err := h.sessionService.Current(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to read session", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	resp := map[string]interface{}{
		"logged_in": identity.IsLoggedIn(),
	}
	if identity.IsLoggedIn() {
		resp["user_id"] = identity.UserID
		resp["hashed_email"] = identity.HashedEmail
	}

	// A presented session token is introspected against the live identity so
	// the page can tell a stale token apart from a fresh one.
	if token := bearerToken(c); token != "" {
		claims, err := utils.ParseJWT(token)
		resp["token_valid"] = err == nil && identity.IsLoggedIn() && claims.UserID == identity.UserID
	}

	return c.JSON(http.StatusOK, resp)
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
