package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName identifies one browser across page loads. All cart,
	// wishlist, and identity state is scoped to it.
	SessionCookieName = "mystore_session"

	sessionContextKey = "sessionID"
)

// BrowserSession assigns a session id cookie on first visit and makes the id
// available to handlers. Two tabs of the same browser share one id, separate
// browsers get separate carts.
func BrowserSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var sessionID string

			cookie, err := c.Cookie(SessionCookieName)
			if err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			} else {
				sessionID = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(sessionContextKey, sessionID)
			return next(c)
		}
	}
}

// SessionID reads the browser session id set by BrowserSession.
func SessionID(c echo.Context) string {
	sessionID, _ := c.Get(sessionContextKey).(string)
	return sessionID
}
