package rest

import (
	"context"
	"errors"
	"myStore/domain"
	"myStore/internal/middleware"
	storeredis "myStore/internal/repository/redis"
	"myStore/pkg/logger"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// PageLoadService is the page-load half of the session manager.
type PageLoadService interface {
	OnPageLoad(ctx context.Context, sessionID string) (domain.Identity, error)
}

// CartCounter is the slice of the cart service the storefront state needs.
type CartCounter interface {
	TotalQuantity(ctx context.Context, sessionID string) (int, error)
}

// DataLayerQueue is the consumer-side view of the event queue.
type DataLayerQueue interface {
	DrainUpTo(n int) []any
	Len() int
}

// StorefrontHandler serves the page bootstrap: the UI counters and flags the
// demo page binds to its visible elements.
type StorefrontHandler struct {
	pageLoad PageLoadService
	cart     CartCounter
	queue    DataLayerQueue
	timeout  time.Duration
}

func NewStorefrontHandler(pageLoad PageLoadService, cart CartCounter, queue DataLayerQueue) *StorefrontHandler {
	return &StorefrontHandler{
		pageLoad: pageLoad,
		cart:     cart,
		queue:    queue,
		timeout:  10 * time.Second,
	}
}

// State is the page-load hook. OnPageLoad runs first so the identity
// bootstrap record lands in the dataLayer before any page-view can fire.
func (h *StorefrontHandler) State(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID := middleware.SessionID(c)

	identity, err := h.pageLoad.OnPageLoad(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to run page load hook", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	count, err := h.cart.TotalQuantity(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to get cart count", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	loggedIn := identity.IsLoggedIn()
	loginLabel := "Login"
	if loggedIn {
		loginLabel = "Logout"
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"cart_count":         count,
		"logged_in":          loggedIn,
		"login_button_label": loginLabel,
		"wishlist_visible":   loggedIn,
	})
}

// DrainDataLayer plays the external analytics consumer for local development:
// it pops and returns queued records in publish order.
func (h *StorefrontHandler) DrainDataLayer(c echo.Context) error {
	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		limit = parsed
	}

	records := h.queue.DrainUpTo(limit)
	if records == nil {
		records = []any{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"records":   records,
		"remaining": h.queue.Len(),
	})
}
