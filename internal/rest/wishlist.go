package rest

import (
	"context"
	"errors"
	"myStore/business/wishlist"
	"myStore/domain"
	"myStore/internal/middleware"
	storeredis "myStore/internal/repository/redis"
	"myStore/pkg/logger"
	"myStore/pkg/metrics"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type WishlistService interface {
	Add(ctx context.Context, sessionID, itemID string) (domain.WishlistEntry, error)
	Remove(ctx context.Context, sessionID, itemID string) (domain.WishlistEntry, bool, error)
	GetWishlist(ctx context.Context, sessionID string) (domain.Wishlist, error)
}

type WishlistHandler struct {
	wishlistService WishlistService
	validator       *validator.Validate
	timeout         time.Duration
}

func NewWishlistHandler(wishlistService WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		validator:       validator.New(),
		timeout:         10 * time.Second,
	}
}

type AddToWishlistRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

func (h *WishlistHandler) AddItem(c echo.Context) error {
	var req AddToWishlistRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest("Invalid request"))
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate add-to-wishlist request", err)
		return c.JSON(http.StatusBadRequest, fres.Response.StatusBadRequest(err.Error()))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID := middleware.SessionID(c)

	entry, err := h.wishlistService.Add(ctx, sessionID, req.ItemID)
	if err != nil {
		if errors.Is(err, wishlist.ErrAlreadyInWishlist) {
			// User-visible notice, not a server fault.
			return c.JSON(http.StatusConflict, ResponseError{Message: "This item is already in your wishlist!"})
		}
		logger.Error("Failed to add item to wishlist", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(http.StatusInternalServerError))
	}

	metrics.WishlistAddsTotal.Inc()

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(entry))
}

func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	itemID := c.Param("itemId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID := middleware.SessionID(c)

	entry, removed, err := h.wishlistService.Remove(ctx, sessionID, itemID)
	if err != nil {
		logger.Error("Failed to remove item from wishlist", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(http.StatusInternalServerError))
	}

	if !removed {
		return c.JSON(http.StatusOK, fres.Response.StatusOK("item not in wishlist"))
	}

	metrics.WishlistRemovesTotal.Inc()

	return c.JSON(http.StatusOK, fres.Response.StatusOK(entry))
}

func (h *WishlistHandler) GetWishlist(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID := middleware.SessionID(c)

	list, err := h.wishlistService.GetWishlist(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to get wishlist", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, fres.Response.StatusInternalServerError(http.StatusInternalServerError))
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(list.Entries))
}
