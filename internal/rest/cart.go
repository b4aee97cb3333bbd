package rest

import (
	"context"
	"errors"
	"myStore/domain"
	"myStore/internal/middleware"
	storeredis "myStore/internal/repository/redis"
	"myStore/pkg/logger"
	"myStore/pkg/metrics"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CartService interface {
	Add(ctx context.Context, sessionID, itemID string, placement *domain.ListPlacement) (domain.CartMutation, error)
	Remove(ctx context.Context, sessionID, itemID string) (domain.CartMutation, error)
	GetCart(ctx context.Context, sessionID string) (domain.Cart, error)
	TotalQuantity(ctx context.Context, sessionID string) (int, error)
}

type CartHandler struct {
	cartService CartService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type AddToCartRequest struct {
	ItemID       string `json:"item_id" validate:"required"`
	ItemListID   string `json:"item_list_id,omitempty"`
	ItemListName string `json:"item_list_name,omitempty"`
	Index        *int   `json:"index,omitempty"`
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddToCartRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate add-to-cart request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var placement *domain.ListPlacement
	if req.ItemListID != "" {
		placement = &domain.ListPlacement{
			ItemListID:   req.ItemListID,
			ItemListName: req.ItemListName,
		}
		if req.Index != nil {
			placement.Index = *req.Index
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID := middleware.SessionID(c)

	result, err := h.cartService.Add(ctx, sessionID, req.ItemID, placement)
	if err != nil {
		logger.Error("Failed to add item to cart", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "invalid item id" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	metrics.CartAddsTotal.Inc()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    result.Item.ItemName + " added to cart!",
		"item":       result.Item,
		"cart_count": result.TotalQuantity,
	})
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	itemID := c.Param("itemId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID := middleware.SessionID(c)

	result, err := h.cartService.Remove(ctx, sessionID, itemID)
	if err != nil {
		logger.Error("Failed to remove item from cart", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	if !result.Mutated {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message":    "item not in cart",
			"cart_count": result.TotalQuantity,
		})
	}

	metrics.CartRemovesTotal.Inc()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "item removed from cart",
		"item":       result.Item,
		"cart_count": result.TotalQuantity,
	})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID := middleware.SessionID(c)

	cart, err := h.cartService.GetCart(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to get cart", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":      cart.Items,
		"cart_count": cart.TotalQuantity(),
	})
}

func (h *CartHandler) GetCount(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	sessionID := middleware.SessionID(c)

	total, err := h.cartService.TotalQuantity(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to get cart count", err)
		if errors.Is(err, storeredis.ErrStorageUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, ResponseError{Message: "storage unavailable"})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"cart_count": total,
	})
}
