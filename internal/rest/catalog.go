package rest

import (
	"context"
	"myStore/domain"
	"myStore/pkg/logger"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type CatalogService interface {
	GetProduct(ctx context.Context, itemID string) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListPromotions(ctx context.Context) ([]domain.Promotion, error)
}

type CatalogHandler struct {
	catalogService CatalogService
	timeout        time.Duration
}

func NewCatalogHandler(catalogService CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		timeout:        10 * time.Second,
	}
}

func (h *CatalogHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.catalogService.ListProducts(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all products",
		"products": products,
	})
}

func (h *CatalogHandler) GetProductByItemID(c echo.Context) error {
	itemID := c.Param("itemId")

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.catalogService.GetProduct(ctx, itemID)
	if err != nil {
		if err.Error() == "product not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		if err.Error() == "invalid item id" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by item id",
		"product": product,
	})
}

func (h *CatalogHandler) GetAllPromotions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	promotions, err := h.catalogService.ListPromotions(ctx)
	if err != nil {
		logger.Error("Failed to find all promotions", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "successfully get all promotions",
		"promotions": promotions,
	})
}
