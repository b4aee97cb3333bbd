package catalog

import (
	"context"
	"errors"
	"fmt"
	"myStore/domain"
	"myStore/pkg/logger"
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FindProductByItemID(ctx context.Context, itemID string) (domain.Product, error)
	FindAllProducts(ctx context.Context) ([]domain.Product, error)
	FindAllPromotions(ctx context.Context) ([]domain.Promotion, error)
}

type catalogService struct {
	catalogRepo CatalogRepository
}

func NewCatalogService(catalogRepo CatalogRepository) *catalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

func (s *catalogService) GetProduct(ctx context.Context, itemID string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting product")
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	if itemID == "" {
		logger.Error("invalid item id")
		return domain.Product{}, errors.New("invalid item id")
	}

	product, err := s.catalogRepo.FindProductByItemID(ctx, itemID)
	if err != nil {
		logger.Error("Failed to find product", err)
		return domain.Product{}, err
	}

	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.catalogRepo.FindAllProducts(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *catalogService) ListPromotions(ctx context.Context) ([]domain.Promotion, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when listing promotions")
		return nil, fmt.Errorf("context error: %w", err)
	}

	promotions, err := s.catalogRepo.FindAllPromotions(ctx)
	if err != nil {
		logger.Error("Failed to find all promotions", err)
		return nil, err
	}

	return promotions, nil
}
