package postgres

import (
	"context"
	"errors"
	"fmt"
	"myStore/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogRepository serves the static product/promotion reference data. Rows
// are seeded once at startup and only read after that.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

func (r *CatalogRepository) FindProductByItemID(ctx context.Context, itemID string) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	var product domain.Product

	err := r.DB.WithContext(ctx).Where("item_id = ?", itemID).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, errors.New("product not found")
		}
		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

func (r *CatalogRepository) FindAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).Order("item_id").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

func (r *CatalogRepository) FindAllPromotions(ctx context.Context) ([]domain.Promotion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var promotions []domain.Promotion
	err := r.DB.WithContext(ctx).Order("promotion_id").Find(&promotions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find promotions: %w", err)
	}

	return promotions, nil
}

// Seed inserts the static catalog, skipping rows that already exist so
// restarts are idempotent.
func (r *CatalogRepository) Seed(ctx context.Context, products []domain.Product, promotions []domain.Promotion) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(products) > 0 {
		err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
		if err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	}

	if len(promotions) > 0 {
		err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&promotions).Error
		if err != nil {
			return fmt.Errorf("failed to seed promotions: %w", err)
		}
	}

	return nil
}
