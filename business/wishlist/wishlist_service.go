package wishlist

import (
	"context"
	"errors"
	"fmt"
	"myStore/domain"
	"myStore/pkg/logger"
)

// ErrAlreadyInWishlist is surfaced to the shopper as a notice, duplicate adds
// are never silently merged.
var ErrAlreadyInWishlist = errors.New("already in wishlist")

// WishlistRepository contract interface
type WishlistRepository interface {
	Get(ctx context.Context, sessionID string) (domain.Wishlist, error)
	Save(ctx context.Context, sessionID string, wishlist domain.Wishlist) error
}

// ProductFinder contract interface
type ProductFinder interface {
	FindProductByItemID(ctx context.Context, itemID string) (domain.Product, error)
}

// Publisher contract interface
type Publisher interface {
	Publish(record any)
}

type wishlistService struct {
	wishlistRepo WishlistRepository
	catalogRepo  ProductFinder
	publisher    Publisher
}

func NewWishlistService(wishlistRepo WishlistRepository, catalogRepo ProductFinder, publisher Publisher) *wishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		catalogRepo:  catalogRepo,
		publisher:    publisher,
	}
}

// Add appends a product snapshot. A duplicate add fails with
// ErrAlreadyInWishlist and performs no mutation, no write, no event.
func (s *wishlistService) Add(ctx context.Context, sessionID, itemID string) (domain.WishlistEntry, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when adding to wishlist")
		return domain.WishlistEntry{}, fmt.Errorf("context error: %w", err)
	}

	if itemID == "" {
		logger.Error("invalid item id")
		return domain.WishlistEntry{}, errors.New("invalid item id")
	}

	product, err := s.catalogRepo.FindProductByItemID(ctx, itemID)
	if err != nil {
		logger.Error("Failed to find product for wishlist add", err)
		return domain.WishlistEntry{}, err
	}

	wishlist, err := s.wishlistRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to load wishlist", err)
		return domain.WishlistEntry{}, err
	}

	if wishlist.Contains(itemID) {
		return domain.WishlistEntry{}, ErrAlreadyInWishlist
	}

	entry := domain.WishlistEntry(product)
	wishlist.Entries = append(wishlist.Entries, entry)

	if err := s.wishlistRepo.Save(ctx, sessionID, wishlist); err != nil {
		logger.Error("Failed to save wishlist", err)
		return domain.WishlistEntry{}, err
	}

	s.publisher.Publish(domain.WishlistEvent{
		Event: domain.EventAddToWishlist,
		Ecommerce: domain.WishlistEcommerce{
			Currency: domain.CurrencyUSD,
			Value:    product.Price,
			Items:    []domain.Product{product},
		},
	})

	logger.Info("item added to wishlist", "item_id", itemID)

	return entry, nil
}

// Remove deletes an entry by item id. Removing an absent item is a no-op:
// the returned bool reports whether anything was removed.
func (s *wishlistService) Remove(ctx context.Context, sessionID, itemID string) (domain.WishlistEntry, bool, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when removing from wishlist")
		return domain.WishlistEntry{}, false, fmt.Errorf("context error: %w", err)
	}

	wishlist, err := s.wishlistRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to load wishlist", err)
		return domain.WishlistEntry{}, false, err
	}

	var removed *domain.WishlistEntry
	for i := range wishlist.Entries {
		if wishlist.Entries[i].ItemID == itemID {
			entry := wishlist.Entries[i]
			removed = &entry
			wishlist.Entries = append(wishlist.Entries[:i], wishlist.Entries[i+1:]...)
			break
		}
	}

	if removed == nil {
		return domain.WishlistEntry{}, false, nil
	}

	if err := s.wishlistRepo.Save(ctx, sessionID, wishlist); err != nil {
		logger.Error("Failed to save wishlist", err)
		return domain.WishlistEntry{}, false, err
	}

	s.publisher.Publish(domain.WishlistEvent{
		Event: domain.EventRemoveFromWishlist,
		Ecommerce: domain.WishlistEcommerce{
			Currency: domain.CurrencyUSD,
			Value:    removed.Price,
			Items:    []domain.Product{domain.Product(*removed)},
		},
	})

	logger.Info("item removed from wishlist", "item_id", itemID)

	return *removed, true, nil
}

func (s *wishlistService) GetWishlist(ctx context.Context, sessionID string) (domain.Wishlist, error) {
	wishlist, err := s.wishlistRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to load wishlist", err)
		return domain.Wishlist{}, err
	}

	return wishlist, nil
}
