package cart

import (
	"context"
	"errors"
	"fmt"
	"myStore/domain"
	"myStore/pkg/logger"
)

// CartRepository contract interface
type CartRepository interface {
	Get(ctx context.Context, sessionID string) (domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart domain.Cart) error
}

// ProductFinder contract interface
type ProductFinder interface {
	FindProductByItemID(ctx context.Context, itemID string) (domain.Product, error)
}

// Publisher contract interface
type Publisher interface {
	Publish(record any)
}

type cartService struct {
	cartRepo    CartRepository
	catalogRepo ProductFinder
	publisher   Publisher
}

func NewCartService(cartRepo CartRepository, catalogRepo ProductFinder, publisher Publisher) *cartService {
	return &cartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
		publisher:   publisher,
	}
}

// Add puts one unit of a product into the cart. A new item is appended with
// the supplied list placement; a repeat add only increments quantity and
// keeps the placement captured on the first add. The emitted add_to_cart
// record carries only the affected line item, valued at price times its
// post-mutation quantity.
func (s *cartService) Add(ctx context.Context, sessionID, itemID string, placement *domain.ListPlacement) (domain.CartMutation, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when adding to cart")
		return domain.CartMutation{}, fmt.Errorf("context error: %w", err)
	}

	if itemID == "" {
		logger.Error("invalid item id")
		return domain.CartMutation{}, errors.New("invalid item id")
	}

	product, err := s.catalogRepo.FindProductByItemID(ctx, itemID)
	if err != nil {
		logger.Error("Failed to find product for cart add", err)
		return domain.CartMutation{}, err
	}

	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to load cart", err)
		return domain.CartMutation{}, err
	}

	line := cart.Find(itemID)
	if line == nil {
		newLine := domain.CartLineItem{
			Product:  product,
			Quantity: 1,
		}
		if placement != nil {
			newLine.ItemListID = placement.ItemListID
			newLine.ItemListName = placement.ItemListName
			index := placement.Index
			newLine.Index = &index
		}
		cart.Items = append(cart.Items, newLine)
		line = &cart.Items[len(cart.Items)-1]
	} else {
		line.Quantity++
	}

	if err := s.cartRepo.Save(ctx, sessionID, cart); err != nil {
		logger.Error("Failed to save cart", err)
		return domain.CartMutation{}, err
	}

	s.publisher.Publish(domain.CartEvent{
		Event: domain.EventAddToCart,
		Ecommerce: domain.CartEcommerce{
			Currency: domain.CurrencyUSD,
			Value:    line.Price * float64(line.Quantity),
			Items:    []domain.CartLineItem{*line},
		},
	})

	logger.Info("item added to cart", "item_id", itemID, "quantity", line.Quantity)

	return domain.CartMutation{
		Mutated:       true,
		Item:          *line,
		TotalQuantity: cart.TotalQuantity(),
	}, nil
}

// Remove takes one unit of a product out of the cart. The line item is
// deleted once its quantity would reach zero. Removing an item that is not in
// the cart is a no-op: no write, no event. The emitted record always values
// the single unit just removed, regardless of how many remain.
func (s *cartService) Remove(ctx context.Context, sessionID, itemID string) (domain.CartMutation, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when removing from cart")
		return domain.CartMutation{}, fmt.Errorf("context error: %w", err)
	}

	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to load cart", err)
		return domain.CartMutation{}, err
	}

	line := cart.Find(itemID)
	if line == nil {
		return domain.CartMutation{TotalQuantity: cart.TotalQuantity()}, nil
	}

	removedUnit := *line
	removedUnit.Quantity = 1

	if line.Quantity > 1 {
		line.Quantity--
	} else {
		for i := range cart.Items {
			if cart.Items[i].ItemID == itemID {
				cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
				break
			}
		}
	}

	if err := s.cartRepo.Save(ctx, sessionID, cart); err != nil {
		logger.Error("Failed to save cart", err)
		return domain.CartMutation{}, err
	}

	s.publisher.Publish(domain.CartEvent{
		Event: domain.EventRemoveFromCart,
		Ecommerce: domain.CartEcommerce{
			Currency: domain.CurrencyUSD,
			Value:    removedUnit.Price,
			Items:    []domain.CartLineItem{removedUnit},
		},
	})

	logger.Info("item removed from cart", "item_id", itemID)

	return domain.CartMutation{
		Mutated:       true,
		Item:          removedUnit,
		TotalQuantity: cart.TotalQuantity(),
	}, nil
}

// GetCart returns the ordered line items for rendering.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to load cart", err)
		return domain.Cart{}, err
	}

	return cart, nil
}

// TotalQuantity drives the visible nav counter. 0 for a cart that was never
// written.
func (s *cartService) TotalQuantity(ctx context.Context, sessionID string) (int, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("Failed to load cart", err)
		return 0, err
	}

	return cart.TotalQuantity(), nil
}
