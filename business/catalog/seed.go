package catalog

import "myStore/domain"

// The static demo catalog. Seeded into the database at startup; the single
// source of truth for item metadata copied into carts and wishlists.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ItemID:       "GADGET-001",
			ItemName:     "Smart Home Hub",
			Affiliation:  "MyStore Online",
			ItemBrand:    "Nexa",
			ItemCategory: "Electronics",
			Price:        99.99,
		},
		{
			ItemID:        "HDPH-220",
			ItemName:      "Wireless Over-Ear Headphones",
			Affiliation:   "MyStore Online",
			Coupon:        "SUMMER10",
			Discount:      15.00,
			ItemBrand:     "Auralis",
			ItemCategory:  "Electronics",
			ItemCategory2: "Audio",
			ItemVariant:   "Matte Black",
			Price:         149.99,
		},
		{
			ItemID:        "SHIRT-042",
			ItemName:      "Classic Cotton Tee",
			Affiliation:   "MyStore Online",
			ItemBrand:     "Plainwear",
			ItemCategory:  "Apparel",
			ItemCategory2: "Men",
			ItemCategory3: "Shirts",
			ItemVariant:   "Navy / L",
			Price:         24.99,
		},
		{
			ItemID:        "MUG-007",
			ItemName:      "Stoneware Coffee Mug",
			Affiliation:   "MyStore Online",
			ItemBrand:     "Hearth & Co",
			ItemCategory:  "Home",
			ItemCategory2: "Kitchen",
			Price:         14.50,
		},
		{
			ItemID:       "BAG-310",
			ItemName:     "Canvas Weekender Bag",
			Affiliation:  "MyStore Online",
			ItemBrand:    "Trailhead",
			ItemCategory: "Accessories",
			ItemVariant:  "Olive",
			Price:        89.00,
		},
	}
}

func DefaultPromotions() []domain.Promotion {
	return []domain.Promotion{
		{
			PromotionID:   "PROMO-SUMMER24",
			CreativeName:  "summer_banner_wide",
			CreativeSlot:  "hero_top",
			PromotionName: "Summer Sale",
		},
		{
			PromotionID:   "PROMO-FREESHIP",
			CreativeName:  "freeship_ribbon",
			CreativeSlot:  "nav_bar",
			PromotionName: "Free Shipping Over $50",
		},
	}
}
