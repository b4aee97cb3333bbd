package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     item_id         TEXT PRIMARY KEY,
//     item_name       TEXT,
//     affiliation     TEXT,
//     coupon          TEXT,
//     discount        NUMERIC,
//     item_brand      TEXT,
//     item_category   TEXT,
//     item_category2  TEXT,
//     item_category3  TEXT,
//     item_variant    TEXT,
//     price           NUMERIC,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ItemID        string    `json:"item_id" gorm:"column:item_id;primaryKey"`
	ItemName      string    `json:"item_name" gorm:"column:item_name;type:text"`
	Affiliation   string    `json:"affiliation" gorm:"column:affiliation;type:text"`
	Coupon        string    `json:"coupon,omitempty" gorm:"column:coupon;type:text"`
	Discount      float64   `json:"discount" gorm:"column:discount;type:numeric"`
	ItemBrand     string    `json:"item_brand" gorm:"column:item_brand;type:text"`
	ItemCategory  string    `json:"item_category" gorm:"column:item_category;type:text"`
	ItemCategory2 string    `json:"item_category2,omitempty" gorm:"column:item_category2;type:text"`
	ItemCategory3 string    `json:"item_category3,omitempty" gorm:"column:item_category3;type:text"`
	ItemVariant   string    `json:"item_variant,omitempty" gorm:"column:item_variant;type:text"`
	Price         float64   `json:"price" gorm:"column:price;type:numeric"`
	CreatedAt     time.Time `json:"-" gorm:"column:created_at"`
}

func (Product) TableName() string {
	return "products"
}
