package domain

import (
	"time"
)

// Promotion is catalog reference data only, cart logic never touches it.
type Promotion struct {
	PromotionID   string    `json:"promotion_id" gorm:"column:promotion_id;primaryKey"`
	CreativeName  string    `json:"creative_name" gorm:"column:creative_name;type:text"`
	CreativeSlot  string    `json:"creative_slot" gorm:"column:creative_slot;type:text"`
	PromotionName string    `json:"promotion_name" gorm:"column:promotion_name;type:text"`
	CreatedAt     time.Time `json:"-" gorm:"column:created_at"`
}

func (Promotion) TableName() string {
	return "promotions"
}
