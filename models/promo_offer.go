package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// PromoOffer is a redeemable discount code. UsedCount only ever grows;
// redemption is a server-side increment so concurrent uses cannot lose
// updates.
type PromoOffer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code             string   `gorm:"size:40;uniqueIndex" json:"code"`
	Name             string   `gorm:"size:120" json:"name"`
	Description      string   `gorm:"type:text" json:"description"`
	DiscountType     string   `gorm:"column:discount_type;size:20" json:"discount_type"`
	DiscountValue    float64  `gorm:"column:discount_value;type:decimal(10,2)" json:"discount_value"`
	MinBookingAmount *float64 `gorm:"column:min_booking_amount;type:decimal(10,2)" json:"min_booking_amount,omitempty"`
	MaxDiscount      *float64 `gorm:"column:max_discount;type:decimal(10,2)" json:"max_discount,omitempty"`

	ValidFrom  time.Time `gorm:"column:valid_from" json:"valid_from"`
	ValidUntil time.Time `gorm:"column:valid_until" json:"valid_until"`
	UsageLimit *int      `gorm:"column:usage_limit" json:"usage_limit,omitempty"`
	UsedCount  int       `gorm:"column:used_count;default:0" json:"used_count"`
	Active     bool      `gorm:"index" json:"active"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
