package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

const (
	PaymentMethodCard     = "card"
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "bank_transfer"
)

// Payment is one attempt to pay for a booking; a booking may carry
// several attempts.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID      uint           `gorm:"column:booking_id;index" json:"booking_id"`
	Amount         float64        `gorm:"type:decimal(10,2)" json:"amount"`
	Method         string         `gorm:"size:32" json:"method"`
	Status         string         `gorm:"size:32;index" json:"status"`
	TransactionRef *string        `gorm:"column:transaction_ref;size:64" json:"transaction_ref,omitempty"`
	Details        datatypes.JSON `gorm:"column:details" json:"details,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Booking Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}
