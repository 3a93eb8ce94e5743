package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. Transitions are enforced by services.BookingService;
// cancelled and completed are terminal.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingCheckedIn  = "checked_in"
	BookingCheckedOut = "checked_out"
	BookingCancelled  = "cancelled"
	BookingCompleted  = "completed"
)

// Booking is never deleted; cancellation is a status, not a removal.
// RoomID stays nil when no specific room could be pinned at creation
// even though type-level capacity allowed the booking.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferenceCode string `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	UserID        uint   `gorm:"column:user_id;index" json:"user_id"`
	RoomTypeID    uint   `gorm:"column:room_type_id;index" json:"room_type_id"`
	RoomID        *uint  `gorm:"column:room_id;index" json:"room_id,omitempty"`

	CheckIn         time.Time `gorm:"column:check_in" json:"check_in"`
	CheckOut        time.Time `gorm:"column:check_out" json:"check_out"`
	Guests          int       `gorm:"column:guests" json:"guests"`
	TotalAmount     float64   `gorm:"column:total_amount;type:decimal(10,2)" json:"total_amount"`
	Status          string    `gorm:"size:32;index" json:"status"`
	SpecialRequests *string   `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User     User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
	Room     *Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// Nights is the whole-day difference between check-out and check-in.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
