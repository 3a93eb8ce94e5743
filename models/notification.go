package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	NotificationPending = "pending"
	NotificationSent    = "sent"
)

const (
	ChannelEmail = "email"
	ChannelInApp = "in_app"
)

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID    uint       `gorm:"column:user_id;index" json:"user_id"`
	BookingID *uint      `gorm:"column:booking_id;index" json:"booking_id,omitempty"`
	Channel   string     `gorm:"size:20" json:"channel"`
	Title     string     `gorm:"size:200" json:"title"`
	Message   string     `gorm:"type:text" json:"message"`
	Status    string     `gorm:"size:20;index" json:"status"`
	SentAt    *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User    User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Booking *Booking `gorm:"foreignKey:BookingID" json:"booking,omitempty"`
}
