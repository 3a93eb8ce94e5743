package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName string `gorm:"size:120" json:"full_name"`
	Email    string `gorm:"size:190;uniqueIndex" json:"email"`
	Password string `gorm:"size:120" json:"-"`
	Phone    string `gorm:"size:30" json:"phone,omitempty"`
	IsAdmin  bool   `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
