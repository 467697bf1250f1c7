package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the account a recipe belongs to. Recipe code never mutates users;
// they are created through registration only.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Image        string    `gorm:"size:255" json:"image"`
	PasswordHash string    `gorm:"not null" json:"-"`
}
