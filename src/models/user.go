package models

import (
	"hms/src/types"
)

// User is a staff account. Guests never log in; authentication exists only
// for front-desk and housekeeping staff.
type User struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Name         string `json:"name,omitempty"`
	Email        string `gorm:"uniqueIndex" json:"email,omitempty"`
	PasswordHash string `json:"-"`
	Role         string `json:"role,omitempty"`

	types.Timestamps
}
