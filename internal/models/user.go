package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"id" db:"user_id"`                 // Primary key
	FName        string    `json:"fname" db:"fname"`                // First name
	LName        string    `json:"lname" db:"lname"`                // Last name
	Email        string    `json:"email" db:"email"`                // Unique email, lookup key
	PasswordHash string    `json:"-" db:"password_hash"`            // Hashed password, never serialized
	Role         int       `json:"role" db:"role"`                  // Authorization level, stored only
	Birthday     string    `json:"birthday" db:"birthday"`          // Birth date
	City         string    `json:"city" db:"city"`                  // City
	State        string    `json:"state" db:"state"`                // State
	Zip          string    `json:"zip" db:"zip"`                    // Zip code, string to keep leading zeros
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`       // Last update timestamp
}
