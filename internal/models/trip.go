package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ActivityList is a free-form activity list stored as a JSONB column.
type ActivityList []string

// Value implements driver.Valuer.
func (a ActivityList) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner.
func (a *ActivityList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = nil
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("unsupported type for ActivityList")
	}
}

// TripDB represents a trip row in the database.
// The owner is referenced by denormalized email, not a foreign key.
type TripDB struct {
	TripID          uuid.UUID    `json:"_id" db:"trip_id"`                          // Unique trip identifier
	UserEmail       string       `json:"user_email" db:"user_email"`                // Owner's email
	LocationAddress string       `json:"location_address" db:"location_address"`    // Destination address
	TripStart       string       `json:"trip_start" db:"trip_start"`                // Start date
	TripEnd         string       `json:"trip_end" db:"trip_end"`                    // End date
	StayExpense     float64      `json:"stay_expense" db:"stay_expense"`            // Lodging expense
	TravelExpense   float64      `json:"travel_expense" db:"travel_expense"`        // Travel expense
	CarExpense      float64      `json:"car_expense" db:"car_expense"`              // Car expense
	OtherExpense    float64      `json:"other_expense" db:"other_expense"`          // Other expense
	ImageURL        string       `json:"image_url" db:"image_url"`                  // Image reference
	IsFavorite      bool         `json:"isFavorite" db:"is_favorite"`               // Favorite flag
	Activities      ActivityList `json:"activities" db:"activities"`                // Free-form activity list
	CreatedAt       time.Time    `json:"createdAt" db:"created_at"`                 // Creation timestamp
	UpdatedAt       time.Time    `json:"updatedAt" db:"updated_at"`                 // Last update timestamp
}
