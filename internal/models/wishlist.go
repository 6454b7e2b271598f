package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistDB represents a wishlist row plus its trip references.
// References are kept in a join table without a foreign key to trips, so
// deleting a trip does not cascade into wishlists.
type WishlistDB struct {
	WishlistID uuid.UUID   `json:"_id" db:"wishlist_id"`      // Unique wishlist identifier
	ListName   string      `json:"list_name" db:"list_name"`  // Wishlist name, unique per owner
	Email      string      `json:"email" db:"email"`          // Owner's email
	Trips      []uuid.UUID `json:"trips" db:"-"`              // Referenced trip ids
	CreatedAt  time.Time   `json:"createdAt" db:"created_at"` // Creation timestamp
	UpdatedAt  time.Time   `json:"updatedAt" db:"updated_at"` // Last update timestamp
}
