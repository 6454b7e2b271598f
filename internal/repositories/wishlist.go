package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type WishlistReadRepository struct {
	db *sqlx.DB
}

func NewWishlistReadRepository(db *sqlx.DB) *WishlistReadRepository {
	return &WishlistReadRepository{db: db}
}

// ListByEmail returns all wishlists owned by the given email with their trip
// references loaded.
func (r *WishlistReadRepository) ListByEmail(ctx context.Context, email string) ([]models.WishlistDB, error) {
	const query = `
		SELECT wishlist_id, list_name, email, created_at, updated_at
		FROM wishlists
		WHERE email = $1
		ORDER BY created_at
	`

	wishlists := []models.WishlistDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &wishlists, query, email)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", len(wishlists),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	for i := range wishlists {
		trips, err := r.tripRefs(ctx, wishlists[i].WishlistID)
		if err != nil {
			return nil, err
		}
		wishlists[i].Trips = trips
	}
	return wishlists, nil
}

// GetByID returns the wishlist with the given id, or nil when absent.
func (r *WishlistReadRepository) GetByID(ctx context.Context, wishlistID uuid.UUID) (*models.WishlistDB, error) {
	const query = `
		SELECT wishlist_id, list_name, email, created_at, updated_at
		FROM wishlists
		WHERE wishlist_id = $1
		LIMIT 1
	`

	var wishlist models.WishlistDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &wishlist, query, wishlistID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{wishlistID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	trips, err := r.tripRefs(ctx, wishlist.WishlistID)
	if err != nil {
		return nil, err
	}
	wishlist.Trips = trips
	return &wishlist, nil
}

// GetByEmailAndName returns the wishlist with the given owner and name,
// or nil when absent. Used for the per-owner uniqueness check.
func (r *WishlistReadRepository) GetByEmailAndName(ctx context.Context, email, listName string) (*models.WishlistDB, error) {
	const query = `
		SELECT wishlist_id, list_name, email, created_at, updated_at
		FROM wishlists
		WHERE email = $1 AND list_name = $2
		LIMIT 1
	`

	var wishlist models.WishlistDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &wishlist, query, email, listName)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email, listName},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// tripRefs loads the referenced trip ids of one wishlist. References carry no
// foreign key, so ids of deleted trips may still appear here.
func (r *WishlistReadRepository) tripRefs(ctx context.Context, wishlistID uuid.UUID) ([]uuid.UUID, error) {
	const query = `
		SELECT trip_id
		FROM wishlist_trips
		WHERE wishlist_id = $1
		ORDER BY added_at
	`

	trips := []uuid.UUID{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &trips, query, wishlistID)
	if err != nil {
		return nil, err
	}
	return trips, nil
}

type WishlistWriteRepository struct {
	db *sqlx.DB
}

func NewWishlistWriteRepository(db *sqlx.DB) *WishlistWriteRepository {
	return &WishlistWriteRepository{db: db}
}

// Save inserts a new wishlist with its initial trip references and returns
// the generated id.
func (r *WishlistWriteRepository) Save(ctx context.Context, wishlist *models.WishlistDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO wishlists (list_name, email, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING wishlist_id
	`
	args := []any{wishlist.ListName, wishlist.Email}

	var wishlistID uuid.UUID
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &wishlistID, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", wishlistID,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}

	for _, tripID := range wishlist.Trips {
		if err := r.AddTrip(ctx, wishlistID, tripID); err != nil {
			return uuid.Nil, err
		}
	}
	return wishlistID, nil
}

// Update renames a wishlist and replaces its trip references.
func (r *WishlistWriteRepository) Update(ctx context.Context, wishlistID uuid.UUID, listName string, trips []uuid.UUID) error {
	const query = `
		UPDATE wishlists
		SET list_name = $2, updated_at = NOW()
		WHERE wishlist_id = $1
	`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, wishlistID, listName)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{wishlistID, listName},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}

	if _, err := ext(ctx, r.db).ExecContext(ctx, `DELETE FROM wishlist_trips WHERE wishlist_id = $1`, wishlistID); err != nil {
		return err
	}
	for _, tripID := range trips {
		if err := r.AddTrip(ctx, wishlistID, tripID); err != nil {
			return err
		}
	}
	return nil
}

// AddTrip adds a trip reference to a wishlist. Adding the same trip twice is
// a no-op.
func (r *WishlistWriteRepository) AddTrip(ctx context.Context, wishlistID, tripID uuid.UUID) error {
	const query = `
		INSERT INTO wishlist_trips (wishlist_id, trip_id, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (wishlist_id, trip_id) DO NOTHING
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, wishlistID, tripID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{wishlistID, tripID},
		"error", err,
	)

	return err
}

// RemoveTrip removes a trip reference from a wishlist.
func (r *WishlistWriteRepository) RemoveTrip(ctx context.Context, wishlistID, tripID uuid.UUID) error {
	const query = `DELETE FROM wishlist_trips WHERE wishlist_id = $1 AND trip_id = $2`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, wishlistID, tripID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{wishlistID, tripID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a wishlist and its trip references.
func (r *WishlistWriteRepository) Delete(ctx context.Context, wishlistID uuid.UUID) error {
	if _, err := ext(ctx, r.db).ExecContext(ctx, `DELETE FROM wishlist_trips WHERE wishlist_id = $1`, wishlistID); err != nil {
		return err
	}

	const query = `DELETE FROM wishlists WHERE wishlist_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, wishlistID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{wishlistID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
