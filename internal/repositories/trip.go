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

const tripColumns = `
	trip_id, user_email, location_address, trip_start, trip_end,
	stay_expense, travel_expense, car_expense, other_expense,
	image_url, is_favorite, activities, created_at, updated_at
`

type TripReadRepository struct {
	db *sqlx.DB
}

func NewTripReadRepository(db *sqlx.DB) *TripReadRepository {
	return &TripReadRepository{db: db}
}

// ListByEmail returns all trips owned by the given email, favorites only when
// favoriteOnly is set. An unknown email yields an empty slice, not an error.
func (r *TripReadRepository) ListByEmail(ctx context.Context, email string, favoriteOnly bool) ([]models.TripDB, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE user_email = $1
	`
	if favoriteOnly {
		query += ` AND is_favorite = TRUE`
	}
	query += ` ORDER BY created_at`

	trips := []models.TripDB{}
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &trips, query, email)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", len(trips),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return trips, nil
}

// GetByID returns the trip with the given id, or nil when absent.
func (r *TripReadRepository) GetByID(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE trip_id = $1
		LIMIT 1
	`

	var trip models.TripDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &trip, query, tripID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{tripID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

type TripWriteRepository struct {
	db *sqlx.DB
}

func NewTripWriteRepository(db *sqlx.DB) *TripWriteRepository {
	return &TripWriteRepository{db: db}
}

// Save inserts a new trip and returns the generated id.
func (r *TripWriteRepository) Save(ctx context.Context, trip *models.TripDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO trips (user_email, location_address, trip_start, trip_end,
			stay_expense, travel_expense, car_expense, other_expense,
			image_url, is_favorite, activities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING trip_id
	`
	args := []any{
		trip.UserEmail, trip.LocationAddress, trip.TripStart, trip.TripEnd,
		trip.StayExpense, trip.TravelExpense, trip.CarExpense, trip.OtherExpense,
		trip.ImageURL, trip.IsFavorite, trip.Activities,
	}

	var tripID uuid.UUID
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &tripID, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", tripID,
		"error", err,
	)

	return tripID, err
}

// Update replaces all mutable fields of a trip.
func (r *TripWriteRepository) Update(ctx context.Context, tripID uuid.UUID, trip *models.TripDB) error {
	const query = `
		UPDATE trips
		SET user_email = $2, location_address = $3, trip_start = $4, trip_end = $5,
			stay_expense = $6, travel_expense = $7, car_expense = $8, other_expense = $9,
			image_url = $10, is_favorite = $11, activities = $12, updated_at = NOW()
		WHERE trip_id = $1
	`
	args := []any{
		tripID,
		trip.UserEmail, trip.LocationAddress, trip.TripStart, trip.TripEnd,
		trip.StayExpense, trip.TravelExpense, trip.CarExpense, trip.OtherExpense,
		trip.ImageURL, trip.IsFavorite, trip.Activities,
	}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes a trip. References held by wishlists are left in place.
func (r *TripWriteRepository) Delete(ctx context.Context, tripID uuid.UUID) error {
	const query = `DELETE FROM trips WHERE trip_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, tripID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", query,
		"args", []any{tripID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
