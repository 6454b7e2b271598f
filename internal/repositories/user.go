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

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, fname, lname, email, password_hash, role, birthday, city, state, zip, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, email)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, fname, lname, email, password_hash, role, birthday, city, state, zip, created_at, updated_at
		FROM users
		WHERE user_id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the generated id.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (fname, lname, email, password_hash, role, birthday, city, state, zip, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING user_id
	`
	args := []any{user.FName, user.LName, user.Email, user.PasswordHash, user.Role, user.Birthday, user.City, user.State, user.Zip}

	var userID uuid.UUID
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &userID, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", userID,
		"error", err,
	)

	return userID, err
}

// UpdateProfile updates the mutable profile fields of a user.
// The email, password and role are never touched here.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, fname, lname, birthday, city, state, zip string) error {
	const query = `
		UPDATE users
		SET fname = $2, lname = $3, birthday = $4, city = $5, state = $6, zip = $7, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, fname, lname, birthday, city, state, zip}

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
