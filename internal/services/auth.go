package services

import (
	"context"
	"errors"

	"github.com/getawayapp/getaway-backend/internal/jwt"
	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrEmailExists       = errors.New("this email already exists")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters long")
	ErrUserDoesNotExist  = errors.New("user does not exist")
	ErrIncorrectPassword = errors.New("incorrect password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (uuid.UUID, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, fname, lname, birthday, city, state, zip string) error
}

// TokenIssuer defines an interface for issuing signed tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// TokenVerifier defines an interface for verifying signed tokens.
type TokenVerifier interface {
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RefreshTokener issues and verifies refresh tokens.
type RefreshTokener interface {
	TokenIssuer
	TokenVerifier
}

// AuthService handles registration, login, token refresh and profiles.
type AuthService struct {
	reader     UserReader
	writer     UserWriter
	accessJWT  TokenIssuer
	refreshJWT RefreshTokener
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, accessJWT TokenIssuer, refreshJWT RefreshTokener) *AuthService {
	return &AuthService{
		reader:     reader,
		writer:     writer,
		accessJWT:  accessJWT,
		refreshJWT: refreshJWT,
	}
}

// Register creates a new user and returns an access/refresh token pair.
// The password arrives in clear and is hashed here; user.PasswordHash is
// ignored on input.
func (svc *AuthService) Register(ctx context.Context, user *models.UserDB, password string) (accessToken, refreshToken string, err error) {
	if len(password) < 6 {
		return "", "", ErrPasswordTooShort
	}

	existing, err := svc.reader.GetByEmail(ctx, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", "", err
	}
	if existing != nil {
		logger.Log.Errorw("user already exists", "email", user.Email)
		return "", "", ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", "", err
	}
	user.PasswordHash = string(hashedPassword)

	userID, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return "", "", err
	}

	return svc.issueTokenPair(ctx, userID)
}

// Login authenticates a user and returns an access/refresh token pair.
func (svc *AuthService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", "", ErrIncorrectPassword
	}

	return svc.issueTokenPair(ctx, user.UserID)
}

// Refresh verifies a refresh token and issues a new access token only.
// The refresh token itself is never rotated or invalidated.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (accessToken string, err error) {
	claims, err := svc.refreshJWT.GetClaims(ctx, refreshToken)
	if err != nil {
		logger.Log.Errorw("refresh token verification failed", "err", err)
		return "", err
	}

	accessToken, err = svc.accessJWT.Generate(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", err
	}
	return accessToken, nil
}

// GetUser returns the user with the given id.
func (svc *AuthService) GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserDoesNotExist
	}
	return user, nil
}

// UpdateProfile updates the mutable profile fields of a user.
func (svc *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, fname, lname, birthday, city, state, zip string) error {
	if err := svc.writer.UpdateProfile(ctx, userID, fname, lname, birthday, city, state, zip); err != nil {
		logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
		return err
	}
	return nil
}

func (svc *AuthService) issueTokenPair(ctx context.Context, userID uuid.UUID) (accessToken, refreshToken string, err error) {
	accessToken, err = svc.accessJWT.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}

	refreshToken, err = svc.refreshJWT.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}
	return accessToken, refreshToken, nil
}
