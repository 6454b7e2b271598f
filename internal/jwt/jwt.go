package jwt

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Cookie settings for the refresh token. The path scopes the cookie so the
// browser only sends it to the refresh endpoint.
const (
	RefreshCookieName = "refreshtoken"
	RefreshCookiePath = "/api/user/refresh_token"
)

// Error variables
var (
	ErrNoSecret     = errors.New("signing secret is not set")
	ErrMissingToken = errors.New("authorization token missing")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the token payload: the user id plus standard expiry claims.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// JWT signs and verifies tokens for a single kind (access or refresh).
// Access and refresh tokens use separate instances with distinct secrets,
// so a token of one kind never verifies under the other.
type JWT struct {
	secretKey []byte
	exp       time.Duration
}

// New creates a JWT instance for one token kind.
func New(secretKey string, expiration time.Duration) (*JWT, error) {
	if secretKey == "" {
		return nil, ErrNoSecret
	}
	return &JWT{
		secretKey: []byte(secretKey),
		exp:       expiration,
	}, nil
}

// Generate creates a signed token carrying the given userID.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Validate checks the token signature and expiry.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetClaims parses the token string and returns its claims if valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return nil, errors.New("user id not found in token")
	}
	return claims, nil
}

// GetTokenFromRequest extracts the raw token string from the Authorization
// header. The client sends the token as-is, without a scheme prefix.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}
	return authHeader, nil
}

// GetTokenFromCookie extracts the refresh token from the request cookie.
func (j *JWT) GetTokenFromCookie(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrMissingToken
	}
	return cookie.Value, nil
}
