package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/jwt"
	"github.com/getawayapp/getaway-backend/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthErrorResponse is the JSON body returned on rejected requests.
type AuthErrorResponse struct {
	Msg string `json:"msg"`
}

// AuthMiddleware returns a middleware that verifies the access token from the
// Authorization header and attaches the resolved claims to the request
// context. Requests without a valid token never reach the wrapped handler.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(AuthErrorResponse{Msg: "Invalid Authentication"})
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(AuthErrorResponse{Msg: err.Error()})
				return
			}

			next.ServeHTTP(w, r.WithContext(setClaimsToContext(ctx, claims)))
		})
	}
}

// claimsContextKey is an unexported type for claims keys in context
type claimsContextKey struct{}

var claimsKey = claimsContextKey{}

// setClaimsToContext stores verified claims in the context
func setClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the verified claims from the context.
// Returns nil if the request did not pass the auth middleware.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}
