package handlers

import (
	"context"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/jwt"
)

// Refresher defines the interface that the service must implement.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
}

// NewRefreshTokenHandler returns an HTTP handler that exchanges a valid
// refresh cookie for a new access token. The refresh token is never rotated.
// @Summary Refresh the access token
// @Description Reads the refresh token cookie and issues a new access token.
// @Tags user
// @Produce json
// @Success 200 {object} handlers.TokenResponse "New access token"
// @Failure 400 {object} handlers.MessageResponse "Missing or invalid refresh cookie"
// @Router /api/user/refresh_token [get]
func NewRefreshTokenHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(jwt.RefreshCookieName)
		if err != nil || cookie.Value == "" {
			writeMsg(w, http.StatusBadRequest, "No Cookies Saved")
			return
		}

		accessToken, err := svc.Refresh(r.Context(), cookie.Value)
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Verify error")
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{AccessToken: accessToken})
	}
}
