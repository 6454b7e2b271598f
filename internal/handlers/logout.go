package handlers

import (
	"net/http"
)

// NewLogoutHandler returns an HTTP handler that clears the refresh cookie.
// Tokens are not invalidated server-side; the access token stays valid until
// it expires.
// @Summary Log out
// @Description Expires the refresh token cookie.
// @Tags user
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Logged out"
// @Router /api/user/logout [get]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearRefreshCookie(w)
		writeMsg(w, http.StatusOK, "Successfully logged out")
	}
}
