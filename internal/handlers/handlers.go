package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/jwt"
)

// MessageResponse is the generic message body returned by most endpoints.
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: Updated User
	Msg string `json:"msg"`
}

// TokenResponse carries a freshly issued access token.
// swagger:model TokenResponse
type TokenResponse struct {
	// Signed access token
	AccessToken string `json:"accesstoken"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageResponse{Msg: msg})
}

// setRefreshCookie stores the refresh token scoped to the refresh endpoint.
func setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.RefreshCookieName,
		Value:    token,
		Path:     jwt.RefreshCookiePath,
		HttpOnly: true,
	})
}

// clearRefreshCookie expires the refresh cookie. Nothing is invalidated
// server-side.
func clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     jwt.RefreshCookieName,
		Value:    "",
		Path:     jwt.RefreshCookiePath,
		HttpOnly: true,
		MaxAge:   -1,
	})
}
