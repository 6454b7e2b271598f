package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/services"
)

// Loginer defines the interface that the service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, err error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Authenticate a user
// @Description Verifies the email/password pair. Responds with an access token and sets the refresh token cookie.
// @Tags user
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} handlers.TokenResponse "Access token"
// @Failure 400 {object} handlers.MessageResponse "Unknown email or wrong password"
// @Router /api/user/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		accessToken, refreshToken, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch err {
			case services.ErrUserDoesNotExist:
				writeMsg(w, http.StatusBadRequest, "User does not exist.")
			case services.ErrIncorrectPassword:
				writeMsg(w, http.StatusBadRequest, "Incorrect password.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMsg(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		setRefreshCookie(w, refreshToken)
		writeJSON(w, http.StatusOK, TokenResponse{AccessToken: accessToken})
	}
}
