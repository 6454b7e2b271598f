package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/getawayapp/getaway-backend/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, user *models.UserDB, password string) (accessToken, refreshToken string, err error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// First name
	// required: true
	// default: John
	FName string `json:"fname"`

	// Last name
	// default: Doe
	LName string `json:"lname"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, minimum 6 characters
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Birthday
	// default: 1990-01-02
	Birthday string `json:"birthday"`

	// City
	// default: Austin
	City string `json:"city"`

	// State
	// default: TX
	State string `json:"state"`

	// Zip code
	// default: 73301
	Zip string `json:"zip"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique email. The password is hashed before storing. Responds with an access token and sets the refresh token cookie.
// @Tags user
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.TokenResponse "Access token"
// @Failure 400 {object} handlers.MessageResponse "Duplicate email / short password / invalid request"
// @Router /api/user/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user := models.UserDB{
			FName:    req.FName,
			LName:    req.LName,
			Email:    req.Email,
			Birthday: req.Birthday,
			City:     req.City,
			State:    req.State,
			Zip:      req.Zip,
		}

		accessToken, refreshToken, err := svc.Register(r.Context(), &user, req.Password)
		if err != nil {
			switch err {
			case services.ErrEmailExists:
				writeMsg(w, http.StatusBadRequest, "This email already exists")
			case services.ErrPasswordTooShort:
				writeMsg(w, http.StatusBadRequest, "Password must be at least 6 characters long")
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
