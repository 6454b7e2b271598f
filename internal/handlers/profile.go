package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ProfileUpdater defines the interface that the service must implement.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, fname, lname, birthday, city, state, zip string) error
}

// UpdateProfileRequest represents the mutable profile fields.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	FName    string `json:"fname"`
	LName    string `json:"lname"`
	Birthday string `json:"birthday"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

// NewGetProfileHandler returns an HTTP handler that fetches a user profile
// by id.
// @Summary Get a user profile
// @Tags user
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UserDB "User record"
// @Failure 400 {object} handlers.MessageResponse "Invalid id or unknown user"
// @Router /api/user/profile/{id} [get]
func NewGetProfileHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			switch err {
			case services.ErrUserDoesNotExist:
				writeMsg(w, http.StatusBadRequest, "User does not exist.")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMsg(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateProfileHandler returns an HTTP handler that updates the mutable
// profile fields of a user.
// @Summary Update a user profile
// @Tags user
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} handlers.MessageResponse "Updated User"
// @Failure 400 {object} handlers.MessageResponse "Invalid id or request body"
// @Router /api/user/profile/{id} [put]
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.UpdateProfile(r.Context(), userID, req.FName, req.LName, req.Birthday, req.City, req.State, req.Zip); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeMsg(w, http.StatusOK, "Updated User")
	}
}
