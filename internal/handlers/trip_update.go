package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/jwt"
	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/middlewares"
	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/getawayapp/getaway-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TripUpdater defines the interface that the service must implement.
type TripUpdater interface {
	Update(ctx context.Context, tripID uuid.UUID, trip *models.TripDB, actor *jwt.Claims) error
}

// NewUpdateTripHandler returns an HTTP handler that replaces a trip's fields.
// @Summary Update a trip
// @Tags trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip id"
// @Param trip body models.TripDB true "Trip"
// @Success 200 {object} handlers.MessageResponse "Updated Trip"
// @Failure 403 {object} handlers.MessageResponse "Owned by another user"
// @Router /api/trips/getaway/{id} [put]
func NewUpdateTripHandler(svc TripUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid trip id")
			return
		}

		var trip models.TripDB
		if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		claims := middlewares.GetClaimsFromContext(r.Context())
		if err := svc.Update(r.Context(), tripID, &trip, claims); err != nil {
			switch err {
			case services.ErrNotOwner:
				writeMsg(w, http.StatusForbidden, "Record is owned by another user")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMsg(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeMsg(w, http.StatusOK, "Updated Trip")
	}
}
