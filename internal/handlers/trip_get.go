package handlers

import (
	"context"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TripGetter defines the interface that the service must implement.
type TripGetter interface {
	Get(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error)
}

// NewGetTripHandler returns an HTTP handler that fetches a trip by id.
// @Summary Get a trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip id"
// @Success 200 {object} models.TripDB "Trip"
// @Failure 404 {object} handlers.MessageResponse "Trip not found"
// @Router /api/trips/getaway/{id} [get]
func NewGetTripHandler(svc TripGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid trip id")
			return
		}

		trip, err := svc.Get(r.Context(), tripID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if trip == nil {
			writeMsg(w, http.StatusNotFound, "Trip not found")
			return
		}

		writeJSON(w, http.StatusOK, trip)
	}
}
