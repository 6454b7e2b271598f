package handlers

import (
	"context"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/models"
)

// TripLister defines the interface that the service must implement.
type TripLister interface {
	List(ctx context.Context, email string, favoriteOnly bool) ([]models.TripDB, error)
}

// NewListTripsHandler returns an HTTP handler listing trips by owner email.
// With favoriteOnly set the handler serves the favorites route.
// @Summary List trips by owner
// @Tags trips
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {array} models.TripDB "Trips"
// @Failure 400 {object} handlers.MessageResponse "Missing email"
// @Router /api/trips/getaway-trip [get]
func NewListTripsHandler(svc TripLister, favoriteOnly bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			writeMsg(w, http.StatusBadRequest, "Email is required")
			return
		}

		trips, err := svc.List(r.Context(), email, favoriteOnly)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if trips == nil {
			trips = []models.TripDB{}
		}

		writeJSON(w, http.StatusOK, trips)
	}
}
