package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/jwt"
	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/middlewares"
	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/google/uuid"
)

// TripCreator defines the interface that the service must implement.
type TripCreator interface {
	Create(ctx context.Context, trip *models.TripDB, actor *jwt.Claims) (uuid.UUID, error)
}

// NewCreateTripHandler returns an HTTP handler that stores a new trip.
// @Summary Create a trip
// @Tags trips
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param trip body models.TripDB true "Trip"
// @Success 200 {object} handlers.MessageResponse "Created a planned trip"
// @Failure 400 {object} handlers.MessageResponse "Missing image or invalid request"
// @Router /api/trips/getaway-trip [post]
func NewCreateTripHandler(svc TripCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var trip models.TripDB
		if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if trip.ImageURL == "" {
			writeMsg(w, http.StatusBadRequest, "No image upload")
			return
		}

		claims := middlewares.GetClaimsFromContext(r.Context())
		if _, err := svc.Create(r.Context(), &trip, claims); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeMsg(w, http.StatusOK, "Created a planned trip")
	}
}
