package handlers

import (
	"context"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/jwt"
	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/middlewares"
	"github.com/getawayapp/getaway-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// TripDeleter defines the interface that the service must implement.
type TripDeleter interface {
	Delete(ctx context.Context, tripID uuid.UUID, actor *jwt.Claims) error
}

// NewDeleteTripHandler returns an HTTP handler that removes a trip. Wishlist
// references to the trip are not cleaned up.
// @Summary Delete a trip
// @Tags trips
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Trip id"
// @Success 200 {object} handlers.MessageResponse "Deleted Trip"
// @Failure 403 {object} handlers.MessageResponse "Owned by another user"
// @Router /api/trips/getaway/{id} [delete]
func NewDeleteTripHandler(svc TripDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tripID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid trip id")
			return
		}

		claims := middlewares.GetClaimsFromContext(r.Context())
		if err := svc.Delete(r.Context(), tripID, claims); err != nil {
			switch err {
			case services.ErrNotOwner:
				writeMsg(w, http.StatusForbidden, "Record is owned by another user")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMsg(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeMsg(w, http.StatusOK, "Deleted Trip")
	}
}
