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

// WishlistEditor defines the interface that the service must implement.
type WishlistEditor interface {
	Update(ctx context.Context, wishlistID uuid.UUID, listName string, trips []uuid.UUID, actor *jwt.Claims) (*models.WishlistDB, error)
	AddTrip(ctx context.Context, wishlistID, tripID uuid.UUID, actor *jwt.Claims) (*models.WishlistDB, error)
	RemoveTrip(ctx context.Context, wishlistID, tripID uuid.UUID, actor *jwt.Claims) (*models.WishlistDB, error)
}

// EditWishlistRequest represents the JSON body for wishlist edits.
// swagger:model EditWishlistRequest
type EditWishlistRequest struct {
	// New list name
	ListName string `json:"list_name"`

	// Replacement trip references
	Trips []uuid.UUID `json:"trips"`
}

// AddTripRequest represents the JSON body for adding a trip reference.
// swagger:model AddTripRequest
type AddTripRequest struct {
	// Trip id to add
	// required: true
	TripID uuid.UUID `json:"trip_id"`
}

// NewEditWishlistHandler returns an HTTP handler that renames a wishlist and
// replaces its trip references.
// @Summary Edit a wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Param id path string true "Wishlist id"
// @Param editWishlistRequest body handlers.EditWishlistRequest true "Edits"
// @Success 200 {object} models.WishlistDB "Updated wishlist"
// @Failure 404 {object} handlers.MessageResponse "Wishlist not found"
// @Router /api/wishlist/editlist/{id} [put]
func NewEditWishlistHandler(svc WishlistEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wishlistID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid wishlist id")
			return
		}

		var req EditWishlistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		claims := middlewares.GetClaimsFromContext(r.Context())
		wishlist, err := svc.Update(r.Context(), wishlistID, req.ListName, req.Trips, claims)
		if err != nil {
			switch err {
			case services.ErrWishlistNotFound:
				writeMsg(w, http.StatusNotFound, "Wishlist not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMsg(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, wishlist)
	}
}

// NewAddTripToWishlistHandler returns an HTTP handler that adds a trip
// reference to a wishlist. Adding the same trip twice is a no-op.
// @Summary Add a trip to a wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Param id path string true "Wishlist id"
// @Param addTripRequest body handlers.AddTripRequest true "Trip reference"
// @Success 200 {object} models.WishlistDB "Updated wishlist"
// @Failure 404 {object} handlers.MessageResponse "Wishlist not found"
// @Router /api/wishlist/addtrip/{id} [post]
func NewAddTripToWishlistHandler(svc WishlistEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wishlistID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid wishlist id")
			return
		}

		var req AddTripRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		claims := middlewares.GetClaimsFromContext(r.Context())
		wishlist, err := svc.AddTrip(r.Context(), wishlistID, req.TripID, claims)
		if err != nil {
			switch err {
			case services.ErrWishlistNotFound:
				writeMsg(w, http.StatusNotFound, "Wishlist not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMsg(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, wishlist)
	}
}

// NewRemoveTripFromWishlistHandler returns an HTTP handler that removes a
// trip reference from a wishlist.
// @Summary Remove a trip from a wishlist
// @Tags wishlist
// @Produce json
// @Param wishlistId path string true "Wishlist id"
// @Param tripId path string true "Trip id"
// @Success 200 {object} models.WishlistDB "Updated wishlist"
// @Failure 404 {object} handlers.MessageResponse "Wishlist not found"
// @Router /api/wishlist/{wishlistId}/remove-trip/{tripId} [delete]
func NewRemoveTripFromWishlistHandler(svc WishlistEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wishlistID, err := uuid.Parse(chi.URLParam(r, "wishlistId"))
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid wishlist id")
			return
		}

		tripID, err := uuid.Parse(chi.URLParam(r, "tripId"))
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid trip id")
			return
		}

		claims := middlewares.GetClaimsFromContext(r.Context())
		wishlist, err := svc.RemoveTrip(r.Context(), wishlistID, tripID, claims)
		if err != nil {
			switch err {
			case services.ErrWishlistNotFound:
				writeMsg(w, http.StatusNotFound, "Wishlist not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMsg(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, wishlist)
	}
}
