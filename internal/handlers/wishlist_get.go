package handlers

import (
	"context"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// WishlistGetter defines the interface that the service must implement.
type WishlistGetter interface {
	Lists(ctx context.Context, email string) ([]models.WishlistDB, error)
	Get(ctx context.Context, wishlistID uuid.UUID) (*models.WishlistDB, error)
}

// NewListWishlistsHandler returns an HTTP handler listing wishlists by owner
// email.
// @Summary List wishlists by owner
// @Tags wishlist
// @Produce json
// @Param email query string true "Owner email"
// @Success 200 {array} models.WishlistDB "Wishlists"
// @Failure 400 {object} handlers.MessageResponse "Missing email"
// @Router /api/wishlist/getlists [get]
func NewListWishlistsHandler(svc WishlistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")
		if email == "" {
			writeMsg(w, http.StatusBadRequest, "Email is required")
			return
		}

		wishlists, err := svc.Lists(r.Context(), email)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if wishlists == nil {
			wishlists = []models.WishlistDB{}
		}

		writeJSON(w, http.StatusOK, wishlists)
	}
}

// NewGetWishlistHandler returns an HTTP handler that fetches a wishlist by id.
// @Summary Get a wishlist
// @Tags wishlist
// @Produce json
// @Param id path string true "Wishlist id"
// @Success 200 {object} models.WishlistDB "Wishlist"
// @Failure 404 {object} handlers.MessageResponse "Wishlist not found"
// @Router /api/wishlist/spec-wishlist/{id} [get]
func NewGetWishlistHandler(svc WishlistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wishlistID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid wishlist id")
			return
		}

		wishlist, err := svc.Get(r.Context(), wishlistID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if wishlist == nil {
			writeMsg(w, http.StatusNotFound, "Wishlist not found")
			return
		}

		writeJSON(w, http.StatusOK, wishlist)
	}
}
