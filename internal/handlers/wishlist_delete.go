package handlers

import (
	"context"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/jwt"
	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/middlewares"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// WishlistDeleter defines the interface that the service must implement.
type WishlistDeleter interface {
	Delete(ctx context.Context, wishlistID uuid.UUID, actor *jwt.Claims) error
}

// NewDeleteWishlistHandler returns an HTTP handler that removes a wishlist
// and its trip references.
// @Summary Delete a wishlist
// @Tags wishlist
// @Produce json
// @Param id path string true "Wishlist id"
// @Success 200 {object} handlers.MessageResponse "Deleted Wishlist"
// @Failure 400 {object} handlers.MessageResponse "Invalid id"
// @Router /api/wishlist/removewishlist/{id} [delete]
func NewDeleteWishlistHandler(svc WishlistDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		wishlistID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid wishlist id")
			return
		}

		claims := middlewares.GetClaimsFromContext(r.Context())
		if err := svc.Delete(r.Context(), wishlistID, claims); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeMsg(w, http.StatusOK, "Deleted Wishlist")
	}
}
