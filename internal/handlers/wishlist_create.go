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
	"github.com/google/uuid"
)

// WishlistCreator defines the interface that the service must implement.
type WishlistCreator interface {
	Create(ctx context.Context, wishlist *models.WishlistDB, actor *jwt.Claims) (uuid.UUID, error)
}

// CreateWishlistRequest represents the JSON body for wishlist creation.
// swagger:model CreateWishlistRequest
type CreateWishlistRequest struct {
	// List name, unique per owner
	// required: true
	// default: Summer 2026
	ListName string `json:"list_name"`

	// Owner email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Referenced trip ids
	Trips []uuid.UUID `json:"trips"`
}

// NewCreateWishlistHandler returns an HTTP handler that stores a new wishlist.
// @Summary Create a wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Param createWishlistRequest body handlers.CreateWishlistRequest true "Wishlist"
// @Success 200 {object} handlers.MessageResponse "Created a wishlist"
// @Failure 400 {object} handlers.MessageResponse "Duplicate name for owner / invalid request"
// @Router /api/wishlist/createlist [post]
func NewCreateWishlistHandler(svc WishlistCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateWishlistRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMsg(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		wishlist := models.WishlistDB{
			ListName: req.ListName,
			Email:    req.Email,
			Trips:    req.Trips,
		}

		claims := middlewares.GetClaimsFromContext(r.Context())
		if _, err := svc.Create(r.Context(), &wishlist, claims); err != nil {
			switch err {
			case services.ErrWishlistExists:
				writeMsg(w, http.StatusBadRequest, "A wishlist with this name already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeMsg(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeMsg(w, http.StatusOK, "Created a wishlist")
	}
}
