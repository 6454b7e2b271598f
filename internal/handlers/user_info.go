package handlers

import (
	"context"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/middlewares"
	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/getawayapp/getaway-backend/internal/services"
	"github.com/google/uuid"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// NewUserInfoHandler returns an HTTP handler for the current user's record.
// The user id comes from the verified token claims, never from the request.
// @Summary Current user info
// @Description Returns the authenticated user's record. The password hash is never serialized.
// @Tags user
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.UserDB "User record"
// @Failure 401 {object} handlers.MessageResponse "Missing or invalid token"
// @Failure 400 {object} handlers.MessageResponse "User does not exist"
// @Router /api/user/infor [get]
func NewUserInfoHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			writeMsg(w, http.StatusUnauthorized, "Invalid Authentication")
			return
		}

		user, err := svc.GetUser(r.Context(), claims.UserID)
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
