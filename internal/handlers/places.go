package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/logger"
)

// PlacesProvider defines the interface that the service must implement.
type PlacesProvider interface {
	GetPlaceDetails(ctx context.Context, placeID string) (json.RawMessage, error)
	GetPlacePhoto(ctx context.Context, photoReference string) (data []byte, contentType string, err error)
}

// NewPlaceDetailsHandler returns an HTTP handler proxying place details
// lookups. The upstream JSON is passed through untouched.
// @Summary Place details
// @Tags external
// @Produce json
// @Param placeid query string true "Place id"
// @Success 200 {object} object "Place details"
// @Failure 400 {object} handlers.MessageResponse "Missing place id"
// @Router /api/places-details [get]
func NewPlaceDetailsHandler(svc PlacesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		placeID := r.URL.Query().Get("placeid")
		if placeID == "" {
			writeMsg(w, http.StatusBadRequest, "Place id is required")
			return
		}

		details, err := svc.GetPlaceDetails(r.Context(), placeID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(details)
	}
}

// NewPlacePhotoHandler returns an HTTP handler proxying place photo media.
// The upstream content type is passed through.
// @Summary Place photo
// @Tags external
// @Produce image/jpeg
// @Param photoreference query string true "Photo reference"
// @Success 200 {file} binary "Photo bytes"
// @Failure 400 {object} handlers.MessageResponse "Missing photo reference"
// @Router /api/places-pics [get]
func NewPlacePhotoHandler(svc PlacesProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photoReference := r.URL.Query().Get("photoreference")
		if photoReference == "" {
			writeMsg(w, http.StatusBadRequest, "Photo reference is required")
			return
		}

		data, contentType, err := svc.GetPlacePhoto(r.Context(), photoReference)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
