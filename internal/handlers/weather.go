package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/logger"
)

// WeatherProvider defines the interface that the service must implement.
type WeatherProvider interface {
	GetWeather(ctx context.Context, city, state, country string) (json.RawMessage, error)
}

// NewWeatherHandler returns an HTTP handler proxying current weather lookups.
// Responses are cached; the upstream JSON is passed through untouched.
// @Summary Current weather
// @Tags external
// @Produce json
// @Param city query string true "City"
// @Param state query string false "State"
// @Param country query string false "Country"
// @Success 200 {object} object "Current conditions"
// @Failure 400 {object} handlers.MessageResponse "Missing city parameter"
// @Router /api/weather [get]
func NewWeatherHandler(svc WeatherProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city := r.URL.Query().Get("city")
		state := r.URL.Query().Get("state")
		country := r.URL.Query().Get("country")
		if city == "" {
			writeMsg(w, http.StatusBadRequest, "City is required")
			return
		}

		payload, err := svc.GetWeather(r.Context(), city, state, country)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(payload)
	}
}
