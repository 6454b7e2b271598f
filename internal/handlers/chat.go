package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/getawayapp/getaway-backend/internal/logger"
)

// ChatProvider defines the interface that the service must implement.
type ChatProvider interface {
	GetFunPlaces(ctx context.Context, location string) (string, error)
	GetTripSuggestions(ctx context.Context, location string) (string, error)
}

// ChatRequest represents the JSON body for chat-backed lookups.
// swagger:model ChatRequest
type ChatRequest struct {
	// Location of interest
	// required: true
	// default: Austin, TX
	Location string `json:"location"`
}

// FunPlacesResponse carries the generated list of places.
// swagger:model FunPlacesResponse
type FunPlacesResponse struct {
	FunPlaces string `json:"funPlaces"`
}

// TripSuggestionsResponse carries the generated travel windows.
// swagger:model TripSuggestionsResponse
type TripSuggestionsResponse struct {
	TripSuggestions string `json:"tripSuggestions"`
}

// NewFunPlacesHandler returns an HTTP handler for chat-generated sightseeing
// suggestions.
// @Summary Fun places for a location
// @Tags external
// @Accept json
// @Produce json
// @Param chatRequest body handlers.ChatRequest true "Location"
// @Success 200 {object} handlers.FunPlacesResponse "Generated suggestions"
// @Failure 400 {object} handlers.MessageResponse "Missing location"
// @Router /api/chatgpt/fun-places [post]
func NewFunPlacesHandler(svc ChatProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Location == "" {
			writeMsg(w, http.StatusBadRequest, "Location is required")
			return
		}

		funPlaces, err := svc.GetFunPlaces(r.Context(), req.Location)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, FunPlacesResponse{FunPlaces: funPlaces})
	}
}

// NewTripSuggestionsHandler returns an HTTP handler for chat-generated travel
// window suggestions.
// @Summary Best travel windows for a location
// @Tags external
// @Accept json
// @Produce json
// @Param chatRequest body handlers.ChatRequest true "Location"
// @Success 200 {object} handlers.TripSuggestionsResponse "Generated suggestions"
// @Failure 400 {object} handlers.MessageResponse "Missing location"
// @Router /api/chatgpt/trip-suggestion [post]
func NewTripSuggestionsHandler(svc ChatProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Location == "" {
			writeMsg(w, http.StatusBadRequest, "Location is required")
			return
		}

		tripSuggestions, err := svc.GetTripSuggestions(r.Context(), req.Location)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeMsg(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, TripSuggestionsResponse{TripSuggestions: tripSuggestions})
	}
}
