package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getawayapp/getaway-backend/internal/logger"
)

// WeatherCacheReader caches raw weather payloads.
type WeatherCacheReader interface {
	GetWeather(ctx context.Context, city, state, country string) ([]byte, error)
	SetWeather(ctx context.Context, city, state, country string, payload []byte) error
}

// WeatherClient fetches current conditions from the weather API.
type WeatherClient interface {
	GetCurrent(ctx context.Context, city, state, country string) (json.RawMessage, error)
}

// PlacesClient fetches place details and photos from the places API.
type PlacesClient interface {
	GetPlaceDetails(ctx context.Context, placeID string) (json.RawMessage, error)
	GetPlacePhoto(ctx context.Context, photoReference string) ([]byte, string, error)
}

// ChatClient produces a completion for a single prompt.
type ChatClient interface {
	Complete(ctx context.Context, prompt string, temperature float64) (string, error)
}

// ExternalService proxies third-party lookups: place details and photos,
// current weather (cached), and chat-generated travel suggestions.
type ExternalService struct {
	cacheRepo WeatherCacheReader
	weather   WeatherClient
	places    PlacesClient
	chat      ChatClient
}

// NewExternalService creates a new ExternalService.
func NewExternalService(cacheRepo WeatherCacheReader, weather WeatherClient, places PlacesClient, chat ChatClient) *ExternalService {
	return &ExternalService{
		cacheRepo: cacheRepo,
		weather:   weather,
		places:    places,
		chat:      chat,
	}
}

// GetWeather returns current conditions for a location, serving from the
// cache when possible and populating it best-effort on a miss.
func (s *ExternalService) GetWeather(ctx context.Context, city, state, country string) (json.RawMessage, error) {
	if s.cacheRepo != nil {
		if payload, err := s.cacheRepo.GetWeather(ctx, city, state, country); err == nil {
			return json.RawMessage(payload), nil
		}
	}

	payload, err := s.weather.GetCurrent(ctx, city, state, country)
	if err != nil {
		logger.Log.Errorw("failed to fetch weather", "city", city, "error", err)
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetWeather(ctx, city, state, country, payload); err != nil {
			logger.Log.Errorw("failed to cache weather", "city", city, "error", err)
		}
	}
	return payload, nil
}

// GetPlaceDetails returns place details for a place id.
func (s *ExternalService) GetPlaceDetails(ctx context.Context, placeID string) (json.RawMessage, error) {
	details, err := s.places.GetPlaceDetails(ctx, placeID)
	if err != nil {
		logger.Log.Errorw("failed to fetch place details", "place_id", placeID, "error", err)
		return nil, err
	}
	return details, nil
}

// GetPlacePhoto returns photo bytes and content type for a photo reference.
func (s *ExternalService) GetPlacePhoto(ctx context.Context, photoReference string) ([]byte, string, error) {
	data, contentType, err := s.places.GetPlacePhoto(ctx, photoReference)
	if err != nil {
		logger.Log.Errorw("failed to fetch place photo", "photo_reference", photoReference, "error", err)
		return nil, "", err
	}
	return data, contentType, nil
}

// GetFunPlaces asks the chat model for must-see places at a location.
func (s *ExternalService) GetFunPlaces(ctx context.Context, location string) (string, error) {
	prompt := fmt.Sprintf("List 5 popular and must see places to visit in %s.", location)

	reply, err := s.chat.Complete(ctx, prompt, -1)
	if err != nil {
		logger.Log.Errorw("failed to fetch fun places", "location", location, "error", err)
		return "", err
	}
	return reply, nil
}

// GetTripSuggestions asks the chat model for the best travel windows at a
// location.
func (s *ExternalService) GetTripSuggestions(ctx context.Context, location string) (string, error) {
	prompt := fmt.Sprintf(
		"Please list the 3 best time to travel to %s, based on cost, experience (events/seasonality), and popularity. "+
			"Return JSON with keys: reason, season, monthIntervals, description.", location)

	reply, err := s.chat.Complete(ctx, prompt, 0.2)
	if err != nil {
		logger.Log.Errorw("failed to fetch trip suggestions", "location", location, "error", err)
		return "", err
	}
	return reply, nil
}
