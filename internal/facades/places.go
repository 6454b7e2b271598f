package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/getawayapp/getaway-backend/internal/logger"
)

const placesBaseURL = "https://places.googleapis.com/v1"

// PlacesHTTPFacade wraps the Google Places API (new, v1).
type PlacesHTTPFacade struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewPlacesHTTPFacade creates a new facade for the Google Places API.
func NewPlacesHTTPFacade(apiKey string) *PlacesHTTPFacade {
	return &PlacesHTTPFacade{
		client:  newHTTPClient(),
		apiKey:  apiKey,
		baseURL: placesBaseURL,
	}
}

// GetPlaceDetails fetches id, display name and photo references for a place.
func (f *PlacesHTTPFacade) GetPlaceDetails(ctx context.Context, placeID string) (json.RawMessage, error) {
	if f.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	reqURL := fmt.Sprintf("%s/places/%s?fields=id,displayName,photos&key=%s",
		f.baseURL, url.PathEscape(placeID), f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch place details", "place_id", placeID, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("places API error", "place_id", placeID, "status", resp.StatusCode)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("places API returned invalid JSON")
	}
	return json.RawMessage(body), nil
}

// GetPlacePhoto fetches photo bytes for a photo reference. Returns the image
// data and its content type.
func (f *PlacesHTTPFacade) GetPlacePhoto(ctx context.Context, photoReference string) ([]byte, string, error) {
	if f.apiKey == "" {
		return nil, "", ErrNoAPIKey
	}

	reqURL := fmt.Sprintf("%s/%s/media?key=%s&maxHeightPx=400&maxWidthPx=400",
		f.baseURL, photoReference, f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch place photo", "photo_reference", photoReference, "error", err)
		return nil, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("places media error", "photo_reference", photoReference, "status", resp.StatusCode)
		return nil, "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return body, contentType, nil
}
