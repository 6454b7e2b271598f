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

const weatherBaseURL = "https://api.openweathermap.org/data/2.5"

// WeatherHTTPFacade wraps the OpenWeather current-conditions API.
type WeatherHTTPFacade struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewWeatherHTTPFacade creates a new facade for the OpenWeather API.
func NewWeatherHTTPFacade(apiKey string) *WeatherHTTPFacade {
	return &WeatherHTTPFacade{
		client:  newHTTPClient(),
		apiKey:  apiKey,
		baseURL: weatherBaseURL,
	}
}

// GetCurrent fetches current conditions for a location in metric units.
// State and country are optional and appended to the query when present.
func (f *WeatherHTTPFacade) GetCurrent(ctx context.Context, city, state, country string) (json.RawMessage, error) {
	if f.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	q := url.QueryEscape(city)
	if state != "" {
		q += "," + url.QueryEscape(state)
	}
	if country != "" {
		q += "," + url.QueryEscape(country)
	}

	reqURL := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric", f.baseURL, q, f.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch weather", "q", q, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("weather API error", "q", q, "status", resp.StatusCode)
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("weather API returned invalid JSON")
	}
	return json.RawMessage(body), nil
}
