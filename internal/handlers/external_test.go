package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceDetailsHandler(t *testing.T) {
	t.Run("missing place id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		req := httptest.NewRequest(http.MethodGet, "/api/places-details", nil)
		w := httptest.NewRecorder()

		NewPlaceDetailsHandler(NewMockPlacesProvider(ctrl)).ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("passes upstream JSON through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		details := json.RawMessage(`{"id":"place-1"}`)
		mockSvc := NewMockPlacesProvider(ctrl)
		mockSvc.EXPECT().GetPlaceDetails(gomock.Any(), "place-1").Return(details, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/places-details?placeid=place-1", nil)
		w := httptest.NewRecorder()

		NewPlaceDetailsHandler(mockSvc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"place-1"}`, w.Body.String())
	})
}

func TestPlacePhotoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlacesProvider(ctrl)
	mockSvc.EXPECT().GetPlacePhoto(gomock.Any(), "photo-ref").
		Return([]byte{0xFF, 0xD8}, "image/jpeg", nil)

	req := httptest.NewRequest(http.MethodGet, "/api/places-pics?photoreference=photo-ref", nil)
	w := httptest.NewRecorder()

	NewPlacePhotoHandler(mockSvc).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0xFF, 0xD8}, w.Body.Bytes())
}

func TestWeatherHandler(t *testing.T) {
	t.Run("missing city", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		req := httptest.NewRequest(http.MethodGet, "/api/weather?state=TX&country=US", nil)
		w := httptest.NewRecorder()

		NewWeatherHandler(NewMockWeatherProvider(ctrl)).ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("city alone is enough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		payload := json.RawMessage(`{"main":{"temp":14.2}}`)
		mockSvc := NewMockWeatherProvider(ctrl)
		mockSvc.EXPECT().GetWeather(gomock.Any(), "London", "", "").Return(payload, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/weather?city=London", nil)
		w := httptest.NewRecorder()

		NewWeatherHandler(mockSvc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, string(payload), w.Body.String())
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		payload := json.RawMessage(`{"main":{"temp":21.5}}`)
		mockSvc := NewMockWeatherProvider(ctrl)
		mockSvc.EXPECT().GetWeather(gomock.Any(), "Austin", "TX", "US").Return(payload, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/weather?city=Austin&state=TX&country=US", nil)
		w := httptest.NewRecorder()

		NewWeatherHandler(mockSvc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, string(payload), w.Body.String())
	})
}

func TestChatHandlers(t *testing.T) {
	t.Run("fun places", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockChatProvider(ctrl)
		mockSvc.EXPECT().GetFunPlaces(gomock.Any(), "Austin, TX").Return("1. Barton Springs", nil)

		body, _ := json.Marshal(ChatRequest{Location: "Austin, TX"})
		req := httptest.NewRequest(http.MethodPost, "/api/chatgpt/fun-places", bytes.NewReader(body))
		w := httptest.NewRecorder()

		NewFunPlacesHandler(mockSvc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp FunPlacesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "1. Barton Springs", resp.FunPlaces)
	})

	t.Run("trip suggestions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockChatProvider(ctrl)
		mockSvc.EXPECT().GetTripSuggestions(gomock.Any(), "Austin, TX").Return(`[{"season":"spring"}]`, nil)

		body, _ := json.Marshal(ChatRequest{Location: "Austin, TX"})
		req := httptest.NewRequest(http.MethodPost, "/api/chatgpt/trip-suggestion", bytes.NewReader(body))
		w := httptest.NewRecorder()

		NewTripSuggestionsHandler(mockSvc).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp TripSuggestionsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, `[{"season":"spring"}]`, resp.TripSuggestions)
	})

	t.Run("missing location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		req := httptest.NewRequest(http.MethodPost, "/api/chatgpt/fun-places", bytes.NewReader([]byte(`{}`)))
		w := httptest.NewRecorder()

		NewFunPlacesHandler(NewMockChatProvider(ctrl)).ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	NewHealthHandler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
