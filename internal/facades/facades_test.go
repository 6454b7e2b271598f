package facades

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlacesHTTPFacade_GetPlaceDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/places/ChIJtest", r.URL.Path)
		assert.Equal(t, "id,displayName,photos", r.URL.Query().Get("fields"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Write([]byte(`{"id":"ChIJtest","displayName":{"text":"Test Place"}}`))
	}))
	defer srv.Close()

	f := NewPlacesHTTPFacade("test-key")
	f.baseURL = srv.URL

	details, err := f.GetPlaceDetails(context.Background(), "ChIJtest")
	assert.NoError(t, err)

	var parsed map[string]any
	assert.NoError(t, json.Unmarshal(details, &parsed))
	assert.Equal(t, "ChIJtest", parsed["id"])
}

func TestPlacesHTTPFacade_NoAPIKey(t *testing.T) {
	f := NewPlacesHTTPFacade("")

	_, err := f.GetPlaceDetails(context.Background(), "ChIJtest")
	assert.ErrorIs(t, err, ErrNoAPIKey)

	_, _, err = f.GetPlacePhoto(context.Background(), "ref")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestPlacesHTTPFacade_GetPlacePhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("pngbytes"))
	}))
	defer srv.Close()

	f := NewPlacesHTTPFacade("test-key")
	f.baseURL = srv.URL

	data, contentType, err := f.GetPlacePhoto(context.Background(), "places/x/photos/y")
	assert.NoError(t, err)
	assert.Equal(t, []byte("pngbytes"), data)
	assert.Equal(t, "image/png", contentType)
}

func TestPlacesHTTPFacade_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("denied"))
	}))
	defer srv.Close()

	f := NewPlacesHTTPFacade("test-key")
	f.baseURL = srv.URL

	_, err := f.GetPlaceDetails(context.Background(), "ChIJtest")
	var upstreamErr *UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusForbidden, upstreamErr.StatusCode)
	assert.Equal(t, "denied", upstreamErr.Body)
}

func TestWeatherHTTPFacade_GetCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Austin,TX,US", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{"main":{"temp":24.5}}`))
	}))
	defer srv.Close()

	f := NewWeatherHTTPFacade("weather-key")
	f.baseURL = srv.URL

	payload, err := f.GetCurrent(context.Background(), "Austin", "TX", "US")
	assert.NoError(t, err)
	assert.JSONEq(t, `{"main":{"temp":24.5}}`, string(payload))
}

func TestWeatherHTTPFacade_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401}`))
	}))
	defer srv.Close()

	f := NewWeatherHTTPFacade("bad-key")
	f.baseURL = srv.URL

	_, err := f.GetCurrent(context.Background(), "Austin", "", "")
	var upstreamErr *UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusUnauthorized, upstreamErr.StatusCode)
}

func TestChatGPTHTTPFacade_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer openai-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, chatGPTModel, req.Model)
		assert.Len(t, req.Messages, 1)

		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  1. The beach\n2. The pier  "}}]}`))
	}))
	defer srv.Close()

	f := NewChatGPTHTTPFacade("openai-key")
	f.baseURL = srv.URL

	reply, err := f.Complete(context.Background(), "List places", -1)
	assert.NoError(t, err)
	assert.Equal(t, "1. The beach\n2. The pier", reply)
}

func TestChatGPTHTTPFacade_Temperature(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotNil(t, req.Temperature)
		assert.Equal(t, 0.2, *req.Temperature)
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	f := NewChatGPTHTTPFacade("openai-key")
	f.baseURL = srv.URL

	_, err := f.Complete(context.Background(), "prompt", 0.2)
	assert.NoError(t, err)
}

func TestChatGPTHTTPFacade_NoAPIKey(t *testing.T) {
	f := NewChatGPTHTTPFacade("")
	_, err := f.Complete(context.Background(), "prompt", -1)
	assert.ErrorIs(t, err, ErrNoAPIKey)
}
