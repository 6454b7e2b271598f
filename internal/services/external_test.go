package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/getawayapp/getaway-backend/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalService_GetWeather(t *testing.T) {
	payload := json.RawMessage(`{"main":{"temp":21.5}}`)

	t.Run("cache hit skips the upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cacheRepo := services.NewMockWeatherCacheReader(ctrl)
		weather := services.NewMockWeatherClient(ctrl)

		cacheRepo.EXPECT().GetWeather(gomock.Any(), "Austin", "TX", "US").Return([]byte(payload), nil)

		svc := services.NewExternalService(cacheRepo, weather, nil, nil)
		got, err := svc.GetWeather(context.Background(), "Austin", "TX", "US")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("cache miss fetches and populates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cacheRepo := services.NewMockWeatherCacheReader(ctrl)
		weather := services.NewMockWeatherClient(ctrl)

		cacheRepo.EXPECT().GetWeather(gomock.Any(), "Austin", "TX", "US").Return(nil, errors.New("cache miss"))
		weather.EXPECT().GetCurrent(gomock.Any(), "Austin", "TX", "US").Return(payload, nil)
		cacheRepo.EXPECT().SetWeather(gomock.Any(), "Austin", "TX", "US", []byte(payload)).Return(nil)

		svc := services.NewExternalService(cacheRepo, weather, nil, nil)
		got, err := svc.GetWeather(context.Background(), "Austin", "TX", "US")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("cache write failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cacheRepo := services.NewMockWeatherCacheReader(ctrl)
		weather := services.NewMockWeatherClient(ctrl)

		cacheRepo.EXPECT().GetWeather(gomock.Any(), "Austin", "TX", "US").Return(nil, errors.New("cache miss"))
		weather.EXPECT().GetCurrent(gomock.Any(), "Austin", "TX", "US").Return(payload, nil)
		cacheRepo.EXPECT().SetWeather(gomock.Any(), "Austin", "TX", "US", []byte(payload)).
			Return(errors.New("redis down"))

		svc := services.NewExternalService(cacheRepo, weather, nil, nil)
		got, err := svc.GetWeather(context.Background(), "Austin", "TX", "US")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("nil cache goes straight to the upstream", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		weather := services.NewMockWeatherClient(ctrl)
		weather.EXPECT().GetCurrent(gomock.Any(), "Austin", "TX", "US").Return(payload, nil)

		svc := services.NewExternalService(nil, weather, nil, nil)
		got, err := svc.GetWeather(context.Background(), "Austin", "TX", "US")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("upstream error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		weather := services.NewMockWeatherClient(ctrl)
		weather.EXPECT().GetCurrent(gomock.Any(), "Austin", "TX", "US").Return(nil, errors.New("upstream 500"))

		svc := services.NewExternalService(nil, weather, nil, nil)
		got, err := svc.GetWeather(context.Background(), "Austin", "TX", "US")
		require.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestExternalService_GetPlaceDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	details := json.RawMessage(`{"id":"place-1","displayName":{"text":"Barton Springs"}}`)
	places := services.NewMockPlacesClient(ctrl)
	places.EXPECT().GetPlaceDetails(gomock.Any(), "place-1").Return(details, nil)

	svc := services.NewExternalService(nil, nil, places, nil)
	got, err := svc.GetPlaceDetails(context.Background(), "place-1")
	require.NoError(t, err)
	assert.Equal(t, details, got)
}

func TestExternalService_GetPlacePhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	places := services.NewMockPlacesClient(ctrl)
	places.EXPECT().GetPlacePhoto(gomock.Any(), "photo-ref").
		Return([]byte{0xFF, 0xD8}, "image/jpeg", nil)

	svc := services.NewExternalService(nil, nil, places, nil)
	data, contentType, err := svc.GetPlacePhoto(context.Background(), "photo-ref")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8}, data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestExternalService_ChatLookups(t *testing.T) {
	t.Run("fun places", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chat := services.NewMockChatClient(ctrl)
		chat.EXPECT().
			Complete(gomock.Any(), "List 5 popular and must see places to visit in Austin.", float64(-1)).
			Return("1. Barton Springs", nil)

		svc := services.NewExternalService(nil, nil, nil, chat)
		got, err := svc.GetFunPlaces(context.Background(), "Austin")
		require.NoError(t, err)
		assert.Equal(t, "1. Barton Springs", got)
	})

	t.Run("trip suggestions use a low temperature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chat := services.NewMockChatClient(ctrl)
		chat.EXPECT().
			Complete(gomock.Any(), gomock.Any(), 0.2).
			Return(`[{"season":"spring"}]`, nil)

		svc := services.NewExternalService(nil, nil, nil, chat)
		got, err := svc.GetTripSuggestions(context.Background(), "Austin")
		require.NoError(t, err)
		assert.Equal(t, `[{"season":"spring"}]`, got)
	})

	t.Run("chat error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		chat := services.NewMockChatClient(ctrl)
		chat.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("rate limited"))

		svc := services.NewExternalService(nil, nil, nil, chat)
		got, err := svc.GetFunPlaces(context.Background(), "Austin")
		require.Error(t, err)
		assert.Empty(t, got)
	})
}
