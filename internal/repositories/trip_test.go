package repositories

import (
	"context"
	"testing"

	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestTrip(email string, favorite bool) *models.TripDB {
	return &models.TripDB{
		UserEmail:       email,
		LocationAddress: "1 Ocean Dr, Miami Beach, FL",
		TripStart:       "2025-06-01",
		TripEnd:         "2025-06-08",
		StayExpense:     900,
		TravelExpense:   350,
		CarExpense:      120,
		OtherExpense:    200,
		ImageURL:        "https://example.com/beach.jpg",
		IsFavorite:      favorite,
		Activities:      models.ActivityList{"snorkeling", "museum"},
	}
}

func TestTripRepository_CRUD(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewTripWriteRepository(db)
	readRepo := NewTripReadRepository(db)
	ctx := context.Background()

	tripID, err := writeRepo.Save(ctx, newTestTrip("alice@example.com", false))
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tripID)

	favID, err := writeRepo.Save(ctx, newTestTrip("alice@example.com", true))
	assert.NoError(t, err)

	t.Run("ListByEmail", func(t *testing.T) {
		trips, err := readRepo.ListByEmail(ctx, "alice@example.com", false)
		assert.NoError(t, err)
		assert.Len(t, trips, 2)
		assert.Equal(t, models.ActivityList{"snorkeling", "museum"}, trips[0].Activities)
	})

	t.Run("ListFavorites", func(t *testing.T) {
		trips, err := readRepo.ListByEmail(ctx, "alice@example.com", true)
		assert.NoError(t, err)
		assert.Len(t, trips, 1)
		assert.Equal(t, favID, trips[0].TripID)
	})

	t.Run("ListUnknownEmail", func(t *testing.T) {
		trips, err := readRepo.ListByEmail(ctx, "nobody@example.com", false)
		assert.NoError(t, err)
		assert.Empty(t, trips)
	})

	t.Run("GetByID", func(t *testing.T) {
		trip, err := readRepo.GetByID(ctx, tripID)
		assert.NoError(t, err)
		assert.NotNil(t, trip)
		assert.Equal(t, "1 Ocean Dr, Miami Beach, FL", trip.LocationAddress)
	})

	t.Run("Update", func(t *testing.T) {
		updated := newTestTrip("alice@example.com", true)
		updated.LocationAddress = "Key West, FL"
		updated.Activities = models.ActivityList{"sunset cruise"}

		err := writeRepo.Update(ctx, tripID, updated)
		assert.NoError(t, err)

		trip, err := readRepo.GetByID(ctx, tripID)
		assert.NoError(t, err)
		assert.Equal(t, "Key West, FL", trip.LocationAddress)
		assert.True(t, trip.IsFavorite)
		assert.Equal(t, models.ActivityList{"sunset cruise"}, trip.Activities)
	})

	t.Run("Delete", func(t *testing.T) {
		err := writeRepo.Delete(ctx, tripID)
		assert.NoError(t, err)

		trip, err := readRepo.GetByID(ctx, tripID)
		assert.NoError(t, err)
		assert.Nil(t, trip)
	})
}
