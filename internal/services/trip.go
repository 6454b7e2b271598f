package services

import (
	"context"
	"errors"
	"time"

	"github.com/getawayapp/getaway-backend/internal/jwt"
	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/google/uuid"
)

// ErrNotOwner is returned when ownership enforcement is enabled and the
// caller does not own the mutated record.
var ErrNotOwner = errors.New("record is owned by another user")

// TripReader defines read-only operations for trips.
type TripReader interface {
	ListByEmail(ctx context.Context, email string, favoriteOnly bool) ([]models.TripDB, error)
	GetByID(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error)
}

// TripWriter defines write operations for trips.
type TripWriter interface {
	Save(ctx context.Context, trip *models.TripDB) (uuid.UUID, error)
	Update(ctx context.Context, tripID uuid.UUID, trip *models.TripDB) error
	Delete(ctx context.Context, tripID uuid.UUID) error
}

// TripService handles trip CRUD and audit publishing.
//
// The source system never compared the authenticated identity against the
// trip's owner email on mutation; enforceOwnership keeps that behavior
// switchable instead of silently changing it.
type TripService struct {
	readRepo         TripReader
	writeRepo        TripWriter
	userReader       UserReader
	kafkaWriter      KafkaWriter
	enforceOwnership bool
}

// NewTripService creates a new TripService.
func NewTripService(readRepo TripReader, writeRepo TripWriter, userReader UserReader, kafkaWriter KafkaWriter, enforceOwnership bool) *TripService {
	return &TripService{
		readRepo:         readRepo,
		writeRepo:        writeRepo,
		userReader:       userReader,
		kafkaWriter:      kafkaWriter,
		enforceOwnership: enforceOwnership,
	}
}

// List returns the trips owned by the given email.
func (s *TripService) List(ctx context.Context, email string, favoriteOnly bool) ([]models.TripDB, error) {
	trips, err := s.readRepo.ListByEmail(ctx, email, favoriteOnly)
	if err != nil {
		logger.Log.Errorw("failed to list trips", "email", email, "error", err)
		return nil, err
	}
	return trips, nil
}

// Get returns the trip with the given id, or nil when absent.
func (s *TripService) Get(ctx context.Context, tripID uuid.UUID) (*models.TripDB, error) {
	trip, err := s.readRepo.GetByID(ctx, tripID)
	if err != nil {
		logger.Log.Errorw("failed to get trip", "tripID", tripID, "error", err)
		return nil, err
	}
	return trip, nil
}

// Create stores a new trip and publishes a create event.
func (s *TripService) Create(ctx context.Context, trip *models.TripDB, actor *jwt.Claims) (uuid.UUID, error) {
	tripID, err := s.writeRepo.Save(ctx, trip)
	if err != nil {
		logger.Log.Errorw("failed to save trip", "email", trip.UserEmail, "error", err)
		return uuid.Nil, err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(actor, "trip", tripID.String(), "create"))
	return tripID, nil
}

// Update replaces a trip's fields and publishes an update event.
func (s *TripService) Update(ctx context.Context, tripID uuid.UUID, trip *models.TripDB, actor *jwt.Claims) error {
	if err := s.checkOwnership(ctx, tripID, actor); err != nil {
		return err
	}

	if err := s.writeRepo.Update(ctx, tripID, trip); err != nil {
		logger.Log.Errorw("failed to update trip", "tripID", tripID, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(actor, "trip", tripID.String(), "update"))
	return nil
}

// Delete removes a trip and publishes a delete event. Wishlist references to
// the trip are left dangling.
func (s *TripService) Delete(ctx context.Context, tripID uuid.UUID, actor *jwt.Claims) error {
	if err := s.checkOwnership(ctx, tripID, actor); err != nil {
		return err
	}

	if err := s.writeRepo.Delete(ctx, tripID); err != nil {
		logger.Log.Errorw("failed to delete trip", "tripID", tripID, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(actor, "trip", tripID.String(), "delete"))
	return nil
}

// checkOwnership compares the actor's email against the trip's owner email
// when enforcement is enabled. Absent trips pass: the mutation is a no-op.
func (s *TripService) checkOwnership(ctx context.Context, tripID uuid.UUID, actor *jwt.Claims) error {
	if !s.enforceOwnership || actor == nil {
		return nil
	}

	trip, err := s.readRepo.GetByID(ctx, tripID)
	if err != nil {
		return err
	}
	if trip == nil {
		return nil
	}

	user, err := s.userReader.GetByID(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if user == nil || user.Email != trip.UserEmail {
		logger.Log.Errorw("ownership check failed", "tripID", tripID, "actor", actor.UserID)
		return ErrNotOwner
	}
	return nil
}

func newEvent(actor *jwt.Claims, entity, entityID, operation string) models.Event {
	event := models.Event{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Entity:    entity,
		EntityID:  entityID,
		Operation: operation,
	}
	if actor != nil {
		event.UserID = actor.UserID.String()
	}
	return event
}
