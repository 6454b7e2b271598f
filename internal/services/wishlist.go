package services

import (
	"context"
	"errors"

	"github.com/getawayapp/getaway-backend/internal/jwt"
	"github.com/getawayapp/getaway-backend/internal/logger"
	"github.com/getawayapp/getaway-backend/internal/models"
	"github.com/google/uuid"
)

// Error variables
var (
	ErrWishlistExists   = errors.New("a wishlist with this name already exists")
	ErrWishlistNotFound = errors.New("wishlist not found")
)

// WishlistReader defines read-only operations for wishlists.
type WishlistReader interface {
	ListByEmail(ctx context.Context, email string) ([]models.WishlistDB, error)
	GetByID(ctx context.Context, wishlistID uuid.UUID) (*models.WishlistDB, error)
	GetByEmailAndName(ctx context.Context, email, listName string) (*models.WishlistDB, error)
}

// WishlistWriter defines write operations for wishlists.
type WishlistWriter interface {
	Save(ctx context.Context, wishlist *models.WishlistDB) (uuid.UUID, error)
	Update(ctx context.Context, wishlistID uuid.UUID, listName string, trips []uuid.UUID) error
	AddTrip(ctx context.Context, wishlistID, tripID uuid.UUID) error
	RemoveTrip(ctx context.Context, wishlistID, tripID uuid.UUID) error
	Delete(ctx context.Context, wishlistID uuid.UUID) error
}

// WishlistService handles wishlist CRUD and audit publishing.
type WishlistService struct {
	readRepo    WishlistReader
	writeRepo   WishlistWriter
	kafkaWriter KafkaWriter
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(readRepo WishlistReader, writeRepo WishlistWriter, kafkaWriter KafkaWriter) *WishlistService {
	return &WishlistService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a new wishlist. The (owner, name) pair must be unique.
func (s *WishlistService) Create(ctx context.Context, wishlist *models.WishlistDB, actor *jwt.Claims) (uuid.UUID, error) {
	existing, err := s.readRepo.GetByEmailAndName(ctx, wishlist.Email, wishlist.ListName)
	if err != nil {
		logger.Log.Errorw("failed to check wishlist exists", "error", err)
		return uuid.Nil, err
	}
	if existing != nil {
		logger.Log.Errorw("wishlist already exists", "email", wishlist.Email, "list_name", wishlist.ListName)
		return uuid.Nil, ErrWishlistExists
	}

	wishlistID, err := s.writeRepo.Save(ctx, wishlist)
	if err != nil {
		logger.Log.Errorw("failed to save wishlist", "email", wishlist.Email, "error", err)
		return uuid.Nil, err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(actor, "wishlist", wishlistID.String(), "create"))
	return wishlistID, nil
}

// Lists returns all wishlists owned by the given email.
func (s *WishlistService) Lists(ctx context.Context, email string) ([]models.WishlistDB, error) {
	wishlists, err := s.readRepo.ListByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to list wishlists", "email", email, "error", err)
		return nil, err
	}
	return wishlists, nil
}

// Get returns the wishlist with the given id, or nil when absent.
func (s *WishlistService) Get(ctx context.Context, wishlistID uuid.UUID) (*models.WishlistDB, error) {
	wishlist, err := s.readRepo.GetByID(ctx, wishlistID)
	if err != nil {
		logger.Log.Errorw("failed to get wishlist", "wishlistID", wishlistID, "error", err)
		return nil, err
	}
	return wishlist, nil
}

// Update renames a wishlist and replaces its trip references, returning the
// updated record.
func (s *WishlistService) Update(ctx context.Context, wishlistID uuid.UUID, listName string, trips []uuid.UUID, actor *jwt.Claims) (*models.WishlistDB, error) {
	existing, err := s.readRepo.GetByID(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrWishlistNotFound
	}

	if err := s.writeRepo.Update(ctx, wishlistID, listName, trips); err != nil {
		logger.Log.Errorw("failed to update wishlist", "wishlistID", wishlistID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(actor, "wishlist", wishlistID.String(), "update"))
	return s.readRepo.GetByID(ctx, wishlistID)
}

// AddTrip adds a trip reference to a wishlist and returns the updated record.
func (s *WishlistService) AddTrip(ctx context.Context, wishlistID, tripID uuid.UUID, actor *jwt.Claims) (*models.WishlistDB, error) {
	existing, err := s.readRepo.GetByID(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrWishlistNotFound
	}

	if err := s.writeRepo.AddTrip(ctx, wishlistID, tripID); err != nil {
		logger.Log.Errorw("failed to add trip to wishlist", "wishlistID", wishlistID, "tripID", tripID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(actor, "wishlist", wishlistID.String(), "add_trip"))
	return s.readRepo.GetByID(ctx, wishlistID)
}

// RemoveTrip removes a trip reference from a wishlist and returns the
// updated record.
func (s *WishlistService) RemoveTrip(ctx context.Context, wishlistID, tripID uuid.UUID, actor *jwt.Claims) (*models.WishlistDB, error) {
	existing, err := s.readRepo.GetByID(ctx, wishlistID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrWishlistNotFound
	}

	if err := s.writeRepo.RemoveTrip(ctx, wishlistID, tripID); err != nil {
		logger.Log.Errorw("failed to remove trip from wishlist", "wishlistID", wishlistID, "tripID", tripID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(actor, "wishlist", wishlistID.String(), "remove_trip"))
	return s.readRepo.GetByID(ctx, wishlistID)
}

// Delete removes a wishlist and publishes a delete event.
func (s *WishlistService) Delete(ctx context.Context, wishlistID uuid.UUID, actor *jwt.Claims) error {
	if err := s.writeRepo.Delete(ctx, wishlistID); err != nil {
		logger.Log.Errorw("failed to delete wishlist", "wishlistID", wishlistID, "error", err)
		return err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(actor, "wishlist", wishlistID.String(), "delete"))
	return nil
}
