package repository

import (
	"context"
	"errors"

	"gymhum/internal/models"

	"gorm.io/gorm"
)

// FriendRepository defines the interface for friendship data operations.
type FriendRepository interface {
	Create(ctx context.Context, friendship *models.Friendship) error
	GetByID(ctx context.Context, id uint) (*models.Friendship, error)
	GetFriendshipBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error)
	GetFriends(ctx context.Context, userID uint) ([]models.User, error)
	GetFriendIDs(ctx context.Context, userID uint) ([]uint, error)
	GetConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error)
	GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error)
	GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error)
	UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error
	Delete(ctx context.Context, friendshipID uint) error
	RemoveFriendship(ctx context.Context, userID1, userID2 uint) error
}

// friendRepository implements FriendRepository
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	if err := r.db.WithContext(ctx).Create(friendship).Error; err != nil {
		if isUniqueConstraintError(err) {
			// Concurrent duplicate request lost the race against the pair index.
			return models.NewValidationError("Friend request already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) GetByID(ctx context.Context, id uint) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := r.db.WithContext(ctx).Preload("Requester").Preload("Addressee").First(&friendship, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Friendship", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

func (r *friendRepository) GetFriendshipBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Friendship, error) {
	var friendship models.Friendship

	// Find the edge regardless of which side initiated it
	if err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		Preload("Requester").
		Preload("Addressee").
		First(&friendship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No friendship exists
		}
		return nil, models.NewInternalError(err)
	}
	return &friendship, nil
}

func (r *friendRepository) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User

	// Each accepted friendship is a single row; pick the opposite side of every
	// edge touching the user.
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON (users.id = f.requester_id OR users.id = f.addressee_id)").
		Where("f.status = ? AND (f.requester_id = ? OR f.addressee_id = ?) AND users.id != ?",
			models.FriendshipStatusAccepted, userID, userID, userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return users, nil
}

func (r *friendRepository) GetFriendIDs(ctx context.Context, userID uint) ([]uint, error) {
	var friendships []models.Friendship
	if err := r.db.WithContext(ctx).
		Where("status = ? AND (requester_id = ? OR addressee_id = ?)",
			models.FriendshipStatusAccepted, userID, userID).
		Find(&friendships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	ids := make([]uint, 0, len(friendships))
	for _, f := range friendships {
		if f.RequesterID == userID {
			ids = append(ids, f.AddresseeID)
		} else {
			ids = append(ids, f.RequesterID)
		}
	}
	return ids, nil
}

// GetConnectedUserIDs returns every user connected to userID by any edge,
// pending or accepted, in either direction.
func (r *friendRepository) GetConnectedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	var friendships []models.Friendship
	if err := r.db.WithContext(ctx).
		Where("requester_id = ? OR addressee_id = ?", userID, userID).
		Find(&friendships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	ids := make([]uint, 0, len(friendships))
	for _, f := range friendships {
		if f.RequesterID == userID {
			ids = append(ids, f.AddresseeID)
		} else {
			ids = append(ids, f.RequesterID)
		}
	}
	return ids, nil
}

func (r *friendRepository) GetPendingRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	var friendships []models.Friendship

	// Find pending requests where user is the addressee
	if err := r.db.WithContext(ctx).
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipStatusPending).
		Preload("Requester").
		Preload("Addressee").
		Find(&friendships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return friendships, nil
}

func (r *friendRepository) GetSentRequests(ctx context.Context, userID uint) ([]models.Friendship, error) {
	var friendships []models.Friendship

	// Find pending requests where user is the requester
	if err := r.db.WithContext(ctx).
		Where("requester_id = ? AND status = ?", userID, models.FriendshipStatusPending).
		Preload("Requester").
		Preload("Addressee").
		Find(&friendships).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return friendships, nil
}

func (r *friendRepository) UpdateStatus(ctx context.Context, friendshipID uint, status models.FriendshipStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("id = ?", friendshipID).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) Delete(ctx context.Context, friendshipID uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Friendship{}, friendshipID).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *friendRepository) RemoveFriendship(ctx context.Context, userID1, userID2 uint) error {
	if err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		Delete(&models.Friendship{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
