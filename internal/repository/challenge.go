package repository

import (
	"context"
	"errors"

	"gymhum/internal/models"

	"gorm.io/gorm"
)

// ChallengeRepository defines the interface for challenge data operations.
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *models.Challenge) error
	GetByID(ctx context.Context, id uint) (*models.Challenge, error)
	ListActive(ctx context.Context) ([]models.Challenge, error)
	CountParticipants(ctx context.Context, challengeID uint) (int64, error)
	Join(ctx context.Context, userID, challengeID uint) (*models.UserChallenge, error)
	GetParticipation(ctx context.Context, userID, challengeID uint) (*models.UserChallenge, error)
	ListParticipations(ctx context.Context, userID uint) ([]models.UserChallenge, error)
	UpdateParticipation(ctx context.Context, participation *models.UserChallenge) error
}

type challengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository creates a new challenge repository
func NewChallengeRepository(db *gorm.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	if err := r.db.WithContext(ctx).Create(challenge).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *challengeRepository) GetByID(ctx context.Context, id uint) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := r.db.WithContext(ctx).First(&challenge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Challenge", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &challenge, nil
}

func (r *challengeRepository) ListActive(ctx context.Context) ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&challenges).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return challenges, nil
}

func (r *challengeRepository) CountParticipants(ctx context.Context, challengeID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.UserChallenge{}).
		Where("challenge_id = ?", challengeID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *challengeRepository) Join(ctx context.Context, userID, challengeID uint) (*models.UserChallenge, error) {
	participation := &models.UserChallenge{
		UserID:      userID,
		ChallengeID: challengeID,
	}
	if err := r.db.WithContext(ctx).Create(participation).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return participation, nil
}

func (r *challengeRepository) GetParticipation(ctx context.Context, userID, challengeID uint) (*models.UserChallenge, error) {
	var participation models.UserChallenge
	if err := r.db.WithContext(ctx).
		Preload("Challenge").
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		First(&participation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &participation, nil
}

func (r *challengeRepository) ListParticipations(ctx context.Context, userID uint) ([]models.UserChallenge, error) {
	var participations []models.UserChallenge
	if err := r.db.WithContext(ctx).
		Preload("Challenge").
		Where("user_id = ?", userID).
		Find(&participations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return participations, nil
}

func (r *challengeRepository) UpdateParticipation(ctx context.Context, participation *models.UserChallenge) error {
	if err := r.db.WithContext(ctx).Save(participation).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
