package repository

import (
	"context"
	"errors"
	"time"

	"gymhum/internal/models"

	"gorm.io/gorm"
)

// TokenRepository persists refresh tokens. Tokens are stored as SHA-256
// hashes, never in cleartext.
type TokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByHash(ctx context.Context, hash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeAllForUser(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new refresh token repository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *tokenRepository) GetByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.WithContext(ctx).Where("token_hash = ?", hash).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewUnauthorizedError("Invalid refresh token")
		}
		return nil, models.NewInternalError(err)
	}
	return &token, nil
}

func (r *tokenRepository) Revoke(ctx context.Context, id uint) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", &now)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	return nil
}

func (r *tokenRepository) RevokeAllForUser(ctx context.Context, userID uint) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", &now)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	return nil
}

func (r *tokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.RefreshToken{})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	return result.RowsAffected, nil
}
