package repository

import (
	"context"
	"errors"
	"strings"

	"gymhum/internal/models"

	"gorm.io/gorm"
)

// NutritionRepository defines the interface for nutrition plan data operations.
type NutritionRepository interface {
	Create(ctx context.Context, plan *models.NutritionPlan) error
	GetByID(ctx context.Context, id uint) (*models.NutritionPlan, error)
	GetOwned(ctx context.Context, id, userID uint) (*models.NutritionPlan, error)
	List(ctx context.Context, search string, limit, offset int) ([]models.NutritionPlan, int64, error)
	ListByUser(ctx context.Context, userID uint) ([]models.NutritionPlan, error)
	Update(ctx context.Context, plan *models.NutritionPlan) error
	Delete(ctx context.Context, id uint) error
}

type nutritionRepository struct {
	db *gorm.DB
}

// NewNutritionRepository creates a new nutrition plan repository
func NewNutritionRepository(db *gorm.DB) NutritionRepository {
	return &nutritionRepository{db: db}
}

func (r *nutritionRepository) Create(ctx context.Context, plan *models.NutritionPlan) error {
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *nutritionRepository) GetByID(ctx context.Context, id uint) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	if err := r.db.WithContext(ctx).Preload("User").First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Nutrition plan", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &plan, nil
}

func (r *nutritionRepository) GetOwned(ctx context.Context, id, userID uint) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Nutrition plan", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &plan, nil
}

func (r *nutritionRepository) List(ctx context.Context, search string, limit, offset int) ([]models.NutritionPlan, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.NutritionPlan{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		base = base.Where("LOWER(name) LIKE ?", like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var plans []models.NutritionPlan
	if err := base.
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&plans).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return plans, total, nil
}

func (r *nutritionRepository) ListByUser(ctx context.Context, userID uint) ([]models.NutritionPlan, error) {
	var plans []models.NutritionPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return plans, nil
}

func (r *nutritionRepository) Update(ctx context.Context, plan *models.NutritionPlan) error {
	if err := r.db.WithContext(ctx).Save(plan).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *nutritionRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.NutritionPlan{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
