package repository

import (
	"context"
	"errors"
	"strings"

	"gymhum/internal/models"

	"gorm.io/gorm"
)

// WorkoutRepository defines the interface for workout data operations.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *models.Workout) error
	GetByID(ctx context.Context, id uint) (*models.Workout, error)
	GetOwned(ctx context.Context, id, userID uint) (*models.Workout, error)
	List(ctx context.Context, search string, limit, offset int) ([]models.Workout, int64, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Workout, error)
	Update(ctx context.Context, workout *models.Workout) error
	Delete(ctx context.Context, id uint) error
}

type workoutRepository struct {
	db *gorm.DB
}

// NewWorkoutRepository creates a new workout repository
func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	if err := r.db.WithContext(ctx).Create(workout).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *workoutRepository) GetByID(ctx context.Context, id uint) (*models.Workout, error) {
	var workout models.Workout
	if err := r.db.WithContext(ctx).First(&workout, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Workout", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &workout, nil
}

// GetOwned fetches a workout scoped to its owner. A workout belonging to
// someone else is reported as not found, without disclosing existence.
func (r *workoutRepository) GetOwned(ctx context.Context, id, userID uint) (*models.Workout, error) {
	var workout models.Workout
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&workout).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Workout", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &workout, nil
}

func (r *workoutRepository) List(ctx context.Context, search string, limit, offset int) ([]models.Workout, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Workout{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		base = base.Where("LOWER(name) LIKE ?", like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var workouts []models.Workout
	if err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&workouts).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return workouts, total, nil
}

func (r *workoutRepository) ListByUser(ctx context.Context, userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workouts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return workouts, nil
}

func (r *workoutRepository) Update(ctx context.Context, workout *models.Workout) error {
	if err := r.db.WithContext(ctx).Save(workout).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *workoutRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Workout{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
