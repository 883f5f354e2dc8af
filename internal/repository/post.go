package repository

import (
	"context"
	"errors"
	"strings"

	"gymhum/internal/cache"
	"gymhum/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	List(ctx context.Context, search string, limit, offset int) ([]models.Post, int64, error)
	GetByUserID(ctx context.Context, userID uint) ([]models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	Like(ctx context.Context, id uint) (int, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).Preload("User").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// List returns a page of posts ordered newest-first together with the total
// row count for the query. Search matches post content or author username,
// case-insensitively.
func (r *postRepository) List(ctx context.Context, search string, limit, offset int) ([]models.Post, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Post{})

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		base = base.
			Joins("JOIN users ON users.id = posts.user_id").
			Where("LOWER(posts.content) LIKE ? OR LOWER(users.username) LIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var posts []models.Post
	if err := base.
		Preload("User").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	return posts, total, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, post.ID)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Post{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidatePost(ctx, id)
	return nil
}

// Like atomically increments the like counter and returns the new value.
// There is deliberately no per-user deduplication.
func (r *postRepository) Like(ctx context.Context, id uint) (int, error) {
	var likes int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Post{}).
			Where("id = ?", id).
			UpdateColumn("likes", gorm.Expr("likes + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var post models.Post
		if err := tx.Select("likes").First(&post, id).Error; err != nil {
			return err
		}
		likes = post.Likes
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.NewNotFoundError("Post", id)
		}
		return 0, models.NewInternalError(err)
	}

	cache.InvalidatePost(ctx, id)
	return likes, nil
}
