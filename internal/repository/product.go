package repository

import (
	"context"
	"errors"
	"strings"

	"gymhum/internal/cache"
	"gymhum/internal/models"

	"gorm.io/gorm"
)

// ProductRepository defines the interface for product catalog data operations.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	List(ctx context.Context, search, category string, limit, offset int) ([]models.Product, int64, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	key := cache.ProductKey(id)

	err := cache.Aside(ctx, key, &product, cache.ProductTTL, func() error {
		if err := r.db.WithContext(ctx).First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Product", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, search, category string, limit, offset int) ([]models.Product, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Product{})
	if category != "" {
		base = base.Where("category = ?", category)
	}
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		base = base.Where("LOWER(name) LIKE ?", like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var products []models.Product
	if err := base.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return products, total, nil
}

func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProduct(ctx, product.ID)
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Product{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProduct(ctx, id)
	return nil
}
