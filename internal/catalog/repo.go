package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/db/models"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/enums"
)

// Repository exposes the read surface of the menu catalog. The ordering
// core never mutates catalog rows; writes belong to the admin layer.
type Repository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	FindCategoryByKey(ctx context.Context, key string) (*models.Category, error)
	ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]models.Product, error)
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListOptionsByKind(ctx context.Context, kind enums.GroupKind) ([]models.Option, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository over the shared connection.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("position ASC").
		Find(&categories).Error
	return categories, err
}

func (r *repository) FindCategoryByKey(ctx context.Context, key string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("key = ?", key).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *repository) ListProducts(ctx context.Context, categoryID *uuid.UUID) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Preload("Category").Order("name ASC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	var products []models.Product
	err := query.Find(&products).Error
	return products, err
}

func (r *repository) FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) ListOptionsByKind(ctx context.Context, kind enums.GroupKind) ([]models.Option, error) {
	var options []models.Option
	err := r.db.WithContext(ctx).
		Where("group_kind = ? AND is_available = ?", kind, true).
		Order("position ASC").
		Find(&options).Error
	return options, err
}
