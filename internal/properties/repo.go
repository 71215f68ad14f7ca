package properties

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
)

// Repository handles listing persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	List(ctx context.Context, filters ListFilters) ([]models.Property, error)
	ListFeatured(ctx context.Context, limit int) ([]models.Property, error)
	Search(ctx context.Context, query string) ([]models.Property, error)
	Count(ctx context.Context) (int64, error)
	CountFeatured(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a property repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *repository) Update(ctx context.Context, property *models.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Property{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&property).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]models.Property, error) {
	query := r.db.WithContext(ctx).Model(&models.Property{})
	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}
	if filters.MinBeds != nil {
		query = query.Where("beds >= ?", *filters.MinBeds)
	}
	if filters.MinBaths != nil {
		query = query.Where("baths >= ?", *filters.MinBaths)
	}
	if filters.Location != nil {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(*filters.Location)+"%")
	}
	if filters.Featured != nil {
		query = query.Where("featured = ?", *filters.Featured)
	}

	var listings []models.Property
	if err := query.Order("created_at DESC, id DESC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *repository) ListFeatured(ctx context.Context, limit int) ([]models.Property, error) {
	var listings []models.Property
	if err := r.db.WithContext(ctx).
		Where("featured = ?", true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Property{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repository) CountFeatured(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Property{}).
		Where("featured = ?", true).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repository) Search(ctx context.Context, query string) ([]models.Property, error) {
	needle := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var listings []models.Property
	if err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?", needle, needle, needle).
		Order("created_at DESC, id DESC").
		Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
