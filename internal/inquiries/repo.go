package inquiries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
)

// Repository handles inquiry persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateContactMessage(ctx context.Context, message *models.ContactMessage) error
	ListContactMessages(ctx context.Context) ([]models.ContactMessage, error)
	CreateTourRequest(ctx context.Context, request *models.TourRequest) error
	ListTourRequests(ctx context.Context, status *enums.TourStatus) ([]models.TourRequest, error)
	FindTourRequestByID(ctx context.Context, id uuid.UUID) (*models.TourRequest, error)
	UpdateTourRequest(ctx context.Context, request *models.TourRequest) error
	CountContactMessages(ctx context.Context) (int64, error)
	CountTourRequestsByStatus(ctx context.Context) (map[enums.TourStatus]int64, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns an inquiry repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) CreateContactMessage(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *repository) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *repository) CreateTourRequest(ctx context.Context, request *models.TourRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *repository) ListTourRequests(ctx context.Context, status *enums.TourStatus) ([]models.TourRequest, error) {
	query := r.db.WithContext(ctx).Model(&models.TourRequest{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var requests []models.TourRequest
	if err := query.Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *repository) FindTourRequestByID(ctx context.Context, id uuid.UUID) (*models.TourRequest, error) {
	var request models.TourRequest
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&request).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *repository) UpdateTourRequest(ctx context.Context, request *models.TourRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}

func (r *repository) CountContactMessages(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ContactMessage{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *repository) CountTourRequestsByStatus(ctx context.Context) (map[enums.TourStatus]int64, error) {
	var rows []struct {
		Status enums.TourStatus
		Total  int64
	}
	if err := r.db.WithContext(ctx).Model(&models.TourRequest{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[enums.TourStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
