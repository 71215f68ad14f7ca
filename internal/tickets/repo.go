package tickets

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	"github.com/luxerealty/luxerealty-backend/pkg/pagination"
)

// Repository handles ticket and reply persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, ticket *models.SupportTicket) error
	Update(ctx context.Context, ticket *models.SupportTicket) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.SupportTicket, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SupportTicket, error)
	ListAll(ctx context.Context, query ListTicketsQuery) ([]models.SupportTicket, *pagination.Cursor, error)
	CreateReply(ctx context.Context, reply *models.TicketReply) error
	ListReplies(ctx context.Context, ticketID uuid.UUID) ([]models.TicketReply, error)
	CountByStatus(ctx context.Context) (map[enums.TicketStatus]int64, error)
}

// ListTicketsQuery configures back-office ticket queries.
type ListTicketsQuery struct {
	Status *enums.TicketStatus
	Limit  int
	Cursor *pagination.Cursor
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a ticket repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, ticket *models.SupportTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *repository) Update(ctx context.Context, ticket *models.SupportTicket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SupportTicket{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.SupportTicket, error) {
	var ticket models.SupportTicket
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ticket).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SupportTicket, error) {
	var ticketRows []models.SupportTicket
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&ticketRows).Error; err != nil {
		return nil, err
	}
	return ticketRows, nil
}

func (r *repository) ListAll(ctx context.Context, query ListTicketsQuery) ([]models.SupportTicket, *pagination.Cursor, error) {
	limit := pagination.NormalizeLimit(query.Limit)
	stmt := r.db.WithContext(ctx).Model(&models.SupportTicket{})
	if query.Status != nil {
		stmt = stmt.Where("status = ?", *query.Status)
	}
	if query.Cursor != nil {
		stmt = stmt.Where("(created_at, id) < (?, ?)", query.Cursor.CreatedAt, query.Cursor.ID)
	}

	var ticketRows []models.SupportTicket
	if err := stmt.Order("created_at DESC, id DESC").Limit(pagination.LimitWithBuffer(limit)).Find(&ticketRows).Error; err != nil {
		return nil, nil, err
	}

	if len(ticketRows) > limit {
		next := ticketRows[limit]
		ticketRows = ticketRows[:limit]
		return ticketRows, &pagination.Cursor{
			CreatedAt: next.CreatedAt,
			ID:        next.ID,
		}, nil
	}

	return ticketRows, nil, nil
}

func (r *repository) CountByStatus(ctx context.Context) (map[enums.TicketStatus]int64, error) {
	var rows []struct {
		Status enums.TicketStatus
		Total  int64
	}
	if err := r.db.WithContext(ctx).Model(&models.SupportTicket{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[enums.TicketStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *repository) CreateReply(ctx context.Context, reply *models.TicketReply) error {
	return r.db.WithContext(ctx).Create(reply).Error
}

func (r *repository) ListReplies(ctx context.Context, ticketID uuid.UUID) ([]models.TicketReply, error) {
	var replies []models.TicketReply
	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC, id ASC").
		Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}
