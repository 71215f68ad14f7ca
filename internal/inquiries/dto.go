package inquiries

import (
	"time"

	"github.com/google/uuid"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
)

// ContactMessageDTO is the stored inquiry returned to admin clients.
type ContactMessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TourRequestDTO is a showing request returned to clients.
type TourRequestDTO struct {
	ID            uuid.UUID `json:"id"`
	PropertyID    uuid.UUID `json:"property_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone,omitempty"`
	PreferredDate time.Time `json:"preferred_date"`
	Message       *string   `json:"message,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewContactMessageDTO builds a DTO from the persisted model.
func NewContactMessageDTO(message *models.ContactMessage) *ContactMessageDTO {
	if message == nil {
		return nil
	}
	return &ContactMessageDTO{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Phone:     message.Phone,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}

// NewContactMessageDTOs maps a model slice into response DTOs.
func NewContactMessageDTOs(messages []models.ContactMessage) []ContactMessageDTO {
	dtos := make([]ContactMessageDTO, 0, len(messages))
	for i := range messages {
		dtos = append(dtos, *NewContactMessageDTO(&messages[i]))
	}
	return dtos
}

// NewTourRequestDTO builds a DTO from the persisted model.
func NewTourRequestDTO(request *models.TourRequest) *TourRequestDTO {
	if request == nil {
		return nil
	}
	return &TourRequestDTO{
		ID:            request.ID,
		PropertyID:    request.PropertyID,
		Name:          request.Name,
		Email:         request.Email,
		Phone:         request.Phone,
		PreferredDate: request.PreferredDate,
		Message:       request.Message,
		Status:        string(request.Status),
		CreatedAt:     request.CreatedAt,
		UpdatedAt:     request.UpdatedAt,
	}
}

// NewTourRequestDTOs maps a model slice into response DTOs.
func NewTourRequestDTOs(requests []models.TourRequest) []TourRequestDTO {
	dtos := make([]TourRequestDTO, 0, len(requests))
	for i := range requests {
		dtos = append(dtos, *NewTourRequestDTO(&requests[i]))
	}
	return dtos
}

// CreateContactMessageInput captures the public contact form payload.
type CreateContactMessageInput struct {
	Name    string  `json:"name" validate:"required,min=1,max=100"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Phone   *string `json:"phone" validate:"omitempty,phone,max=20"`
	Message string  `json:"message" validate:"required,min=1,max=2000"`
}

// CreateTourRequestInput captures the public showing request payload.
type CreateTourRequestInput struct {
	PropertyID    uuid.UUID `json:"property_id" validate:"required"`
	Name          string    `json:"name" validate:"required,min=1,max=100"`
	Email         string    `json:"email" validate:"required,email,max=255"`
	Phone         *string   `json:"phone" validate:"omitempty,phone,max=20"`
	PreferredDate time.Time `json:"preferred_date" validate:"required"`
	Message       *string   `json:"message" validate:"omitempty,max=2000"`
}

// UpdateTourStatusInput moves a showing request through its workflow.
type UpdateTourStatusInput struct {
	Status string `json:"status" validate:"required"`
}
