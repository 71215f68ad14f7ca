package inquiries

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
)

// Service orchestrates contact messages and tour requests.
type Service interface {
	CreateContactMessage(ctx context.Context, input CreateContactMessageInput) (*ContactMessageDTO, error)
	ListContactMessages(ctx context.Context) ([]ContactMessageDTO, error)
	CreateTourRequest(ctx context.Context, input CreateTourRequestInput) (*TourRequestDTO, error)
	ListTourRequests(ctx context.Context, status *string) ([]TourRequestDTO, error)
	UpdateTourStatus(ctx context.Context, id uuid.UUID, input UpdateTourStatusInput) (*TourRequestDTO, error)
}

type propertyLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
}

// ServiceParams groups dependencies for the inquiry service.
type ServiceParams struct {
	Repo       Repository
	Properties propertyLoader
	Logger     *logger.Logger
}

type service struct {
	repo       Repository
	properties propertyLoader
	logg       *logger.Logger
}

// NewService constructs an inquiry service.
func NewService(params ServiceParams) (*service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "inquiry repo required")
	}
	if params.Properties == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "property loader required")
	}
	return &service{
		repo:       params.Repo,
		properties: params.Properties,
		logg:       params.Logger,
	}, nil
}

// CreateContactMessage stores a general inquiry from the public site.
func (s *service) CreateContactMessage(ctx context.Context, input CreateContactMessageInput) (*ContactMessageDTO, error) {
	message := &models.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   input.Phone,
		Message: strings.TrimSpace(input.Message),
	}

	if err := s.repo.CreateContactMessage(ctx, message); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create contact message")
	}
	return NewContactMessageDTO(message), nil
}

// ListContactMessages returns all inquiries, newest first.
func (s *service) ListContactMessages(ctx context.Context) ([]ContactMessageDTO, error) {
	messages, err := s.repo.ListContactMessages(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list contact messages")
	}
	return NewContactMessageDTOs(messages), nil
}

// CreateTourRequest stores a showing request after verifying the listing.
func (s *service) CreateTourRequest(ctx context.Context, input CreateTourRequestInput) (*TourRequestDTO, error) {
	if input.PropertyID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "property_id is required")
	}
	// Same-day requests are allowed; anything before today is not schedulable.
	if input.PreferredDate.Before(startOfToday()) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "preferred_date must not be in the past")
	}

	property, err := s.properties.FindByID(ctx, input.PropertyID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load property")
	}
	if property == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "property not found")
	}

	request := &models.TourRequest{
		PropertyID:    input.PropertyID,
		Name:          strings.TrimSpace(input.Name),
		Email:         strings.TrimSpace(input.Email),
		Phone:         input.Phone,
		PreferredDate: input.PreferredDate,
		Message:       input.Message,
		Status:        enums.TourStatusPending,
	}

	if err := s.repo.CreateTourRequest(ctx, request); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create tour request")
	}
	return NewTourRequestDTO(request), nil
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// ListTourRequests returns showing requests, optionally filtered by status.
func (s *service) ListTourRequests(ctx context.Context, status *string) ([]TourRequestDTO, error) {
	var filter *enums.TourStatus
	if status != nil {
		parsed := enums.TourStatus(strings.TrimSpace(*status))
		if !parsed.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid tour status filter")
		}
		filter = &parsed
	}

	requests, err := s.repo.ListTourRequests(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list tour requests")
	}
	return NewTourRequestDTOs(requests), nil
}

// UpdateTourStatus confirms or cancels a showing request.
func (s *service) UpdateTourStatus(ctx context.Context, id uuid.UUID, input UpdateTourStatusInput) (*TourRequestDTO, error) {
	status := enums.TourStatus(strings.TrimSpace(input.Status))
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid tour status")
	}

	request, err := s.repo.FindTourRequestByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tour request")
	}
	if request == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "tour request not found")
	}

	request.Status = status
	if err := s.repo.UpdateTourRequest(ctx, request); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update tour request")
	}
	return NewTourRequestDTO(request), nil
}
