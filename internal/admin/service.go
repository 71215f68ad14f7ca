package admin

import (
	"context"

	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
)

// Service aggregates back-office dashboard counts.
type Service interface {
	Dashboard(ctx context.Context) (*DashboardDTO, error)
}

type propertyCounter interface {
	Count(ctx context.Context) (int64, error)
	CountFeatured(ctx context.Context) (int64, error)
}

type ticketCounter interface {
	CountByStatus(ctx context.Context) (map[enums.TicketStatus]int64, error)
}

type inquiryCounter interface {
	CountContactMessages(ctx context.Context) (int64, error)
	CountTourRequestsByStatus(ctx context.Context) (map[enums.TourStatus]int64, error)
}

// DashboardDTO is the landing payload for the admin dashboard.
type DashboardDTO struct {
	Properties   PropertyCounts `json:"properties"`
	Tickets      TicketCounts   `json:"tickets"`
	Inquiries    InquiryCounts  `json:"inquiries"`
	TourRequests TourCounts     `json:"tour_requests"`
}

type PropertyCounts struct {
	Total    int64 `json:"total"`
	Featured int64 `json:"featured"`
}

type TicketCounts struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}

type InquiryCounts struct {
	ContactMessages int64 `json:"contact_messages"`
}

type TourCounts struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
}

// ServiceParams groups dependencies for the admin service.
type ServiceParams struct {
	Properties propertyCounter
	Tickets    ticketCounter
	Inquiries  inquiryCounter
	Logger     *logger.Logger
}

type service struct {
	properties propertyCounter
	tickets    ticketCounter
	inquiries  inquiryCounter
	logg       *logger.Logger
}

// NewService constructs an admin service.
func NewService(params ServiceParams) (*service, error) {
	if params.Properties == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "property counter required")
	}
	if params.Tickets == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "ticket counter required")
	}
	if params.Inquiries == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "inquiry counter required")
	}
	return &service{
		properties: params.Properties,
		tickets:    params.Tickets,
		inquiries:  params.Inquiries,
		logg:       params.Logger,
	}, nil
}

// Dashboard gathers the counts the back office renders on its landing page.
func (s *service) Dashboard(ctx context.Context) (*DashboardDTO, error) {
	total, err := s.properties.Count(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count properties")
	}
	featured, err := s.properties.CountFeatured(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count featured properties")
	}

	ticketCounts, err := s.tickets.CountByStatus(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count tickets")
	}

	contactCount, err := s.inquiries.CountContactMessages(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count contact messages")
	}
	tourCounts, err := s.inquiries.CountTourRequestsByStatus(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count tour requests")
	}

	dashboard := &DashboardDTO{
		Properties: PropertyCounts{
			Total:    total,
			Featured: featured,
		},
		Tickets: TicketCounts{
			Open:       ticketCounts[enums.TicketStatusOpen],
			InProgress: ticketCounts[enums.TicketStatusInProgress],
			Resolved:   ticketCounts[enums.TicketStatusResolved],
			Closed:     ticketCounts[enums.TicketStatusClosed],
		},
		Inquiries: InquiryCounts{
			ContactMessages: contactCount,
		},
		TourRequests: TourCounts{
			Pending:   tourCounts[enums.TourStatusPending],
			Confirmed: tourCounts[enums.TourStatusConfirmed],
			Cancelled: tourCounts[enums.TourStatusCancelled],
		},
	}
	for _, count := range ticketCounts {
		dashboard.Tickets.Total += count
	}
	for _, count := range tourCounts {
		dashboard.TourRequests.Total += count
	}
	return dashboard, nil
}
