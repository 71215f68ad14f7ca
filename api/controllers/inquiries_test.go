package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	inquirysvc "github.com/luxerealty/luxerealty-backend/internal/inquiries"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
)

type stubInquiryService struct {
	createContact func(ctx context.Context, input inquirysvc.CreateContactMessageInput) (*inquirysvc.ContactMessageDTO, error)
	listContact   func(ctx context.Context) ([]inquirysvc.ContactMessageDTO, error)
	createTour    func(ctx context.Context, input inquirysvc.CreateTourRequestInput) (*inquirysvc.TourRequestDTO, error)
	listTours     func(ctx context.Context, status *string) ([]inquirysvc.TourRequestDTO, error)
	updateTour    func(ctx context.Context, id uuid.UUID, input inquirysvc.UpdateTourStatusInput) (*inquirysvc.TourRequestDTO, error)
}

func (s *stubInquiryService) CreateContactMessage(ctx context.Context, input inquirysvc.CreateContactMessageInput) (*inquirysvc.ContactMessageDTO, error) {
	return s.createContact(ctx, input)
}

func (s *stubInquiryService) ListContactMessages(ctx context.Context) ([]inquirysvc.ContactMessageDTO, error) {
	return s.listContact(ctx)
}

func (s *stubInquiryService) CreateTourRequest(ctx context.Context, input inquirysvc.CreateTourRequestInput) (*inquirysvc.TourRequestDTO, error) {
	return s.createTour(ctx, input)
}

func (s *stubInquiryService) ListTourRequests(ctx context.Context, status *string) ([]inquirysvc.TourRequestDTO, error) {
	return s.listTours(ctx, status)
}

func (s *stubInquiryService) UpdateTourStatus(ctx context.Context, id uuid.UUID, input inquirysvc.UpdateTourStatusInput) (*inquirysvc.TourRequestDTO, error) {
	return s.updateTour(ctx, id, input)
}

func TestCreateContactMessageReturnsCreated(t *testing.T) {
	svc := &stubInquiryService{
		createContact: func(_ context.Context, input inquirysvc.CreateContactMessageInput) (*inquirysvc.ContactMessageDTO, error) {
			return &inquirysvc.ContactMessageDTO{ID: uuid.New(), Name: input.Name}, nil
		},
	}

	body := `{"name":"Avery","email":"avery@example.com","message":"Looking to sell."}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateContactMessage(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateContactMessageRejectsBadEmail(t *testing.T) {
	svc := &stubInquiryService{}

	body := `{"name":"Avery","email":"not-an-email","message":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateContactMessage(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, string(pkgerrors.CodeValidation), errorCode(t, rec))
}

func TestCreateTourRequestSurfacesMissingProperty(t *testing.T) {
	svc := &stubInquiryService{
		createTour: func(context.Context, inquirysvc.CreateTourRequestInput) (*inquirysvc.TourRequestDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "property not found")
		},
	}

	body := `{"property_id":"` + uuid.NewString() + `","name":"Casey","email":"casey@example.com","preferred_date":"2026-09-12T10:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/tour-requests", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateTourRequest(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTourRequestsForwardsStatusFilter(t *testing.T) {
	var gotStatus *string
	svc := &stubInquiryService{
		listTours: func(_ context.Context, status *string) ([]inquirysvc.TourRequestDTO, error) {
			gotStatus = status
			return []inquirysvc.TourRequestDTO{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/tour-requests?status=pending", nil)
	rec := httptest.NewRecorder()
	ListTourRequests(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotStatus)
	require.Equal(t, "pending", *gotStatus)
}

func TestUpdateTourStatusForwardsBody(t *testing.T) {
	tourID := uuid.New()
	svc := &stubInquiryService{
		updateTour: func(_ context.Context, id uuid.UUID, input inquirysvc.UpdateTourStatusInput) (*inquirysvc.TourRequestDTO, error) {
			require.Equal(t, tourID, id)
			return &inquirysvc.TourRequestDTO{ID: id, Status: input.Status}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPatch, "/admin/tour-requests/"+tourID.String()+"/status",
		strings.NewReader(`{"status":"confirmed"}`))
	req = withURLParam(req, "id", tourID.String())
	rec := httptest.NewRecorder()
	UpdateTourStatus(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var dto inquirysvc.TourRequestDTO
	decodeSuccess(t, rec, &dto)
	require.Equal(t, "confirmed", dto.Status)
}
