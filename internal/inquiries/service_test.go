package inquiries

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/luxerealty/luxerealty-backend/internal/properties"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, func(t *testing.T) uuid.UUID) {
	t.Helper()

	conn := openTestDB(t)
	svc, err := NewService(ServiceParams{
		Repo:       NewRepository(conn),
		Properties: properties.NewRepository(conn),
	})
	require.NoError(t, err)

	seed := func(t *testing.T) uuid.UUID {
		return seedProperty(t, conn).ID
	}
	return svc, seed
}

func TestCreateContactMessageTrimsInput(t *testing.T) {
	svc, _ := newTestService(t)

	dto, err := svc.CreateContactMessage(context.Background(), CreateContactMessageInput{
		Name:    "  Finley Park  ",
		Email:   " finley@example.com ",
		Message: " Interested in waterfront listings. ",
	})
	require.NoError(t, err)
	require.Equal(t, "Finley Park", dto.Name)
	require.Equal(t, "finley@example.com", dto.Email)
	require.Equal(t, "Interested in waterfront listings.", dto.Message)

	messages, err := svc.ListContactMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
}

func TestCreateTourRequestRejectsUnknownProperty(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateTourRequest(context.Background(), CreateTourRequestInput{
		PropertyID:    uuid.New(),
		Name:          "Gray",
		Email:         "gray@example.com",
		PreferredDate: time.Now().Add(24 * time.Hour),
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestCreateTourRequestStartsPending(t *testing.T) {
	svc, seed := newTestService(t)
	propertyID := seed(t)

	dto, err := svc.CreateTourRequest(context.Background(), CreateTourRequestInput{
		PropertyID:    propertyID,
		Name:          "Harper",
		Email:         "harper@example.com",
		PreferredDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, "pending", dto.Status)
	require.Equal(t, propertyID, dto.PropertyID)
}

func TestCreateTourRequestRejectsPastDate(t *testing.T) {
	svc, seed := newTestService(t)
	propertyID := seed(t)

	_, err := svc.CreateTourRequest(context.Background(), CreateTourRequestInput{
		PropertyID:    propertyID,
		Name:          "Gray",
		Email:         "gray@example.com",
		PreferredDate: time.Now().Add(-72 * time.Hour),
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	// A same-day request is still schedulable.
	dto, err := svc.CreateTourRequest(context.Background(), CreateTourRequestInput{
		PropertyID:    propertyID,
		Name:          "Gray",
		Email:         "gray@example.com",
		PreferredDate: time.Now(),
	})
	require.NoError(t, err)
	require.Equal(t, "pending", dto.Status)
}

func TestListTourRequestsValidatesStatusFilter(t *testing.T) {
	svc, _ := newTestService(t)

	bogus := "archived"
	_, err := svc.ListTourRequests(context.Background(), &bogus)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	requests, err := svc.ListTourRequests(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, requests)
}

func TestUpdateTourStatusWorkflow(t *testing.T) {
	svc, seed := newTestService(t)
	propertyID := seed(t)

	dto, err := svc.CreateTourRequest(context.Background(), CreateTourRequestInput{
		PropertyID:    propertyID,
		Name:          "Indigo",
		Email:         "indigo@example.com",
		PreferredDate: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateTourStatus(context.Background(), dto.ID, UpdateTourStatusInput{Status: "confirmed"})
	require.NoError(t, err)
	require.Equal(t, "confirmed", updated.Status)

	_, err = svc.UpdateTourStatus(context.Background(), dto.ID, UpdateTourStatusInput{Status: "expired"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	_, err = svc.UpdateTourStatus(context.Background(), uuid.New(), UpdateTourStatusInput{Status: "cancelled"})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
