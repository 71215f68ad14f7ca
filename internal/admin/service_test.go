package admin

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/luxerealty/luxerealty-backend/internal/inquiries"
	"github.com/luxerealty/luxerealty-backend/internal/properties"
	"github.com/luxerealty/luxerealty-backend/internal/tickets"
	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:admin_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&models.Property{},
		&models.ContactMessage{},
		&models.TourRequest{},
		&models.SupportTicket{},
		&models.TicketReply{},
	))
	return conn
}

func newTestService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{
		Properties: properties.NewRepository(conn),
		Tickets:    tickets.NewRepository(conn),
		Inquiries:  inquiries.NewRepository(conn),
	})
	require.NoError(t, err)
	return svc
}

func TestDashboardAggregatesCounts(t *testing.T) {
	conn := openTestDB(t)
	svc := newTestService(t, conn)
	ctx := context.Background()

	featured := &models.Property{
		Title:    "Harborfront Penthouse",
		Location: "Miami, FL",
		Price:    decimal.NewFromInt(8750000),
		Type:     enums.PropertyTypeCondo,
		Featured: true,
	}
	require.NoError(t, conn.Create(featured).Error)
	require.NoError(t, conn.Create(&models.Property{
		Title:    "Cliffside Villa",
		Location: "Malibu, CA",
		Price:    decimal.NewFromInt(4200000),
		Type:     enums.PropertyTypeHouse,
	}).Error)

	require.NoError(t, conn.Create(&models.SupportTicket{
		Subject: "Billing question",
		Message: "Charged twice.",
		Status:  enums.TicketStatusOpen,
	}).Error)
	require.NoError(t, conn.Create(&models.SupportTicket{
		Subject: "Login issue",
		Message: "Cannot sign in.",
		Status:  enums.TicketStatusResolved,
	}).Error)

	require.NoError(t, conn.Create(&models.ContactMessage{
		Name:    "Avery",
		Email:   "avery@example.com",
		Message: "Looking to sell.",
	}).Error)

	require.NoError(t, conn.Create(&models.TourRequest{
		PropertyID:    featured.ID,
		Name:          "Casey",
		Email:         "casey@example.com",
		PreferredDate: time.Now().Add(48 * time.Hour),
		Status:        enums.TourStatusPending,
	}).Error)
	require.NoError(t, conn.Create(&models.TourRequest{
		PropertyID:    featured.ID,
		Name:          "Drew",
		Email:         "drew@example.com",
		PreferredDate: time.Now().Add(72 * time.Hour),
		Status:        enums.TourStatusConfirmed,
	}).Error)

	dashboard, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	require.Equal(t, int64(2), dashboard.Properties.Total)
	require.Equal(t, int64(1), dashboard.Properties.Featured)
	require.Equal(t, int64(2), dashboard.Tickets.Total)
	require.Equal(t, int64(1), dashboard.Tickets.Open)
	require.Equal(t, int64(1), dashboard.Tickets.Resolved)
	require.Equal(t, int64(0), dashboard.Tickets.Closed)
	require.Equal(t, int64(1), dashboard.Inquiries.ContactMessages)
	require.Equal(t, int64(2), dashboard.TourRequests.Total)
	require.Equal(t, int64(1), dashboard.TourRequests.Pending)
	require.Equal(t, int64(1), dashboard.TourRequests.Confirmed)
}

func TestDashboardEmptyDatabase(t *testing.T) {
	conn := openTestDB(t)
	svc := newTestService(t, conn)

	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(0), dashboard.Properties.Total)
	require.Equal(t, int64(0), dashboard.Tickets.Total)
	require.Equal(t, int64(0), dashboard.TourRequests.Total)
}

func TestNewServiceRequiresCounters(t *testing.T) {
	_, err := NewService(ServiceParams{})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeInternal, typed.Code())
}
