package inquiries

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

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:inquiries_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, conn.AutoMigrate(
		&models.Property{},
		&models.ContactMessage{},
		&models.TourRequest{},
	))
	return conn
}

func seedProperty(t *testing.T, conn *gorm.DB) *models.Property {
	t.Helper()

	property := &models.Property{
		Title:    "Cliffside Villa",
		Location: "Malibu, CA",
		Price:    decimal.NewFromInt(4200000),
		Type:     enums.PropertyTypeHouse,
	}
	require.NoError(t, conn.Create(property).Error)
	return property
}

func TestContactMessagesNewestFirst(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	first := &models.ContactMessage{Name: "Avery", Email: "avery@example.com", Message: "Looking to sell."}
	require.NoError(t, repo.CreateContactMessage(ctx, first))

	second := &models.ContactMessage{Name: "Blair", Email: "blair@example.com", Message: "Relocation inquiry."}
	require.NoError(t, repo.CreateContactMessage(ctx, second))

	// Force distinct timestamps; sqlite clock granularity can collide.
	require.NoError(t, conn.Model(&models.ContactMessage{}).
		Where("id = ?", first.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)

	messages, err := repo.ListContactMessages(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	require.Equal(t, "Blair", messages[0].Name)
}

func TestTourRequestsFilterByStatus(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	property := seedProperty(t, conn)

	pending := &models.TourRequest{
		PropertyID:    property.ID,
		Name:          "Casey",
		Email:         "casey@example.com",
		PreferredDate: time.Now().Add(48 * time.Hour),
		Status:        enums.TourStatusPending,
	}
	require.NoError(t, repo.CreateTourRequest(ctx, pending))

	confirmed := &models.TourRequest{
		PropertyID:    property.ID,
		Name:          "Drew",
		Email:         "drew@example.com",
		PreferredDate: time.Now().Add(72 * time.Hour),
		Status:        enums.TourStatusConfirmed,
	}
	require.NoError(t, repo.CreateTourRequest(ctx, confirmed))

	all, err := repo.ListTourRequests(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)

	filter := enums.TourStatusConfirmed
	only, err := repo.ListTourRequests(ctx, &filter)
	require.NoError(t, err)
	require.Len(t, only, 1)
	require.Equal(t, "Drew", only[0].Name)
}

func TestFindTourRequestMissingReturnsNil(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)

	request, err := repo.FindTourRequestByID(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Nil(t, request)
}

func TestUpdateTourRequestPersistsStatus(t *testing.T) {
	conn := openTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	property := seedProperty(t, conn)

	request := &models.TourRequest{
		PropertyID:    property.ID,
		Name:          "Emerson",
		Email:         "emerson@example.com",
		PreferredDate: time.Now().Add(24 * time.Hour),
		Status:        enums.TourStatusPending,
	}
	require.NoError(t, repo.CreateTourRequest(ctx, request))

	request.Status = enums.TourStatusCancelled
	require.NoError(t, repo.UpdateTourRequest(ctx, request))

	got, err := repo.FindTourRequestByID(ctx, request.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, enums.TourStatusCancelled, got.Status)
}
