package profiles

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:profiles_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.Profile{}))
	return conn
}

func newTestService(t *testing.T) Service {
	t.Helper()

	svc, err := NewService(ServiceParams{Repo: NewRepository(openTestDB(t))})
	require.NoError(t, err)
	return svc
}

func TestSyncCreatesThenRefreshesProfile(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	dto, err := svc.Sync(context.Background(), Claims{
		UserID:   userID,
		Email:    "sloane@example.com",
		FullName: "Sloane Carter",
		Role:     enums.RoleCustomer,
	})
	require.NoError(t, err)
	require.Equal(t, "sloane@example.com", dto.Email)
	require.Equal(t, "Sloane Carter", *dto.FullName)

	updated, err := svc.Sync(context.Background(), Claims{
		UserID:   userID,
		Email:    "sloane.carter@example.com",
		FullName: "Sloane Carter",
		Role:     enums.RoleCustomer,
	})
	require.NoError(t, err)
	require.Equal(t, userID, updated.ID)
	require.Equal(t, "sloane.carter@example.com", updated.Email)
}

func TestSyncDefaultsUnknownRole(t *testing.T) {
	svc := newTestService(t)

	dto, err := svc.Sync(context.Background(), Claims{
		UserID: uuid.New(),
		Email:  "quinn@example.com",
		Role:   enums.UserRole("superuser"),
	})
	require.NoError(t, err)
	require.Equal(t, string(enums.RoleCustomer), dto.Role)
}

func TestSyncRequiresIdentity(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Sync(context.Background(), Claims{Email: "no-subject@example.com"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())

	_, err = svc.Sync(context.Background(), Claims{UserID: uuid.New()})
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestGetMissingProfile(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
