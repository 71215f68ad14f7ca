package tickets

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	"github.com/luxerealty/luxerealty-backend/pkg/pagination"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:tickets_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&models.SupportTicket{}, &models.TicketReply{}, &models.OutboxEvent{}))

	t.Cleanup(func() {
		sqlDB, err := conn.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

func seedTicket(t *testing.T, repo Repository, mutate func(*models.SupportTicket)) *models.SupportTicket {
	t.Helper()

	userID := uuid.New()
	ticket := &models.SupportTicket{
		UserID:   &userID,
		Subject:  "Gate code not working",
		Message:  "The access code for the Malibu showing was rejected.",
		Status:   enums.TicketStatusOpen,
		Priority: enums.TicketPriorityNormal,
	}
	if mutate != nil {
		mutate(ticket)
	}
	require.NoError(t, repo.Create(context.Background(), ticket))
	return ticket
}

func TestRepositoryListByUserOrdersNewestFirst(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	userID := uuid.New()

	first := seedTicket(t, repo, func(tk *models.SupportTicket) { tk.UserID = &userID })
	second := seedTicket(t, repo, func(tk *models.SupportTicket) { tk.UserID = &userID })
	seedTicket(t, repo, nil)

	// Force distinct created_at values; sqlite timestamps can collide.
	require.NoError(t, repo.(*repository).db.Model(first).Update("created_at", time.Now().Add(-time.Hour)).Error)

	got, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, second.ID, got[0].ID)
	require.Equal(t, first.ID, got[1].ID)
}

func TestRepositoryListAllFiltersAndPaginates(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		ticket := seedTicket(t, repo, nil)
		require.NoError(t, repo.(*repository).db.Model(ticket).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}
	closedTicket := seedTicket(t, repo, func(tk *models.SupportTicket) { tk.Status = enums.TicketStatusClosed })
	require.NoError(t, repo.(*repository).db.Model(closedTicket).Update("created_at", base.Add(time.Hour)).Error)

	closed := enums.TicketStatusClosed
	got, next, err := repo.ListAll(context.Background(), ListTicketsQuery{Status: &closed})
	require.NoError(t, err)
	require.Nil(t, next)
	require.Len(t, got, 1)
	require.Equal(t, closedTicket.ID, got[0].ID)

	got, next, err = repo.ListAll(context.Background(), ListTicketsQuery{Limit: 3})
	require.NoError(t, err)
	require.NotNil(t, next)
	require.Len(t, got, 3)

	rest, last, err := repo.ListAll(context.Background(), ListTicketsQuery{Limit: 3, Cursor: &pagination.Cursor{
		CreatedAt: next.CreatedAt,
		ID:        next.ID,
	}})
	require.NoError(t, err)
	require.Nil(t, last)
	require.Len(t, rest, 2)
}

func TestRepositoryRepliesOrderedOldestFirst(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ticket := seedTicket(t, repo, nil)

	base := time.Now().Add(-time.Hour)
	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		reply := &models.TicketReply{
			TicketID: ticket.ID,
			Message:  "update",
		}
		require.NoError(t, repo.CreateReply(context.Background(), reply))
		require.NoError(t, repo.(*repository).db.Model(reply).Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
		ids = append(ids, reply.ID)
	}

	got, err := repo.ListReplies(context.Background(), ticket.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, reply := range got {
		require.Equal(t, ids[i], reply.ID)
	}
}

func TestRepositoryDeleteReportsMissing(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ticket := seedTicket(t, repo, nil)

	deleted, err := repo.Delete(context.Background(), ticket.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.Delete(context.Background(), ticket.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
