package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/luxerealty/luxerealty-backend/api/routes"
	"github.com/luxerealty/luxerealty-backend/internal/admin"
	"github.com/luxerealty/luxerealty-backend/internal/inquiries"
	"github.com/luxerealty/luxerealty-backend/internal/media"
	"github.com/luxerealty/luxerealty-backend/internal/notifications"
	"github.com/luxerealty/luxerealty-backend/internal/paymentmethods"
	"github.com/luxerealty/luxerealty-backend/internal/profiles"
	"github.com/luxerealty/luxerealty-backend/internal/properties"
	"github.com/luxerealty/luxerealty-backend/internal/tickets"
	"github.com/luxerealty/luxerealty-backend/pkg/config"
	"github.com/luxerealty/luxerealty-backend/pkg/db"
	"github.com/luxerealty/luxerealty-backend/pkg/email/resend"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
	"github.com/luxerealty/luxerealty-backend/pkg/metrics"
	"github.com/luxerealty/luxerealty-backend/pkg/migrate"
	"github.com/luxerealty/luxerealty-backend/pkg/outbox"
	"github.com/luxerealty/luxerealty-backend/pkg/pubsub"
	"github.com/luxerealty/luxerealty-backend/pkg/redis"
	"github.com/luxerealty/luxerealty-backend/pkg/storage/gcs"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		requireResource(ctx, logg, "dev migrations", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	requireResource(ctx, logg, "redis", err)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(ctx, "error closing redis", err)
		}
	}()

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	requireResource(ctx, logg, "object storage", err)
	defer func() {
		if err := gcsClient.Close(); err != nil {
			logg.Error(ctx, "error closing object storage", err)
		}
	}()

	pubsubClient, err := pubsub.NewClient(context.Background(), cfg.GCP, cfg.PubSub, logg)
	requireResource(ctx, logg, "pubsub", err)
	defer func() {
		if err := pubsubClient.Close(); err != nil {
			logg.Error(ctx, "error closing pubsub client", err)
		}
	}()

	emailClient, err := resend.NewClient(context.Background(), cfg.Resend, logg)
	requireResource(ctx, logg, "resend", err)

	propertyRepo := properties.NewRepository(dbClient.DB())
	inquiryRepo := inquiries.NewRepository(dbClient.DB())
	ticketRepo := tickets.NewRepository(dbClient.DB())
	outboxService := outbox.NewService(outbox.NewRepository(dbClient.DB()), logg)

	propertyService, err := properties.NewService(properties.ServiceParams{
		Repo:     propertyRepo,
		Cache:    redisClient,
		CacheTTL: cfg.Cache.PropertiesTTL,
		Logger:   logg,
	})
	requireResource(ctx, logg, "property service", err)

	inquiryService, err := inquiries.NewService(inquiries.ServiceParams{
		Repo:       inquiryRepo,
		Properties: propertyRepo,
		Logger:     logg,
	})
	requireResource(ctx, logg, "inquiry service", err)

	ticketService, err := tickets.NewService(tickets.ServiceParams{
		Repo:              ticketRepo,
		Outbox:            outboxService,
		TransactionRunner: dbClient,
		Publisher:         redisClient,
		Logger:            logg,
	})
	requireResource(ctx, logg, "ticket service", err)

	ticketStreamer, err := tickets.NewStreamer(redisClient, logg)
	requireResource(ctx, logg, "ticket streamer", err)

	paymentMethodService, err := paymentmethods.NewService(paymentmethods.ServiceParams{
		Repo:              paymentmethods.NewRepository(dbClient.DB()),
		TransactionRunner: dbClient,
		Logger:            logg,
	})
	requireResource(ctx, logg, "payment method service", err)

	profileService, err := profiles.NewService(profiles.ServiceParams{
		Repo:   profiles.NewRepository(dbClient.DB()),
		Logger: logg,
	})
	requireResource(ctx, logg, "profile service", err)

	notificationService, err := notifications.NewService(notifications.ServiceParams{
		Sender: emailClient,
		Logger: logg,
	})
	requireResource(ctx, logg, "notification service", err)

	mediaService, err := media.NewService(media.ServiceParams{
		Store:  gcsClient,
		Config: cfg.Media,
		Logger: logg,
	})
	requireResource(ctx, logg, "media service", err)

	adminService, err := admin.NewService(admin.ServiceParams{
		Properties: propertyRepo,
		Tickets:    ticketRepo,
		Inquiries:  inquiryRepo,
		Logger:     logg,
	})
	requireResource(ctx, logg, "admin service", err)

	router := routes.NewRouter(routes.RouterParams{
		Config:  cfg,
		Logger:  logg,
		Metrics: metrics.NewHTTPMetrics(),

		DB:          dbClient,
		Redis:       redisClient,
		ObjectStore: gcsClient,
		PubSub:      pubsubClient,

		Properties:     propertyService,
		Inquiries:      inquiryService,
		Tickets:        ticketService,
		TicketStream:   ticketStreamer,
		PaymentMethods: paymentMethodService,
		Profiles:       profileService,
		Notifications:  notificationService,
		Media:          mediaService,
		Admin:          adminService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	runCtx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(runCtx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(runCtx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
