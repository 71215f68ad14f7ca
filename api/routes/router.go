package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luxerealty/luxerealty-backend/api/controllers"
	"github.com/luxerealty/luxerealty-backend/api/middleware"
	adminsvc "github.com/luxerealty/luxerealty-backend/internal/admin"
	inquirysvc "github.com/luxerealty/luxerealty-backend/internal/inquiries"
	mediasvc "github.com/luxerealty/luxerealty-backend/internal/media"
	notificationsvc "github.com/luxerealty/luxerealty-backend/internal/notifications"
	pmsvc "github.com/luxerealty/luxerealty-backend/internal/paymentmethods"
	profilesvc "github.com/luxerealty/luxerealty-backend/internal/profiles"
	propertysvc "github.com/luxerealty/luxerealty-backend/internal/properties"
	ticketsvc "github.com/luxerealty/luxerealty-backend/internal/tickets"
	"github.com/luxerealty/luxerealty-backend/pkg/config"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
	"github.com/luxerealty/luxerealty-backend/pkg/metrics"
)

// RouterParams groups everything the HTTP surface depends on. Readiness
// pingers may be nil; nil entries are skipped by the health check.
type RouterParams struct {
	Config  *config.Config
	Logger  *logger.Logger
	Metrics *metrics.HTTPMetrics

	DB          controllers.Pinger
	Redis       controllers.Pinger
	ObjectStore controllers.Pinger
	PubSub      controllers.Pinger

	Properties     propertysvc.Service
	Inquiries      inquirysvc.Service
	Tickets        ticketsvc.Service
	TicketStream   *ticketsvc.Streamer
	PaymentMethods pmsvc.Service
	Profiles       profilesvc.Service
	Notifications  notificationsvc.Service
	Media          mediasvc.Service
	Admin          adminsvc.Service
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if params.Metrics != nil {
		r.Use(params.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database":     params.DB,
			"redis":        params.Redis,
			"object store": params.ObjectStore,
			"pubsub":       params.PubSub,
		}))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public catalog and inquiry surface.
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", controllers.ListProperties(params.Properties, logg))
			r.Get("/featured", controllers.FeaturedProperties(params.Properties, logg))
			r.Get("/search", controllers.SearchProperties(params.Properties, logg))
			r.Get("/{id}", controllers.GetProperty(params.Properties, logg))
		})
		r.Post("/contact", controllers.CreateContactMessage(params.Inquiries, logg))
		r.Post("/tour-requests", controllers.CreateTourRequest(params.Inquiries, logg))

		// Ticket creation accepts both guests and signed-in users.
		r.With(middleware.OptionalAuth(cfg.JWT, logg)).
			Post("/tickets", controllers.CreateTicket(params.Tickets, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Get("/me", controllers.GetMe(params.Profiles, logg))

			r.Route("/tickets", func(r chi.Router) {
				r.Get("/mine", controllers.ListMyTickets(params.Tickets, logg))
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", controllers.GetTicket(params.Tickets, logg))
					r.Get("/replies", controllers.ListTicketReplies(params.Tickets, logg))
					r.Post("/replies", controllers.AddTicketReply(params.Tickets, logg))
					r.Get("/stream", controllers.StreamTicketReplies(params.Tickets, params.TicketStream, logg))
				})
			})

			r.Route("/payment-methods", func(r chi.Router) {
				r.Get("/", controllers.ListPaymentMethods(params.PaymentMethods, logg))
				r.Post("/", controllers.CreatePaymentMethod(params.PaymentMethods, logg))
				r.Patch("/{id}/default", controllers.SetDefaultPaymentMethod(params.PaymentMethods, logg))
				r.Delete("/{id}", controllers.DeletePaymentMethod(params.PaymentMethods, logg))
			})
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RequireRole(string(enums.RoleAdmin), logg))

		r.Get("/dashboard", controllers.AdminDashboard(params.Admin, logg))

		r.Route("/properties", func(r chi.Router) {
			r.Post("/", controllers.CreateProperty(params.Properties, logg))
			r.Patch("/{id}", controllers.UpdateProperty(params.Properties, logg))
			r.Delete("/{id}", controllers.DeleteProperty(params.Properties, logg))
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Get("/", controllers.ListAllTickets(params.Tickets, logg))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", controllers.GetTicket(params.Tickets, logg))
				r.Get("/replies", controllers.ListTicketReplies(params.Tickets, logg))
				r.Post("/replies", controllers.AddTicketReply(params.Tickets, logg))
				r.Patch("/status", controllers.UpdateTicketStatus(params.Tickets, logg))
				r.Patch("/notes", controllers.UpdateTicketNotes(params.Tickets, logg))
				r.Delete("/", controllers.DeleteTicket(params.Tickets, logg))
			})
		})

		r.Get("/contact-messages", controllers.ListContactMessages(params.Inquiries, logg))
		r.Route("/tour-requests", func(r chi.Router) {
			r.Get("/", controllers.ListTourRequests(params.Inquiries, logg))
			r.Patch("/{id}/status", controllers.UpdateTourStatus(params.Inquiries, logg))
		})

		r.Post("/media", controllers.UploadMedia(params.Media, logg))
		r.Delete("/media", controllers.DeleteMedia(params.Media, logg))
		r.Post("/notifications", controllers.SendNotification(params.Notifications, logg))
	})

	return r
}
