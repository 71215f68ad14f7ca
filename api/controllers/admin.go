package controllers

import (
	"net/http"

	"github.com/luxerealty/luxerealty-backend/api/responses"
	adminsvc "github.com/luxerealty/luxerealty-backend/internal/admin"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
)

// AdminDashboard returns the aggregate counts the back office renders first.
func AdminDashboard(svc adminsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := svc.Dashboard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dashboard)
	}
}
