package controllers

import (
	"net/http"

	"github.com/luxerealty/luxerealty-backend/api/middleware"
	"github.com/luxerealty/luxerealty-backend/api/responses"
	profilesvc "github.com/luxerealty/luxerealty-backend/internal/profiles"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
)

// GetMe syncs the verified token claims into the profile table and returns
// the stored profile. The upsert keeps email and name current on every call.
func GetMe(svc profilesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := svc.Sync(r.Context(), profilesvc.Claims{
			UserID:   userID,
			Email:    middleware.EmailFromContext(r.Context()),
			FullName: middleware.FullNameFromContext(r.Context()),
			Role:     enums.UserRole(middleware.RoleFromContext(r.Context())),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}
