package controllers

import (
	"net/http"

	"github.com/luxerealty/luxerealty-backend/api/responses"
	"github.com/luxerealty/luxerealty-backend/api/validators"
	notificationsvc "github.com/luxerealty/luxerealty-backend/internal/notifications"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
)

// SendNotification dispatches an email directly. The response keeps the shape
// the admin dashboard has consumed since before the envelope convention.
func SendNotification(svc notificationsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload notificationsvc.SendInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Send(r.Context(), payload)
		if err != nil {
			typed := pkgerrors.As(err)
			if typed == nil {
				typed = pkgerrors.Wrap(pkgerrors.CodeInternal, err, "send notification")
			}
			if logg != nil {
				logg.Error(r.Context(), "notification.send_failed", err)
			}
			responses.WriteJSON(w, pkgerrors.MetadataFor(typed.Code()).HTTPStatus,
				map[string]any{"error": typed.Message()})
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"success":       true,
			"emailResponse": result,
		})
	}
}
