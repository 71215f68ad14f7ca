package notifications

import (
	"context"
	"strings"

	"github.com/luxerealty/luxerealty-backend/pkg/email/resend"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
)

// Service sends one-off emails on behalf of the back office.
type Service interface {
	Send(ctx context.Context, input SendInput) (*resend.SendResult, error)
}

// SendInput is the direct-dispatch payload.
type SendInput struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	HTML    string `json:"html" validate:"required,min=1"`
}

type emailSender interface {
	Send(ctx context.Context, params resend.SendParams) (*resend.SendResult, error)
}

// ServiceParams groups dependencies for the notification service.
type ServiceParams struct {
	Sender emailSender
	Logger *logger.Logger
}

type service struct {
	sender emailSender
	logg   *logger.Logger
}

// NewService constructs a notification service.
func NewService(params ServiceParams) (*service, error) {
	if params.Sender == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "email sender required")
	}
	return &service{sender: params.Sender, logg: params.Logger}, nil
}

// Send dispatches the email through the provider and surfaces its message id.
func (s *service) Send(ctx context.Context, input SendInput) (*resend.SendResult, error) {
	to := strings.TrimSpace(input.To)
	if to == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "recipient is required")
	}

	result, err := s.sender.Send(ctx, resend.SendParams{
		To:      []string{to},
		Subject: strings.TrimSpace(input.Subject),
		HTML:    input.HTML,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
