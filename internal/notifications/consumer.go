package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	pubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/email/resend"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
	"github.com/luxerealty/luxerealty-backend/pkg/outbox"
	"github.com/luxerealty/luxerealty-backend/pkg/outbox/idempotency"
	"github.com/luxerealty/luxerealty-backend/pkg/outbox/payloads"
)

const ticketNotificationConsumer = "ticket-notifications"

type ticketLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.SupportTicket, error)
}

type profileLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

// Consumer watches ticket events and fans them out as transactional emails.
type Consumer struct {
	repo         Repository
	tickets      ticketLoader
	profiles     profileLoader
	sender       emailSender
	subscription *pubsub.Subscriber
	idempotency  *idempotency.Manager
	logg         *logger.Logger
}

// ConsumerParams groups dependencies for the notification consumer.
type ConsumerParams struct {
	Repo         Repository
	Tickets      ticketLoader
	Profiles     profileLoader
	Sender       emailSender
	Subscription *pubsub.Subscriber
	Idempotency  *idempotency.Manager
	Logger       *logger.Logger
}

// NewConsumer builds a ticket notification consumer.
func NewConsumer(params ConsumerParams) (*Consumer, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("notifications repository required")
	}
	if params.Tickets == nil {
		return nil, fmt.Errorf("ticket loader required")
	}
	if params.Profiles == nil {
		return nil, fmt.Errorf("profile loader required")
	}
	if params.Sender == nil {
		return nil, fmt.Errorf("email sender required")
	}
	if params.Subscription == nil {
		return nil, fmt.Errorf("domain subscription required")
	}
	if params.Idempotency == nil {
		return nil, fmt.Errorf("idempotency manager required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Consumer{
		repo:         params.Repo,
		tickets:      params.Tickets,
		profiles:     params.Profiles,
		sender:       params.Sender,
		subscription: params.Subscription,
		idempotency:  params.Idempotency,
		logg:         params.Logger,
	}, nil
}

// Run starts the consumer loop until the context is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	return c.subscription.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		result := c.process(ctx, msg)
		if result.nack {
			msg.Nack()
			return
		}
		msg.Ack()
	})
}

type processResult struct {
	ack  bool
	nack bool
}

func (c *Consumer) process(ctx context.Context, msg *pubsub.Message) processResult {
	eventType := msg.Attributes["event_type"]
	logCtx := c.logg.WithFields(ctx, map[string]any{
		"message_id": msg.ID,
		"event_type": eventType,
	})

	parsed, err := enums.ParseOutboxEventType(eventType)
	if err != nil {
		c.logg.Info(logCtx, "skipping unknown event")
		return processResult{ack: true}
	}

	var envelope outbox.PayloadEnvelope
	if err := json.Unmarshal(msg.Data, &envelope); err != nil {
		c.logg.Error(logCtx, "failed to decode envelope", err)
		return processResult{ack: true}
	}

	eventID, err := uuid.Parse(envelope.EventID)
	if err != nil {
		c.logg.Error(logCtx, "invalid event id", err)
		return processResult{ack: true}
	}

	already, err := c.idempotency.CheckAndMarkProcessed(ctx, ticketNotificationConsumer, eventID)
	if err != nil {
		c.logg.Error(logCtx, "idempotency check failed", err)
		return processResult{nack: true}
	}
	if already {
		c.logg.Info(logCtx, "event already processed")
		return processResult{ack: true}
	}

	if err := c.handle(ctx, parsed, envelope.Data, logCtx); err != nil {
		c.logg.Error(logCtx, "notification handling failed", err)
		_ = c.idempotency.Delete(ctx, ticketNotificationConsumer, eventID)
		return processResult{nack: true}
	}

	return processResult{ack: true}
}

func (c *Consumer) handle(ctx context.Context, eventType enums.OutboxEventType, data json.RawMessage, logCtx context.Context) error {
	switch eventType {
	case enums.EventTicketCreated:
		var payload payloads.TicketCreatedEvent
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("decode ticket_created payload: %w", err)
		}
		return c.notify(ctx, payload.TicketID, enums.NotificationEventTicketCreated, logCtx, func(to Recipient, _ *models.SupportTicket) Email {
			return composeTicketCreated(to, payload)
		})
	case enums.EventTicketUpdated:
		var payload payloads.TicketUpdatedEvent
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("decode ticket_updated payload: %w", err)
		}
		return c.notify(ctx, payload.TicketID, enums.NotificationEventTicketUpdated, logCtx, func(to Recipient, _ *models.SupportTicket) Email {
			return composeTicketUpdated(to, payload)
		})
	case enums.EventReplyAdded:
		var payload payloads.ReplyAddedEvent
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("decode reply_added payload: %w", err)
		}
		// Customer replies surface in the admin dashboard; only admin
		// replies email the requester.
		if !payload.IsAdminReply {
			c.logg.Info(logCtx, "skipping customer reply")
			return nil
		}
		return c.notify(ctx, payload.TicketID, enums.NotificationEventReplyAdded, logCtx, func(to Recipient, ticket *models.SupportTicket) Email {
			return composeReplyAdded(to, ticket.Subject, payload)
		})
	default:
		c.logg.Info(logCtx, "event type not handled")
		return nil
	}
}

func (c *Consumer) notify(ctx context.Context, ticketID uuid.UUID, event enums.NotificationEvent, logCtx context.Context, compose func(Recipient, *models.SupportTicket) Email) error {
	ticket, err := c.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return fmt.Errorf("load ticket: %w", err)
	}
	if ticket == nil {
		c.logg.Info(logCtx, "ticket no longer exists")
		return nil
	}

	to, err := c.resolveRecipient(ctx, ticket)
	if err != nil {
		return err
	}
	if to == nil {
		c.logg.Warn(logCtx, "no recipient resolvable for ticket")
		return nil
	}

	email := compose(*to, ticket)
	result, err := c.sender.Send(ctx, resend.SendParams{
		To:      []string{email.To},
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	record := &models.Notification{
		TicketID:  ticket.ID,
		Event:     event,
		Recipient: email.To,
		Subject:   email.Subject,
	}
	if result != nil && result.ID != "" {
		record.ProviderID = &result.ID
	}
	if err := c.repo.Create(ctx, record); err != nil {
		// Email is already out; a lost audit row is not worth a redelivery.
		c.logg.Warn(c.logg.WithFields(logCtx, map[string]any{"ticket_id": ticket.ID.String()}), "failed to record notification")
	}

	c.logg.Info(logCtx, "notification email dispatched")
	return nil
}

func (c *Consumer) resolveRecipient(ctx context.Context, ticket *models.SupportTicket) (*Recipient, error) {
	if ticket.UserID != nil {
		profile, err := c.profiles.FindByID(ctx, *ticket.UserID)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		if profile != nil && profile.Email != "" {
			to := &Recipient{Email: profile.Email}
			if profile.FullName != nil {
				to.Name = *profile.FullName
			}
			return to, nil
		}
	}
	if ticket.GuestEmail != nil && *ticket.GuestEmail != "" {
		to := &Recipient{Email: *ticket.GuestEmail}
		if ticket.GuestName != nil {
			to.Name = *ticket.GuestName
		}
		return to, nil
	}
	return nil, nil
}
