package tickets

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
	"github.com/luxerealty/luxerealty-backend/pkg/outbox"
	"github.com/luxerealty/luxerealty-backend/pkg/outbox/payloads"
	"github.com/luxerealty/luxerealty-backend/pkg/pagination"
)

// Actor identifies the caller for access checks. UserID is nil for guests.
type Actor struct {
	UserID *uuid.UUID
	Role   enums.UserRole
}

// IsAdmin reports whether the actor holds back-office privileges.
func (a Actor) IsAdmin() bool {
	return a.Role == enums.RoleAdmin
}

// Service orchestrates the helpdesk workflow.
type Service interface {
	Create(ctx context.Context, actor Actor, input CreateTicketInput) (*TicketDTO, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]TicketDTO, error)
	ListAll(ctx context.Context, query ListAllQuery) ([]TicketDTO, string, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*TicketDTO, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*TicketDTO, error)
	UpdateNotes(ctx context.Context, id uuid.UUID, input UpdateNotesInput) (*TicketDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddReply(ctx context.Context, actor Actor, ticketID uuid.UUID, input AddReplyInput) (*ReplyDTO, error)
	ListReplies(ctx context.Context, actor Actor, ticketID uuid.UUID) ([]ReplyDTO, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventEmitter interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type replyPublisher interface {
	Publish(ctx context.Context, channel string, payload any) error
	TicketRepliesChannel(ticketID string) string
}

// ServiceParams groups dependencies for the ticket service.
type ServiceParams struct {
	Repo              Repository
	Outbox            eventEmitter
	TransactionRunner txRunner
	Publisher         replyPublisher
	Logger            *logger.Logger
}

type service struct {
	repo      Repository
	outbox    eventEmitter
	txRunner  txRunner
	publisher replyPublisher
	logg      *logger.Logger
}

// NewService constructs a ticket service.
func NewService(params ServiceParams) (*service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "ticket repo required")
	}
	if params.Outbox == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "outbox emitter required")
	}
	if params.TransactionRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	return &service{
		repo:      params.Repo,
		outbox:    params.Outbox,
		txRunner:  params.TransactionRunner,
		publisher: params.Publisher,
		logg:      params.Logger,
	}, nil
}

// Create opens a new ticket. Guests must supply contact details; the status
// always starts at open no matter what the client sends.
func (s *service) Create(ctx context.Context, actor Actor, input CreateTicketInput) (*TicketDTO, error) {
	priority := enums.TicketPriorityNormal
	if raw := strings.TrimSpace(input.Priority); raw != "" {
		priority = enums.TicketPriority(raw)
		if !priority.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid ticket priority")
		}
	}

	ticket := &models.SupportTicket{
		UserID:   actor.UserID,
		Subject:  strings.TrimSpace(input.Subject),
		Message:  strings.TrimSpace(input.Message),
		Status:   enums.TicketStatusOpen,
		Priority: priority,
	}

	if actor.UserID == nil {
		if input.GuestName == nil || strings.TrimSpace(*input.GuestName) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "guest_name is required for anonymous tickets")
		}
		if input.GuestEmail == nil || strings.TrimSpace(*input.GuestEmail) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "guest_email is required for anonymous tickets")
		}
		ticket.GuestName = input.GuestName
		ticket.GuestEmail = input.GuestEmail
	}

	if err := s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, ticket); err != nil {
			return err
		}
		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventTicketCreated,
			AggregateType: enums.AggregateTicket,
			AggregateID:   ticket.ID,
			Actor:         actorRef(actor),
			Data: payloads.TicketCreatedEvent{
				TicketID: ticket.ID,
				Subject:  ticket.Subject,
				Priority: ticket.Priority,
			},
		})
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create ticket")
	}

	return NewTicketDTO(ticket, actor.IsAdmin()), nil
}

// ListMine returns the caller's tickets, newest first.
func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]TicketDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	ticketRows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list tickets")
	}
	return NewTicketDTOs(ticketRows, false), nil
}

// ListAll returns a cursor-paginated back-office view.
func (s *service) ListAll(ctx context.Context, query ListAllQuery) ([]TicketDTO, string, error) {
	repoQuery := ListTicketsQuery{Limit: query.Limit}

	if query.Status != nil {
		status := enums.TicketStatus(strings.TrimSpace(*query.Status))
		if !status.IsValid() {
			return nil, "", pkgerrors.New(pkgerrors.CodeValidation, "invalid ticket status filter")
		}
		repoQuery.Status = &status
	}

	cursor, err := pagination.ParseCursor(query.Cursor)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	repoQuery.Cursor = cursor

	ticketRows, next, err := s.repo.ListAll(ctx, repoQuery)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list tickets")
	}

	nextCursor := ""
	if next != nil {
		nextCursor = pagination.EncodeCursor(*next)
	}
	return NewTicketDTOs(ticketRows, true), nextCursor, nil
}

// Get loads one ticket. Non-owners get not found rather than forbidden so
// ticket ids cannot be probed.
func (s *service) Get(ctx context.Context, actor Actor, id uuid.UUID) (*TicketDTO, error) {
	ticket, err := s.loadAccessible(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return NewTicketDTO(ticket, actor.IsAdmin()), nil
}

// UpdateStatus transitions the workflow state and queues a notification.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, input UpdateStatusInput) (*TicketDTO, error) {
	status := enums.TicketStatus(strings.TrimSpace(input.Status))
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid ticket status")
	}

	ticket, err := s.loadTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	if ticket.Status == status {
		return NewTicketDTO(ticket, true), nil
	}
	ticket.Status = status

	if err := s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Update(ctx, ticket); err != nil {
			return err
		}
		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventTicketUpdated,
			AggregateType: enums.AggregateTicket,
			AggregateID:   ticket.ID,
			Data: payloads.TicketUpdatedEvent{
				TicketID:      ticket.ID,
				Subject:       ticket.Subject,
				Status:        ticket.Status,
				UpdatedFields: []string{"status"},
			},
		})
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update ticket status")
	}

	return NewTicketDTO(ticket, true), nil
}

// UpdateNotes replaces the internal triage notes. No notification is sent;
// notes never leave the back office.
func (s *service) UpdateNotes(ctx context.Context, id uuid.UUID, input UpdateNotesInput) (*TicketDTO, error) {
	ticket, err := s.loadTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	notes := strings.TrimSpace(input.AdminNotes)
	if notes == "" {
		ticket.AdminNotes = nil
	} else {
		ticket.AdminNotes = &notes
	}

	if err := s.repo.Update(ctx, ticket); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update ticket notes")
	}
	return NewTicketDTO(ticket, true), nil
}

// Delete removes a ticket and, via cascade, its replies.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "ticket id is required")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete ticket")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "ticket not found")
	}
	return nil
}

// AddReply appends one message to the conversation. Closed tickets reject
// new replies with a state conflict.
func (s *service) AddReply(ctx context.Context, actor Actor, ticketID uuid.UUID, input AddReplyInput) (*ReplyDTO, error) {
	ticket, err := s.loadAccessible(ctx, actor, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == enums.TicketStatusClosed {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "ticket is closed")
	}

	reply := &models.TicketReply{
		TicketID:     ticket.ID,
		UserID:       actor.UserID,
		Message:      strings.TrimSpace(input.Message),
		IsAdminReply: actor.IsAdmin(),
	}

	if err := s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).CreateReply(ctx, reply); err != nil {
			return err
		}
		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventReplyAdded,
			AggregateType: enums.AggregateTicketReply,
			AggregateID:   reply.ID,
			Actor:         actorRef(actor),
			Data: payloads.ReplyAddedEvent{
				TicketID:     ticket.ID,
				ReplyID:      reply.ID,
				Message:      reply.Message,
				IsAdminReply: reply.IsAdminReply,
			},
		})
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add reply")
	}

	dto := NewReplyDTO(reply)
	s.publishReply(ctx, dto)
	return dto, nil
}

// ListReplies returns the conversation oldest-first.
func (s *service) ListReplies(ctx context.Context, actor Actor, ticketID uuid.UUID) ([]ReplyDTO, error) {
	if _, err := s.loadAccessible(ctx, actor, ticketID); err != nil {
		return nil, err
	}
	replies, err := s.repo.ListReplies(ctx, ticketID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list replies")
	}
	return NewReplyDTOs(replies), nil
}

func (s *service) loadTicket(ctx context.Context, id uuid.UUID) (*models.SupportTicket, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ticket id is required")
	}
	ticket, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load ticket")
	}
	if ticket == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "ticket not found")
	}
	return ticket, nil
}

func (s *service) loadAccessible(ctx context.Context, actor Actor, id uuid.UUID) (*models.SupportTicket, error) {
	ticket, err := s.loadTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return ticket, nil
	}
	if ticket.UserID == nil || actor.UserID == nil || *ticket.UserID != *actor.UserID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "ticket not found")
	}
	return ticket, nil
}

func (s *service) publishReply(ctx context.Context, reply *ReplyDTO) {
	if s.publisher == nil || reply == nil {
		return
	}
	payload, err := json.Marshal(reply)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "marshal reply for stream failed")
		}
		return
	}
	channel := s.publisher.TicketRepliesChannel(reply.TicketID.String())
	if err := s.publisher.Publish(ctx, channel, payload); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "publish reply to stream failed")
	}
}

func actorRef(actor Actor) *outbox.ActorRef {
	ref := &outbox.ActorRef{UserID: actor.UserID}
	if actor.Role != "" {
		ref.Role = string(actor.Role)
	}
	return ref
}
