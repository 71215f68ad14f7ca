package paymentmethods

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
)

// Service orchestrates saved payment methods for a user.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]PaymentMethodDTO, error)
	Create(ctx context.Context, userID uuid.UUID, input CreatePaymentMethodInput) (*PaymentMethodDTO, error)
	SetDefault(ctx context.Context, userID, methodID uuid.UUID) (*PaymentMethodDTO, error)
	Delete(ctx context.Context, userID, methodID uuid.UUID) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ServiceParams groups dependencies for the payment method service.
type ServiceParams struct {
	Repo              Repository
	TransactionRunner txRunner
	Logger            *logger.Logger
}

type service struct {
	repo     Repository
	txRunner txRunner
	logg     *logger.Logger
}

// NewService constructs a payment method service.
func NewService(params ServiceParams) (*service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "payment method repo required")
	}
	if params.TransactionRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	return &service{
		repo:     params.Repo,
		txRunner: params.TransactionRunner,
		logg:     params.Logger,
	}, nil
}

// List returns the user's saved instruments, default first.
func (s *service) List(ctx context.Context, userID uuid.UUID) ([]PaymentMethodDTO, error) {
	methods, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payment methods")
	}
	return NewPaymentMethodDTOs(methods), nil
}

// Create saves a new instrument. The first saved method always becomes the
// default; an explicit default request displaces the current one.
func (s *service) Create(ctx context.Context, userID uuid.UUID, input CreatePaymentMethodInput) (*PaymentMethodDTO, error) {
	methodType, err := enums.ParsePaymentMethodType(strings.TrimSpace(input.MethodType))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method type")
	}
	if err := validateTypeFields(methodType, input); err != nil {
		return nil, err
	}

	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list payment methods")
	}
	makeDefault := input.IsDefault || len(existing) == 0

	method := &models.PaymentMethod{
		UserID:              userID,
		MethodType:          methodType,
		CardHolderName:      input.CardHolderName,
		CardLastFour:        input.CardLastFour,
		CardBrand:           input.CardBrand,
		BankName:            input.BankName,
		BankAccountLastFour: input.BankAccountLastFour,
		PaypalEmail:         input.PaypalEmail,
		IsDefault:           makeDefault,
	}

	if err := s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if makeDefault && len(existing) > 0 {
			if err := txRepo.ClearDefault(ctx, userID); err != nil {
				return err
			}
		}
		return txRepo.Create(ctx, method)
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist payment method")
	}

	return NewPaymentMethodDTO(method), nil
}

// SetDefault atomically moves the default flag to the given method.
func (s *service) SetDefault(ctx context.Context, userID, methodID uuid.UUID) (*PaymentMethodDTO, error) {
	method, err := s.repo.FindByIDForUser(ctx, methodID, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payment method")
	}
	if method == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment method not found")
	}

	if !method.IsDefault {
		if err := s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
			txRepo := s.repo.WithTx(tx)
			if err := txRepo.ClearDefault(ctx, userID); err != nil {
				return err
			}
			return txRepo.MarkDefault(ctx, methodID)
		}); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "set default payment method")
		}
		method.IsDefault = true
	}

	return NewPaymentMethodDTO(method), nil
}

// Delete removes a saved instrument. Deleting the default promotes the most
// recently added remaining method.
func (s *service) Delete(ctx context.Context, userID, methodID uuid.UUID) error {
	method, err := s.repo.FindByIDForUser(ctx, methodID, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load payment method")
	}
	if method == nil {
		return pkgerrors.New(pkgerrors.CodeNotFound, "payment method not found")
	}

	if err := s.txRunner.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Delete(ctx, methodID); err != nil {
			return err
		}
		if !method.IsDefault {
			return nil
		}
		remaining, err := txRepo.ListByUser(ctx, userID)
		if err != nil {
			return err
		}
		if len(remaining) == 0 {
			return nil
		}
		return txRepo.MarkDefault(ctx, newestMethodID(remaining))
	}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete payment method")
	}
	return nil
}

func newestMethodID(methods []models.PaymentMethod) uuid.UUID {
	newest := methods[0]
	for _, method := range methods[1:] {
		if method.CreatedAt.After(newest.CreatedAt) {
			newest = method
		}
	}
	return newest.ID
}

func validateTypeFields(methodType enums.PaymentMethodType, input CreatePaymentMethodInput) error {
	switch methodType {
	case enums.PaymentMethodTypeCreditCard:
		if emptyPtr(input.CardHolderName) || emptyPtr(input.CardLastFour) || emptyPtr(input.CardBrand) {
			return pkgerrors.New(pkgerrors.CodeValidation, "credit_card requires card_holder_name, card_last_four, and card_brand")
		}
	case enums.PaymentMethodTypeBankAccount:
		if emptyPtr(input.BankName) || emptyPtr(input.BankAccountLastFour) {
			return pkgerrors.New(pkgerrors.CodeValidation, "bank_account requires bank_name and bank_account_last_four")
		}
	case enums.PaymentMethodTypePayPal:
		if emptyPtr(input.PaypalEmail) {
			return pkgerrors.New(pkgerrors.CodeValidation, "paypal requires paypal_email")
		}
	}
	return nil
}

func emptyPtr(value *string) bool {
	return value == nil || strings.TrimSpace(*value) == ""
}
