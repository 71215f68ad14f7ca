package profiles

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
)

// Service keeps the local profile mirror in sync with JWT claims.
type Service interface {
	Sync(ctx context.Context, claims Claims) (*ProfileDTO, error)
	Get(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
}

// Claims carries the identity fields extracted from a verified token.
type Claims struct {
	UserID   uuid.UUID
	Email    string
	FullName string
	Role     enums.UserRole
}

// ProfileDTO is the profile returned to clients.
type ProfileDTO struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServiceParams groups dependencies for the profile service.
type ServiceParams struct {
	Repo   Repository
	Logger *logger.Logger
}

type service struct {
	repo Repository
	logg *logger.Logger
}

// NewService constructs a profile service.
func NewService(params ServiceParams) (*service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "profile repo required")
	}
	return &service{repo: params.Repo, logg: params.Logger}, nil
}

// Sync upserts the profile row from verified token claims and returns it.
func (s *service) Sync(ctx context.Context, claims Claims) (*ProfileDTO, error) {
	if claims.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	role := claims.Role
	if !role.IsValid() {
		role = enums.RoleCustomer
	}

	profile := &models.Profile{
		ID:    claims.UserID,
		Email: email,
		Role:  role,
	}
	if name := strings.TrimSpace(claims.FullName); name != "" {
		profile.FullName = &name
	}

	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upsert profile")
	}

	stored, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	if stored == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "profile missing after upsert")
	}
	return newProfileDTO(stored), nil
}

// Get returns the stored profile for the given user.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error) {
	profile, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	if profile == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
	}
	return newProfileDTO(profile), nil
}

func newProfileDTO(profile *models.Profile) *ProfileDTO {
	return &ProfileDTO{
		ID:        profile.ID,
		Email:     profile.Email,
		FullName:  profile.FullName,
		Phone:     profile.Phone,
		Role:      string(profile.Role),
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}
