package properties

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
	pkgredis "github.com/luxerealty/luxerealty-backend/pkg/redis"
)

const (
	// DefaultFeaturedLimit is used when a featured query omits the limit.
	DefaultFeaturedLimit = 6
	// MaxFeaturedLimit caps how many featured listings one request can pull.
	MaxFeaturedLimit = 24

	catalogCacheKeyPart  = "all"
	featuredCacheKeyPart = "featured"
)

var maxLotSize = decimal.NewFromInt(50)

// Service orchestrates the listing catalog.
type Service interface {
	List(ctx context.Context, filters ListFilters) ([]PropertyDTO, error)
	ListFeatured(ctx context.Context, limit int) ([]PropertyDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*PropertyDTO, error)
	Search(ctx context.Context, query string) ([]PropertyDTO, error)
	Create(ctx context.Context, input CreatePropertyInput) (*PropertyDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*PropertyDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type catalogCache interface {
	GetJSON(ctx context.Context, key string, dst any) error
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CacheKey(parts ...string) string
}

// ServiceParams groups dependencies for the property service.
type ServiceParams struct {
	Repo     Repository
	Cache    catalogCache
	CacheTTL time.Duration
	Logger   *logger.Logger
}

type service struct {
	repo     Repository
	cache    catalogCache
	cacheTTL time.Duration
	logg     *logger.Logger
}

// NewService constructs a property service.
func NewService(params ServiceParams) (*service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "property repo required")
	}
	ttl := params.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &service{
		repo:     params.Repo,
		cache:    params.Cache,
		cacheTTL: ttl,
		logg:     params.Logger,
	}, nil
}

// List returns listings matching the filters. The unfiltered catalog is
// served from cache when possible.
func (s *service) List(ctx context.Context, filters ListFilters) ([]PropertyDTO, error) {
	if filters.Type != nil && !enums.PropertyType(*filters.Type).IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid property type filter")
	}

	cacheable := filters.Empty() && s.cache != nil
	if cacheable {
		var cached []PropertyDTO
		err := s.cache.GetJSON(ctx, s.cache.CacheKey("properties", catalogCacheKeyPart), &cached)
		if err == nil {
			return cached, nil
		}
		if s.logg != nil && !isCacheMiss(err) {
			s.logg.Warn(ctx, "property cache read failed")
		}
	}

	listings, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list properties")
	}
	dtos := NewPropertyDTOs(listings)

	if cacheable {
		if err := s.cache.SetJSON(ctx, s.cache.CacheKey("properties", catalogCacheKeyPart), dtos, s.cacheTTL); err != nil && s.logg != nil {
			s.logg.Warn(ctx, "property cache write failed")
		}
	}

	return dtos, nil
}

// ListFeatured returns up to limit featured listings, newest first.
// Results are cached per clamped limit.
func (s *service) ListFeatured(ctx context.Context, limit int) ([]PropertyDTO, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	if limit > MaxFeaturedLimit {
		limit = MaxFeaturedLimit
	}

	if s.cache != nil {
		var cached []PropertyDTO
		err := s.cache.GetJSON(ctx, s.featuredCacheKey(limit), &cached)
		if err == nil {
			return cached, nil
		}
		if s.logg != nil && !isCacheMiss(err) {
			s.logg.Warn(ctx, "featured cache read failed")
		}
	}

	listings, err := s.repo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list featured properties")
	}
	dtos := NewPropertyDTOs(listings)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, s.featuredCacheKey(limit), dtos, s.cacheTTL); err != nil && s.logg != nil {
			s.logg.Warn(ctx, "featured cache write failed")
		}
	}

	return dtos, nil
}

// Get loads a single listing.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*PropertyDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "property id is required")
	}
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load property")
	}
	if property == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "property not found")
	}
	return NewPropertyDTO(property), nil
}

// Search matches the query against title, location, and description.
func (s *service) Search(ctx context.Context, query string) ([]PropertyDTO, error) {
	if strings.TrimSpace(query) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "search query is required")
	}
	listings, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search properties")
	}
	return NewPropertyDTOs(listings), nil
}

// Create persists a new listing and invalidates the catalog cache.
func (s *service) Create(ctx context.Context, input CreatePropertyInput) (*PropertyDTO, error) {
	propertyType := enums.PropertyType(strings.TrimSpace(input.Type))
	if !propertyType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid property type")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
	}
	if err := validateLotSize(input.LotSize); err != nil {
		return nil, err
	}

	property := &models.Property{
		Title:         strings.TrimSpace(input.Title),
		Location:      strings.TrimSpace(input.Location),
		Price:         input.Price,
		Beds:          input.Beds,
		Baths:         input.Baths,
		Sqft:          input.Sqft,
		Type:          propertyType,
		Featured:      input.Featured,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		GalleryImages: append([]string{}, input.GalleryImages...),
		Amenities:     append([]string{}, input.Amenities...),
		YearBuilt:     input.YearBuilt,
		LotSize:       input.LotSize,
		Parking:       input.Parking,
	}

	if err := s.repo.Create(ctx, property); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create property")
	}

	s.invalidateCatalog(ctx)
	return NewPropertyDTO(property), nil
}

// Update applies a partial update and invalidates the catalog cache.
func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*PropertyDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "property id is required")
	}

	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load property")
	}
	if property == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "property not found")
	}

	if input.Type != nil {
		propertyType := enums.PropertyType(strings.TrimSpace(*input.Type))
		if !propertyType.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid property type")
		}
		property.Type = propertyType
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative")
		}
		property.Price = *input.Price
	}
	if input.LotSize != nil {
		if err := validateLotSize(input.LotSize); err != nil {
			return nil, err
		}
		property.LotSize = input.LotSize
	}
	if input.Title != nil {
		property.Title = strings.TrimSpace(*input.Title)
	}
	if input.Location != nil {
		property.Location = strings.TrimSpace(*input.Location)
	}
	if input.Beds != nil {
		property.Beds = *input.Beds
	}
	if input.Baths != nil {
		property.Baths = *input.Baths
	}
	if input.Sqft != nil {
		property.Sqft = *input.Sqft
	}
	if input.Featured != nil {
		property.Featured = *input.Featured
	}
	if input.Description != nil {
		property.Description = input.Description
	}
	if input.ImageURL != nil {
		property.ImageURL = input.ImageURL
	}
	if input.GalleryImages != nil {
		property.GalleryImages = append([]string{}, input.GalleryImages...)
	}
	if input.Amenities != nil {
		property.Amenities = append([]string{}, input.Amenities...)
	}
	if input.YearBuilt != nil {
		property.YearBuilt = input.YearBuilt
	}
	if input.Parking != nil {
		property.Parking = input.Parking
	}

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update property")
	}

	s.invalidateCatalog(ctx)
	return NewPropertyDTO(property), nil
}

// Delete removes a listing and invalidates the catalog cache.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "property id is required")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete property")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "property not found")
	}

	s.invalidateCatalog(ctx)
	return nil
}

func (s *service) featuredCacheKey(limit int) string {
	return s.cache.CacheKey("properties", featuredCacheKeyPart, strconv.Itoa(limit))
}

func (s *service) invalidateCatalog(ctx context.Context) {
	if s.cache == nil {
		return
	}
	keys := make([]string, 0, MaxFeaturedLimit+1)
	keys = append(keys, s.cache.CacheKey("properties", catalogCacheKeyPart))
	for limit := 1; limit <= MaxFeaturedLimit; limit++ {
		keys = append(keys, s.featuredCacheKey(limit))
	}
	if err := s.cache.Del(ctx, keys...); err != nil && s.logg != nil {
		s.logg.Warn(ctx, "property cache invalidation failed")
	}
}

func validateLotSize(lotSize *decimal.Decimal) error {
	if lotSize == nil {
		return nil
	}
	if lotSize.IsNegative() || lotSize.GreaterThan(maxLotSize) {
		return pkgerrors.New(pkgerrors.CodeValidation, "lot size must be between 0 and 50 acres")
	}
	return nil
}

func isCacheMiss(err error) bool {
	return errors.Is(err, pkgredis.ErrCacheMiss)
}
