package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	propertysvc "github.com/luxerealty/luxerealty-backend/internal/properties"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
)

type stubPropertyService struct {
	list         func(ctx context.Context, filters propertysvc.ListFilters) ([]propertysvc.PropertyDTO, error)
	listFeatured func(ctx context.Context, limit int) ([]propertysvc.PropertyDTO, error)
	get          func(ctx context.Context, id uuid.UUID) (*propertysvc.PropertyDTO, error)
	search       func(ctx context.Context, query string) ([]propertysvc.PropertyDTO, error)
	create       func(ctx context.Context, input propertysvc.CreatePropertyInput) (*propertysvc.PropertyDTO, error)
	update       func(ctx context.Context, id uuid.UUID, input propertysvc.UpdatePropertyInput) (*propertysvc.PropertyDTO, error)
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (s *stubPropertyService) List(ctx context.Context, filters propertysvc.ListFilters) ([]propertysvc.PropertyDTO, error) {
	return s.list(ctx, filters)
}

func (s *stubPropertyService) ListFeatured(ctx context.Context, limit int) ([]propertysvc.PropertyDTO, error) {
	return s.listFeatured(ctx, limit)
}

func (s *stubPropertyService) Get(ctx context.Context, id uuid.UUID) (*propertysvc.PropertyDTO, error) {
	return s.get(ctx, id)
}

func (s *stubPropertyService) Search(ctx context.Context, query string) ([]propertysvc.PropertyDTO, error) {
	return s.search(ctx, query)
}

func (s *stubPropertyService) Create(ctx context.Context, input propertysvc.CreatePropertyInput) (*propertysvc.PropertyDTO, error) {
	return s.create(ctx, input)
}

func (s *stubPropertyService) Update(ctx context.Context, id uuid.UUID, input propertysvc.UpdatePropertyInput) (*propertysvc.PropertyDTO, error) {
	return s.update(ctx, id, input)
}

func (s *stubPropertyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func TestListPropertiesParsesFilters(t *testing.T) {
	var gotFilters propertysvc.ListFilters
	svc := &stubPropertyService{
		list: func(_ context.Context, filters propertysvc.ListFilters) ([]propertysvc.PropertyDTO, error) {
			gotFilters = filters
			return []propertysvc.PropertyDTO{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet,
		"/properties?type=villa&location=Malibu&min_price=1000000&min_beds=3&featured=true", nil)
	rec := httptest.NewRecorder()
	ListProperties(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotFilters.Type)
	require.Equal(t, "villa", *gotFilters.Type)
	require.NotNil(t, gotFilters.MinPrice)
	require.Equal(t, "1000000", gotFilters.MinPrice.String())
	require.NotNil(t, gotFilters.MinBeds)
	require.Equal(t, 3, *gotFilters.MinBeds)
	require.NotNil(t, gotFilters.Featured)
	require.True(t, *gotFilters.Featured)
}

func TestListPropertiesRejectsBadPrice(t *testing.T) {
	svc := &stubPropertyService{}

	req := httptest.NewRequest(http.MethodGet, "/properties?min_price=lots", nil)
	rec := httptest.NewRecorder()
	ListProperties(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, string(pkgerrors.CodeValidation), errorCode(t, rec))
}

func TestFeaturedPropertiesRejectsOversizedLimit(t *testing.T) {
	svc := &stubPropertyService{}

	req := httptest.NewRequest(http.MethodGet, "/properties/featured?limit=999", nil)
	rec := httptest.NewRecorder()
	FeaturedProperties(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchPropertiesTrimsQuery(t *testing.T) {
	var gotQuery string
	svc := &stubPropertyService{
		search: func(_ context.Context, query string) ([]propertysvc.PropertyDTO, error) {
			gotQuery = query
			return []propertysvc.PropertyDTO{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/properties/search?q=%20ocean%20view%20", nil)
	rec := httptest.NewRecorder()
	SearchProperties(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ocean view", gotQuery)
}

func TestCreatePropertyReturnsCreated(t *testing.T) {
	svc := &stubPropertyService{
		create: func(_ context.Context, input propertysvc.CreatePropertyInput) (*propertysvc.PropertyDTO, error) {
			return &propertysvc.PropertyDTO{ID: uuid.New(), Title: input.Title}, nil
		},
	}

	body := `{"title":"Cliffside Villa","location":"Malibu, CA","price":"4200000","type":"villa"}`
	req := httptest.NewRequest(http.MethodPost, "/admin/properties", strings.NewReader(body))
	rec := httptest.NewRecorder()
	CreateProperty(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var dto propertysvc.PropertyDTO
	decodeSuccess(t, rec, &dto)
	require.Equal(t, "Cliffside Villa", dto.Title)
}

func TestDeletePropertyRejectsMalformedID(t *testing.T) {
	svc := &stubPropertyService{}

	req := httptest.NewRequest(http.MethodDelete, "/admin/properties/nope", nil)
	req = withURLParam(req, "id", "nope")
	rec := httptest.NewRecorder()
	DeleteProperty(svc, testLogger())(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
