package properties

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	pkgredis "github.com/luxerealty/luxerealty-backend/pkg/redis"
)

type fakeRepo struct {
	Repository
	listings      []models.Property
	listCalls     int
	featuredCalls int
	created       []*models.Property
	deleted       map[uuid.UUID]bool
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepo) List(ctx context.Context, filters ListFilters) ([]models.Property, error) {
	f.listCalls++
	return f.listings, nil
}

func (f *fakeRepo) ListFeatured(ctx context.Context, limit int) ([]models.Property, error) {
	f.featuredCalls++
	if limit < len(f.listings) {
		return f.listings[:limit], nil
	}
	return f.listings, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	for i := range f.listings {
		if f.listings[i].ID == id {
			return &f.listings[i], nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Create(ctx context.Context, property *models.Property) error {
	property.ID = uuid.New()
	f.created = append(f.created, property)
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, property *models.Property) error { return nil }

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if f.deleted == nil {
		f.deleted = map[uuid.UUID]bool{}
	}
	for _, listing := range f.listings {
		if listing.ID == id {
			f.deleted[id] = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Search(ctx context.Context, query string) ([]models.Property, error) {
	return f.listings, nil
}

type fakeCache struct {
	entries map[string][]byte
	dels    []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dst any) error {
	raw, ok := f.entries[key]
	if !ok {
		return pkgredis.ErrCacheMiss
	}
	return json.Unmarshal(raw, dst)
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCache) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.entries, key)
		f.dels = append(f.dels, key)
	}
	return nil
}

func (f *fakeCache) CacheKey(parts ...string) string {
	key := "lx:cache"
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

func sampleListing() models.Property {
	return models.Property{
		ID:       uuid.New(),
		Title:    "Canyon Retreat",
		Location: "Aspen, CO",
		Price:    decimal.NewFromInt(8750000),
		Beds:     5,
		Baths:    4,
		Type:     enums.PropertyTypeHouse,
	}
}

func newTestService(t *testing.T, repo *fakeRepo, cache *fakeCache) Service {
	t.Helper()
	var c catalogCache
	if cache != nil {
		c = cache
	}
	svc, err := NewService(ServiceParams{Repo: repo, Cache: c, CacheTTL: time.Minute})
	require.NoError(t, err)
	return svc
}

func TestListServesUnfilteredCatalogFromCache(t *testing.T) {
	repo := &fakeRepo{listings: []models.Property{sampleListing()}}
	cache := newFakeCache()
	svc := newTestService(t, repo, cache)

	first, err := svc.List(context.Background(), ListFilters{})
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, repo.listCalls)

	second, err := svc.List(context.Background(), ListFilters{})
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, 1, repo.listCalls, "second read should hit the cache")
}

func TestListSkipsCacheWhenFiltered(t *testing.T) {
	repo := &fakeRepo{listings: []models.Property{sampleListing()}}
	cache := newFakeCache()
	svc := newTestService(t, repo, cache)

	beds := 3
	_, err := svc.List(context.Background(), ListFilters{MinBeds: &beds})
	require.NoError(t, err)
	_, err = svc.List(context.Background(), ListFilters{MinBeds: &beds})
	require.NoError(t, err)
	require.Equal(t, 2, repo.listCalls)
	require.Empty(t, cache.entries)
}

func TestCreateInvalidatesCatalogCache(t *testing.T) {
	repo := &fakeRepo{}
	cache := newFakeCache()
	cache.entries[cache.CacheKey("properties", "all")] = []byte(`[]`)
	svc := newTestService(t, repo, cache)

	_, err := svc.Create(context.Background(), CreatePropertyInput{
		Title:    "New Build",
		Location: "Austin, TX",
		Price:    decimal.NewFromInt(1900000),
		Type:     string(enums.PropertyTypeHouse),
	})
	require.NoError(t, err)
	require.NotContains(t, cache.entries, cache.CacheKey("properties", "all"))
}

func TestCreateRejectsInvalidType(t *testing.T) {
	svc := newTestService(t, &fakeRepo{}, nil)

	_, err := svc.Create(context.Background(), CreatePropertyInput{
		Title:    "New Build",
		Location: "Austin, TX",
		Price:    decimal.NewFromInt(1900000),
		Type:     "castle",
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateRejectsNegativePriceAndOversizedLot(t *testing.T) {
	svc := newTestService(t, &fakeRepo{}, nil)

	_, err := svc.Create(context.Background(), CreatePropertyInput{
		Title:    "Bad Price",
		Location: "Austin, TX",
		Price:    decimal.NewFromInt(-1),
		Type:     string(enums.PropertyTypeHouse),
	})
	require.NotNil(t, pkgerrors.As(err))

	huge := decimal.NewFromInt(51)
	_, err = svc.Create(context.Background(), CreatePropertyInput{
		Title:    "Big Lot",
		Location: "Austin, TX",
		Price:    decimal.NewFromInt(100),
		Type:     string(enums.PropertyTypeHouse),
		LotSize:  &huge,
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestListFeaturedClampsLimit(t *testing.T) {
	listings := make([]models.Property, 30)
	for i := range listings {
		listings[i] = sampleListing()
	}
	repo := &fakeRepo{listings: listings}
	svc := newTestService(t, repo, nil)

	got, err := svc.ListFeatured(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, got, DefaultFeaturedLimit)

	got, err = svc.ListFeatured(context.Background(), 500)
	require.NoError(t, err)
	require.Len(t, got, MaxFeaturedLimit)
}

func TestListFeaturedServesRepeatReadsFromCache(t *testing.T) {
	repo := &fakeRepo{listings: []models.Property{sampleListing(), sampleListing()}}
	cache := newFakeCache()
	svc := newTestService(t, repo, cache)

	first, err := svc.ListFeatured(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Equal(t, 1, repo.featuredCalls)
	require.Contains(t, cache.entries, cache.CacheKey("properties", "featured", "2"))

	second, err := svc.ListFeatured(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, second, 2)
	require.Equal(t, 1, repo.featuredCalls, "second read should hit the cache")
}

func TestListFeaturedCachesPerClampedLimit(t *testing.T) {
	repo := &fakeRepo{listings: []models.Property{sampleListing()}}
	cache := newFakeCache()
	svc := newTestService(t, repo, cache)

	_, err := svc.ListFeatured(context.Background(), 0)
	require.NoError(t, err)
	require.Contains(t, cache.entries, cache.CacheKey("properties", "featured", "6"))

	_, err = svc.ListFeatured(context.Background(), 500)
	require.NoError(t, err)
	require.Contains(t, cache.entries, cache.CacheKey("properties", "featured", "24"))
}

func TestCreateInvalidatesFeaturedCache(t *testing.T) {
	repo := &fakeRepo{}
	cache := newFakeCache()
	cache.entries[cache.CacheKey("properties", "featured", "6")] = []byte(`[]`)
	cache.entries[cache.CacheKey("properties", "featured", "12")] = []byte(`[]`)
	svc := newTestService(t, repo, cache)

	_, err := svc.Create(context.Background(), CreatePropertyInput{
		Title:    "Hillside Estate",
		Location: "Malibu, CA",
		Price:    decimal.NewFromInt(12400000),
		Type:     string(enums.PropertyTypeHouse),
		Featured: true,
	})
	require.NoError(t, err)
	require.Empty(t, cache.entries)
}

func TestGetReturnsNotFound(t *testing.T) {
	svc := newTestService(t, &fakeRepo{}, nil)

	_, err := svc.Get(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestSearchRequiresQuery(t *testing.T) {
	svc := newTestService(t, &fakeRepo{}, nil)

	_, err := svc.Search(context.Background(), "   ")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDeleteMissingListing(t *testing.T) {
	svc := newTestService(t, &fakeRepo{}, nil)

	err := svc.Delete(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
