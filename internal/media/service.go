package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/luxerealty/luxerealty-backend/pkg/config"
	pkgerrors "github.com/luxerealty/luxerealty-backend/pkg/errors"
	"github.com/luxerealty/luxerealty-backend/pkg/logger"
)

const objectPrefix = "properties"

var allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp", "image/gif"}

type objectStore interface {
	UploadObject(ctx context.Context, bucket, object, contentType string, data []byte) error
	DeleteObject(ctx context.Context, bucket, object string) error
	PublicURL(bucket, object string) string
	DefaultBucket() string
}

// Service stores listing photos in the configured bucket.
type Service interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}

// UploadInput models one incoming image file.
type UploadInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UploadResult is returned to the admin client after a successful upload.
type UploadResult struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// ServiceParams groups dependencies for the media service.
type ServiceParams struct {
	Store  objectStore
	Config config.MediaConfig
	Logger *logger.Logger
}

type service struct {
	store          objectStore
	maxUploadBytes int64
	logg           *logger.Logger
}

// NewService constructs a media service.
func NewService(params ServiceParams) (*service, error) {
	if params.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "object store required")
	}
	maxMB := params.Config.MaxUploadMB
	if maxMB <= 0 {
		maxMB = 5
	}
	return &service{
		store:          params.Store,
		maxUploadBytes: int64(maxMB) * 1024 * 1024,
		logg:           params.Logger,
	}, nil
}

// Upload validates the image and writes it under a collision-free key.
func (s *service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file name is required")
	}
	if len(input.Data) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file is empty")
	}
	if int64(len(input.Data)) > s.maxUploadBytes {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("file exceeds the %d MB upload limit", s.maxUploadBytes/(1024*1024)))
	}

	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if !isAllowedImage(contentType) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "only PNG, JPEG, WebP, or GIF images are allowed")
	}

	key := buildObjectKey(fileName)
	bucket := s.store.DefaultBucket()
	if err := s.store.UploadObject(ctx, bucket, key, contentType, input.Data); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "upload object")
	}

	return &UploadResult{
		Key:         key,
		URL:         s.store.PublicURL(bucket, key),
		ContentType: contentType,
		SizeBytes:   int64(len(input.Data)),
	}, nil
}

// Delete removes a previously uploaded object. Keys outside the listing
// photo prefix are rejected so the endpoint cannot touch arbitrary objects.
func (s *service) Delete(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "object key is required")
	}
	if !strings.HasPrefix(key, objectPrefix+"/") || strings.Contains(key, "..") {
		return pkgerrors.New(pkgerrors.CodeValidation, "object key is not a listing photo")
	}
	if err := s.store.DeleteObject(ctx, s.store.DefaultBucket(), key); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete object")
	}
	return nil
}

func isAllowedImage(contentType string) bool {
	for _, candidate := range allowedImageTypes {
		if candidate == contentType {
			return true
		}
	}
	return false
}

func buildObjectKey(fileName string) string {
	clean := sanitizeFileName(fileName)
	id := uuid.New()
	if clean == "" {
		return fmt.Sprintf("%s/%s", objectPrefix, id.String())
	}
	return fmt.Sprintf("%s/%s-%s", objectPrefix, id.String(), clean)
}

func sanitizeFileName(name string) string {
	clean := path.Base(strings.TrimSpace(name))
	if clean == "." || clean == "/" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(clean))
	for _, r := range clean {
		switch {
		case r == '/' || r == '\\' || unicode.IsControl(r):
			continue
		case unicode.IsSpace(r):
			b.WriteRune('-')
		default:
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
