package properties

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luxerealty/luxerealty-backend/pkg/db/models"
)

// PropertyDTO represents the listing payload returned to clients.
type PropertyDTO struct {
	ID            uuid.UUID        `json:"id"`
	Title         string           `json:"title"`
	Location      string           `json:"location"`
	Price         decimal.Decimal  `json:"price"`
	Beds          int              `json:"beds"`
	Baths         float64          `json:"baths"`
	Sqft          int              `json:"sqft"`
	Type          string           `json:"type"`
	Featured      bool             `json:"featured"`
	Description   *string          `json:"description,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	GalleryImages []string         `json:"gallery_images"`
	Amenities     []string         `json:"amenities"`
	YearBuilt     *int             `json:"year_built,omitempty"`
	LotSize       *decimal.Decimal `json:"lot_size,omitempty"`
	Parking       *int             `json:"parking,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// NewPropertyDTO builds a DTO from the persisted model.
func NewPropertyDTO(property *models.Property) *PropertyDTO {
	if property == nil {
		return nil
	}
	return &PropertyDTO{
		ID:            property.ID,
		Title:         property.Title,
		Location:      property.Location,
		Price:         property.Price,
		Beds:          property.Beds,
		Baths:         property.Baths,
		Sqft:          property.Sqft,
		Type:          string(property.Type),
		Featured:      property.Featured,
		Description:   property.Description,
		ImageURL:      property.ImageURL,
		GalleryImages: append([]string{}, property.GalleryImages...),
		Amenities:     append([]string{}, property.Amenities...),
		YearBuilt:     property.YearBuilt,
		LotSize:       property.LotSize,
		Parking:       property.Parking,
		CreatedAt:     property.CreatedAt,
		UpdatedAt:     property.UpdatedAt,
	}
}

// NewPropertyDTOs maps a model slice into response DTOs.
func NewPropertyDTOs(properties []models.Property) []PropertyDTO {
	dtos := make([]PropertyDTO, 0, len(properties))
	for i := range properties {
		dtos = append(dtos, *NewPropertyDTO(&properties[i]))
	}
	return dtos
}

// CreatePropertyInput captures the admin payload for a new listing.
type CreatePropertyInput struct {
	Title         string          `json:"title" validate:"required,min=1,max=200"`
	Location      string          `json:"location" validate:"required,min=1,max=200"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	Beds          int             `json:"beds" validate:"min=0,max=50"`
	Baths         float64         `json:"baths" validate:"min=0,max=50"`
	Sqft          int             `json:"sqft" validate:"min=0"`
	Type          string          `json:"type" validate:"required"`
	Featured      bool            `json:"featured"`
	Description   *string         `json:"description" validate:"omitempty,max=5000"`
	ImageURL      *string         `json:"image_url" validate:"omitempty,max=2048"`
	GalleryImages []string        `json:"gallery_images" validate:"omitempty,dive,max=2048"`
	Amenities     []string        `json:"amenities" validate:"omitempty,dive,max=200"`
	YearBuilt     *int            `json:"year_built" validate:"omitempty,min=1800,max=2100"`
	LotSize       *decimal.Decimal `json:"lot_size"`
	Parking       *int            `json:"parking" validate:"omitempty,min=0,max=100"`
}

// UpdatePropertyInput carries a partial update; nil fields are untouched.
type UpdatePropertyInput struct {
	Title         *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Location      *string          `json:"location" validate:"omitempty,min=1,max=200"`
	Price         *decimal.Decimal `json:"price"`
	Beds          *int             `json:"beds" validate:"omitempty,min=0,max=50"`
	Baths         *float64         `json:"baths" validate:"omitempty,min=0,max=50"`
	Sqft          *int             `json:"sqft" validate:"omitempty,min=0"`
	Type          *string          `json:"type"`
	Featured      *bool            `json:"featured"`
	Description   *string          `json:"description" validate:"omitempty,max=5000"`
	ImageURL      *string          `json:"image_url" validate:"omitempty,max=2048"`
	GalleryImages []string         `json:"gallery_images" validate:"omitempty,dive,max=2048"`
	Amenities     []string         `json:"amenities" validate:"omitempty,dive,max=200"`
	YearBuilt     *int             `json:"year_built" validate:"omitempty,min=1800,max=2100"`
	LotSize       *decimal.Decimal `json:"lot_size"`
	Parking       *int             `json:"parking" validate:"omitempty,min=0,max=100"`
}

// ListFilters narrows catalog queries.
type ListFilters struct {
	Type     *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	MinBeds  *int
	MinBaths *float64
	Location *string
	Featured *bool
}

// Empty reports whether the filter set matches the whole catalog.
func (f ListFilters) Empty() bool {
	return f.Type == nil && f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinBeds == nil && f.MinBaths == nil && f.Location == nil && f.Featured == nil
}
