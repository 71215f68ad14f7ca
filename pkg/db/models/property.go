package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	dbtypes "github.com/luxerealty/luxerealty-backend/pkg/db/types"
	"github.com/luxerealty/luxerealty-backend/pkg/enums"
)

// Property represents a catalog listing.
type Property struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	Title         string              `gorm:"column:title;not null"`
	Location      string              `gorm:"column:location;not null"`
	Price         decimal.Decimal     `gorm:"column:price;type:numeric(14,2);not null"`
	Beds          int                 `gorm:"column:beds;not null;default:0"`
	Baths         float64             `gorm:"column:baths;type:numeric(4,1);not null;default:0"`
	Sqft          int                 `gorm:"column:sqft;not null;default:0"`
	Type          enums.PropertyType  `gorm:"column:type;type:property_type;not null"`
	Featured      bool                `gorm:"column:featured;not null;default:false;index"`
	Description   *string             `gorm:"column:description"`
	ImageURL      *string             `gorm:"column:image_url"`
	GalleryImages dbtypes.StringList  `gorm:"column:gallery_images;type:jsonb;not null;default:'[]'"`
	Amenities     dbtypes.StringList  `gorm:"column:amenities;type:jsonb;not null;default:'[]'"`
	YearBuilt     *int                `gorm:"column:year_built"`
	LotSize       *decimal.Decimal    `gorm:"column:lot_size;type:numeric(6,2)"`
	Parking       *int                `gorm:"column:parking"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime;index:idx_properties_created_at,sort:desc"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the primary key so inserts work on engines without
// gen_random_uuid().
func (p *Property) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
