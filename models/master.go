package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Master data categories. Each category is a named list of reference
// records consulted for dropdown population.
const (
	CategoryLocation      = "location"
	CategoryCustomer      = "customer"
	CategoryLine          = "line"
	CategoryPOL           = "pol"
	CategoryPOD           = "pod"
	CategoryFPOD          = "fpod"
	CategoryVessel        = "vessel"
	CategoryEquipmentType = "equipmentType"
)

var MasterCategories = []string{
	CategoryLocation,
	CategoryCustomer,
	CategoryLine,
	CategoryPOL,
	CategoryPOD,
	CategoryFPOD,
	CategoryVessel,
	CategoryEquipmentType,
}

// KnownCategory reports whether category is one of the master lists.
func KnownCategory(category string) bool {
	for _, c := range MasterCategories {
		if c == category {
			return true
		}
	}
	return false
}

// MasterRecord is one reference entry within a category. Uniqueness is
// case-sensitive on (category, name). Category-specific extras (port
// country, vessel flag, line SCAC) live in Details.
type MasterRecord struct {
	ID       uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Category string         `gorm:"not null;uniqueIndex:idx_master_category_name" json:"category"`
	Name     string         `gorm:"not null;uniqueIndex:idx_master_category_name" json:"name"`
	Position int            `gorm:"default:0" json:"position"`
	Details  datatypes.JSON `gorm:"type:jsonb" json:"details,omitempty"`

	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
