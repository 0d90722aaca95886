package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RequestPending   = "pending"
	RequestConfirmed = "confirmed"
)

// BookingRequest is a customer-originated request waiting for the desk
// to confirm it into a booking entry.
type BookingRequest struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Customer string    `gorm:"not null" json:"customer"`
	Line     string    `json:"line"`
	POL      string    `gorm:"column:pol" json:"pol"`
	POD      string    `gorm:"column:pod" json:"pod"`
	FPOD     string    `gorm:"column:fpod" json:"fpod"`

	Equipment datatypes.JSON `gorm:"type:jsonb" json:"equipment"`
	Remarks   string         `json:"remarks"`

	Status      string `gorm:"default:'pending'" json:"status"`
	RequestedBy string `json:"requestedBy"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
