package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CompletedFile is the terminal snapshot of a booking taken when the B/L
// is released. Read-only afterwards except for the invoice number.
type CompletedFile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BookingNo string    `gorm:"not null;index" json:"bookingNo"`

	Customer string `gorm:"not null" json:"customer"`
	Line     string `gorm:"not null" json:"line"`
	POL      string `gorm:"column:pol;not null" json:"pol"`
	POD      string `gorm:"column:pod;not null" json:"pod"`
	FPOD     string `gorm:"column:fpod" json:"fpod"`
	Vessel   string `json:"vessel"`
	Voyage   string `json:"voyage"`

	Equipment datatypes.JSON `gorm:"type:jsonb" json:"equipment"`
	Volume    string         `json:"volume"`

	BLType  string `gorm:"column:bl_type" json:"blType"`
	BLNo    string `gorm:"column:bl_no" json:"blNo"`
	SOBDate string `gorm:"column:sob_date" json:"sobDate"`
	RefNo   string `json:"refNo"`
	Remarks string `json:"remarks"`

	// Stored in the fixed template "DMS/<n>/25-26".
	InvoiceNo string `json:"invoiceNo"`
	Status    string `gorm:"default:'completed'" json:"status"`

	CreatedBy    string         `json:"createdBy"`
	LastEditedBy string         `json:"lastEditedBy"`
	Actions      datatypes.JSON `gorm:"type:jsonb" json:"actions"`
	ReleasedBy   string         `json:"releasedBy"`
	ReleasedAt   JSONTime       `json:"releasedAt"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// SnapshotFrom copies a booking entry into a completed file, keeping the
// booking's id so released files stay addressable by the same key.
func SnapshotFrom(b *BookingEntry, releasedBy string) CompletedFile {
	return CompletedFile{
		ID:           b.ID,
		BookingNo:    b.BookingNo,
		Customer:     b.Customer,
		Line:         b.Line,
		POL:          b.POL,
		POD:          b.POD,
		FPOD:         b.FPOD,
		Vessel:       b.Vessel,
		Voyage:       b.Voyage,
		Equipment:    b.Equipment,
		Volume:       b.Volume,
		BLType:       b.BLType,
		BLNo:         b.BLNo,
		SOBDate:      b.SOBDate,
		RefNo:        b.RefNo,
		Remarks:      b.Remarks,
		Status:       "completed",
		CreatedBy:    b.CreatedBy,
		LastEditedBy: b.LastEditedBy,
		Actions:      b.Actions,
		ReleasedBy:   releasedBy,
		ReleasedAt:   JSONTime(time.Now()),
	}
}
