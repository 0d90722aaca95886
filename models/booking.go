package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EquipmentItem is one line of a booking's equipment list.
type EquipmentItem struct {
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	ContainerNo string `json:"containerNo,omitempty"`
}

// AuditAction records a single field change on a booking.
type AuditAction struct {
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
	By    string `json:"by"`
	At    string `json:"at"`
}

// BookingEntry is an in-progress booking. Routing references are copied
// from master data as plain strings at creation time. Cut-off fields keep
// the desk's display encoding ("DD/MM-HHMM HRS").
type BookingEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookingNo string    `gorm:"not null" json:"bookingNo"`

	Customer string `gorm:"not null" json:"customer"`
	Line     string `gorm:"not null" json:"line"`
	POL      string `gorm:"column:pol;not null" json:"pol"`
	POD      string `gorm:"column:pod;not null" json:"pod"`
	FPOD     string `gorm:"column:fpod" json:"fpod"`
	Vessel   string `json:"vessel"`
	Voyage   string `json:"voyage"`

	Equipment datatypes.JSON `gorm:"type:jsonb;not null" json:"equipment"`
	Volume    string         `json:"volume"`

	SICutoff  string `gorm:"column:si_cutoff" json:"siCutoff"`
	VGMCutoff string `gorm:"column:vgm_cutoff" json:"vgmCutoff"`
	GateOpen  string `json:"gateOpen"`

	// Lifecycle checklist flags, see checklist.go for the ordering rules.
	VGMFiled             bool `gorm:"column:vgm_filed" json:"vgmFiled"`
	SIFiled              bool `gorm:"column:si_filed" json:"siFiled"`
	FirstPrinted         bool `json:"firstPrinted"`
	CorrectionsFinalised bool `json:"correctionsFinalised"`
	LinerInvoice         bool `json:"linerInvoice"`
	BLReleased           bool `gorm:"column:bl_released" json:"blReleased"`
	ISFSent              bool `gorm:"column:isf_sent" json:"isfSent"`
	SOB                  bool `gorm:"column:sob" json:"sob"`
	FinalDG              bool `gorm:"column:final_dg" json:"finalDG"`

	BLType  string `gorm:"column:bl_type" json:"blType"`
	BLNo    string `gorm:"column:bl_no" json:"blNo"`
	SOBDate string `gorm:"column:sob_date" json:"sobDate"`
	RefNo   string `json:"refNo"`
	Remarks string `json:"remarks"`

	CreatedBy    string         `gorm:"not null" json:"createdBy"`
	LastEditedBy string         `json:"lastEditedBy"`
	Actions      datatypes.JSON `gorm:"type:jsonb" json:"actions"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// EquipmentItems decodes the JSONB equipment column. A broken column
// yields an empty list rather than an error; callers treat missing
// equipment the same way.
func (b *BookingEntry) EquipmentItems() []EquipmentItem {
	var items []EquipmentItem
	if len(b.Equipment) == 0 {
		return items
	}
	_ = json.Unmarshal(b.Equipment, &items)
	return items
}

// ContainerNo returns the first non-empty container number in the
// equipment list, or "".
func (b *BookingEntry) ContainerNo() string {
	for _, item := range b.EquipmentItems() {
		if item.ContainerNo != "" {
			return item.ContainerNo
		}
	}
	return ""
}

// AppendAction adds a field-change record to the audit trail.
func (b *BookingEntry) AppendAction(field, from, to, by string) {
	var actions []AuditAction
	if len(b.Actions) > 0 {
		_ = json.Unmarshal(b.Actions, &actions)
	}
	actions = append(actions, AuditAction{
		Field: field,
		From:  from,
		To:    to,
		By:    by,
		At:    time.Now().Format(time.RFC3339),
	})
	raw, err := json.Marshal(actions)
	if err != nil {
		return
	}
	b.Actions = raw
}
