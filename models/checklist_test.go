package models

import (
	"encoding/json"
	"testing"
)

func entryWith(mutate func(*BookingEntry)) *BookingEntry {
	equipment, _ := json.Marshal([]EquipmentItem{
		{Type: "40HC", Quantity: 1, ContainerNo: "MSKU1234567"},
	})
	b := &BookingEntry{
		BookingNo: "DMS-1001",
		Customer:  "Acme Exports",
		Line:      "Maersk",
		POL:       "Nhava Sheva",
		POD:       "Jebel Ali",
		Vessel:    "MSC Pilar",
		Voyage:    "429W",
		Equipment: equipment,
	}
	if mutate != nil {
		mutate(b)
	}
	return b
}

func TestValidateFlagChange(t *testing.T) {
	tests := []struct {
		name    string
		entry   *BookingEntry
		req     FlagChange
		wantErr bool
	}{
		{
			name:    "vgm filed needs nothing",
			entry:   entryWith(nil),
			req:     FlagChange{Flag: FlagVGMFiled, Value: true},
			wantErr: false,
		},
		{
			name:    "si filed without bl type rejected",
			entry:   entryWith(nil),
			req:     FlagChange{Flag: FlagSIFiled, Value: true},
			wantErr: true,
		},
		{
			name:    "si filed with OBL accepted",
			entry:   entryWith(nil),
			req:     FlagChange{Flag: FlagSIFiled, Value: true, BLType: BLTypeOBL},
			wantErr: false,
		},
		{
			name:    "si filed with SEAWAY accepted",
			entry:   entryWith(nil),
			req:     FlagChange{Flag: FlagSIFiled, Value: true, BLType: BLTypeSeaway},
			wantErr: false,
		},
		{
			name:    "si filed with bogus bl type rejected",
			entry:   entryWith(nil),
			req:     FlagChange{Flag: FlagSIFiled, Value: true, BLType: "TELEX"},
			wantErr: true,
		},
		{
			name:    "first print before si rejected",
			entry:   entryWith(nil),
			req:     FlagChange{Flag: FlagFirstPrinted, Value: true, BLNo: "MAEU123"},
			wantErr: true,
		},
		{
			name:    "first print without bl number rejected",
			entry:   entryWith(func(b *BookingEntry) { b.SIFiled = true }),
			req:     FlagChange{Flag: FlagFirstPrinted, Value: true},
			wantErr: true,
		},
		{
			name:    "first print after si with bl number accepted",
			entry:   entryWith(func(b *BookingEntry) { b.SIFiled = true }),
			req:     FlagChange{Flag: FlagFirstPrinted, Value: true, BLNo: "MAEU123"},
			wantErr: false,
		},
		{
			name:    "corrections before first print rejected",
			entry:   entryWith(func(b *BookingEntry) { b.SIFiled = true }),
			req:     FlagChange{Flag: FlagCorrectionsFinalised, Value: true},
			wantErr: true,
		},
		{
			name: "liner invoice before corrections rejected",
			entry: entryWith(func(b *BookingEntry) {
				b.SIFiled = true
				b.FirstPrinted = true
			}),
			req:     FlagChange{Flag: FlagLinerInvoice, Value: true},
			wantErr: true,
		},
		{
			name: "sob without vgm rejected",
			entry: entryWith(func(b *BookingEntry) {
				b.SIFiled = true
			}),
			req:     FlagChange{Flag: FlagSOB, Value: true, SOBDate: "12/08/2026"},
			wantErr: true,
		},
		{
			name: "sob without container number rejected",
			entry: entryWith(func(b *BookingEntry) {
				b.SIFiled = true
				b.VGMFiled = true
				b.Equipment = nil
			}),
			req:     FlagChange{Flag: FlagSOB, Value: true, SOBDate: "12/08/2026"},
			wantErr: true,
		},
		{
			name: "sob without voyage rejected",
			entry: entryWith(func(b *BookingEntry) {
				b.SIFiled = true
				b.VGMFiled = true
				b.Voyage = ""
			}),
			req:     FlagChange{Flag: FlagSOB, Value: true, SOBDate: "12/08/2026"},
			wantErr: true,
		},
		{
			name: "sob without date rejected",
			entry: entryWith(func(b *BookingEntry) {
				b.SIFiled = true
				b.VGMFiled = true
			}),
			req:     FlagChange{Flag: FlagSOB, Value: true},
			wantErr: true,
		},
		{
			name: "sob with all prerequisites accepted",
			entry: entryWith(func(b *BookingEntry) {
				b.SIFiled = true
				b.VGMFiled = true
			}),
			req:     FlagChange{Flag: FlagSOB, Value: true, SOBDate: "12/08/2026"},
			wantErr: false,
		},
		{
			name: "bl release with missing liner invoice rejected",
			entry: entryWith(func(b *BookingEntry) {
				b.VGMFiled = true
				b.SIFiled = true
				b.FirstPrinted = true
				b.CorrectionsFinalised = true
				b.SOB = true
			}),
			req:     FlagChange{Flag: FlagBLReleased, Value: true},
			wantErr: true,
		},
		{
			name: "bl release with full checklist accepted",
			entry: entryWith(func(b *BookingEntry) {
				b.VGMFiled = true
				b.SIFiled = true
				b.FirstPrinted = true
				b.CorrectionsFinalised = true
				b.LinerInvoice = true
				b.SOB = true
			}),
			req:     FlagChange{Flag: FlagBLReleased, Value: true},
			wantErr: false,
		},
		{
			name: "bl release to USA without isf rejected",
			entry: entryWith(func(b *BookingEntry) {
				b.VGMFiled = true
				b.SIFiled = true
				b.FirstPrinted = true
				b.CorrectionsFinalised = true
				b.LinerInvoice = true
				b.SOB = true
				b.FPOD = "New York, USA"
			}),
			req:     FlagChange{Flag: FlagBLReleased, Value: true},
			wantErr: true,
		},
		{
			name: "bl release to USA with isf accepted",
			entry: entryWith(func(b *BookingEntry) {
				b.VGMFiled = true
				b.SIFiled = true
				b.FirstPrinted = true
				b.CorrectionsFinalised = true
				b.LinerInvoice = true
				b.SOB = true
				b.ISFSent = true
				b.FPOD = "New York, USA"
			}),
			req:     FlagChange{Flag: FlagBLReleased, Value: true},
			wantErr: false,
		},
		{
			name: "usa in pod also requires isf",
			entry: entryWith(func(b *BookingEntry) {
				b.VGMFiled = true
				b.SIFiled = true
				b.FirstPrinted = true
				b.CorrectionsFinalised = true
				b.LinerInvoice = true
				b.SOB = true
				b.POD = "Long Beach USA"
			}),
			req:     FlagChange{Flag: FlagBLReleased, Value: true},
			wantErr: true,
		},
		{
			name: "unchecking is always allowed",
			entry: entryWith(func(b *BookingEntry) {
				b.SIFiled = true
				b.FirstPrinted = true
			}),
			req:     FlagChange{Flag: FlagSIFiled, Value: false},
			wantErr: false,
		},
		{
			name:    "unknown flag rejected",
			entry:   entryWith(nil),
			req:     FlagChange{Flag: "telexReleased", Value: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFlagChange(tt.entry, tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFlagChange() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetFlagPersistsSideFields(t *testing.T) {
	b := entryWith(nil)

	b.SetFlag(FlagChange{Flag: FlagSIFiled, Value: true, BLType: BLTypeOBL})
	if !b.SIFiled || b.BLType != BLTypeOBL {
		t.Errorf("si filing should set flag and BL type together, got flag=%v type=%q", b.SIFiled, b.BLType)
	}

	b.SetFlag(FlagChange{Flag: FlagFirstPrinted, Value: true, BLNo: "MAEU456"})
	if !b.FirstPrinted || b.BLNo != "MAEU456" {
		t.Errorf("first print should set flag and BL number together, got flag=%v no=%q", b.FirstPrinted, b.BLNo)
	}

	b.SetFlag(FlagChange{Flag: FlagSOB, Value: true, SOBDate: "12/08/2026"})
	if !b.SOB || b.SOBDate != "12/08/2026" {
		t.Errorf("sob should set flag and date together, got flag=%v date=%q", b.SOB, b.SOBDate)
	}

	// Unchecking leaves the side fields in place, no reverse cascade.
	b.SetFlag(FlagChange{Flag: FlagSIFiled, Value: false})
	if b.SIFiled {
		t.Error("unchecking siFiled should clear the flag")
	}
	if b.BLType != BLTypeOBL {
		t.Errorf("unchecking siFiled should not clear BL type, got %q", b.BLType)
	}
	if !b.FirstPrinted {
		t.Error("unchecking siFiled should not cascade to firstPrinted")
	}
}

func TestResetChecklistClearsEveryFlag(t *testing.T) {
	flags := []string{
		FlagVGMFiled, FlagSIFiled, FlagFirstPrinted, FlagCorrectionsFinalised,
		FlagLinerInvoice, FlagBLReleased, FlagISFSent, FlagSOB, FlagFinalDG,
	}

	b := entryWith(nil)
	for _, f := range flags {
		b.SetFlag(FlagChange{Flag: f, Value: true})
	}
	b.ResetChecklist()

	for _, f := range flags {
		if b.FlagValue(f) {
			t.Errorf("%s should be cleared on a fresh booking", f)
		}
	}
}

func TestContainerNo(t *testing.T) {
	equipment, _ := json.Marshal([]EquipmentItem{
		{Type: "20GP", Quantity: 2},
		{Type: "40HC", Quantity: 1, ContainerNo: "TGHU7654321"},
	})
	b := &BookingEntry{Equipment: equipment}
	if got := b.ContainerNo(); got != "TGHU7654321" {
		t.Errorf("ContainerNo() = %q, want TGHU7654321", got)
	}

	empty := &BookingEntry{}
	if got := empty.ContainerNo(); got != "" {
		t.Errorf("ContainerNo() on empty equipment = %q, want empty", got)
	}
}
