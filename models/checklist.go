package models

import (
	"errors"
	"fmt"
	"strings"
)

// Checklist flag names as they appear on the wire.
const (
	FlagVGMFiled             = "vgmFiled"
	FlagSIFiled              = "siFiled"
	FlagFirstPrinted         = "firstPrinted"
	FlagCorrectionsFinalised = "correctionsFinalised"
	FlagLinerInvoice         = "linerInvoice"
	FlagBLReleased           = "blReleased"
	FlagISFSent              = "isfSent"
	FlagSOB                  = "sob"
	FlagFinalDG              = "finalDG"
)

// BL types accepted when filing SI.
const (
	BLTypeOBL    = "OBL"
	BLTypeSeaway = "SEAWAY"
)

// FlagChange is a request to toggle one checklist flag. The side fields
// are only consulted for the flags that need them.
type FlagChange struct {
	Flag    string `json:"flag"`
	Value   bool   `json:"value"`
	BLType  string `json:"blType,omitempty"`
	BLNo    string `json:"blNo,omitempty"`
	SOBDate string `json:"sobDate,omitempty"`
}

var ErrUnknownFlag = errors.New("unknown checklist flag")

// ValidateFlagChange checks a requested flag change against the booking's
// current state. Unchecking any flag is always allowed and never cascades.
func ValidateFlagChange(b *BookingEntry, req FlagChange) error {
	if !knownFlag(req.Flag) {
		return fmt.Errorf("%w: %q", ErrUnknownFlag, req.Flag)
	}
	if !req.Value {
		return nil
	}

	switch req.Flag {
	case FlagVGMFiled, FlagISFSent, FlagFinalDG:
		return nil
	case FlagSIFiled:
		if req.BLType != BLTypeOBL && req.BLType != BLTypeSeaway {
			return errors.New("si filing requires a BL type of OBL or SEAWAY")
		}
		return nil
	case FlagFirstPrinted:
		if !b.SIFiled {
			return errors.New("si must be filed before first print")
		}
		if strings.TrimSpace(req.BLNo) == "" {
			return errors.New("first print requires a BL number")
		}
		return nil
	case FlagCorrectionsFinalised:
		if !b.FirstPrinted {
			return errors.New("first print must be done before finalising corrections")
		}
		return nil
	case FlagLinerInvoice:
		if !b.CorrectionsFinalised {
			return errors.New("corrections must be finalised before liner invoice")
		}
		return nil
	case FlagSOB:
		if b.ContainerNo() == "" {
			return errors.New("sob requires a container number on the booking")
		}
		if strings.TrimSpace(b.Voyage) == "" {
			return errors.New("sob requires a voyage")
		}
		if !b.VGMFiled {
			return errors.New("sob requires vgm to be filed")
		}
		if !b.SIFiled {
			return errors.New("sob requires si to be filed")
		}
		if strings.TrimSpace(req.SOBDate) == "" {
			return errors.New("sob requires a date")
		}
		return nil
	case FlagBLReleased:
		for _, prereq := range []struct {
			ok   bool
			name string
		}{
			{b.VGMFiled, "vgm filed"},
			{b.SIFiled, "si filed"},
			{b.FirstPrinted, "first print"},
			{b.CorrectionsFinalised, "corrections finalised"},
			{b.LinerInvoice, "liner invoice"},
			{b.SOB, "sob"},
		} {
			if !prereq.ok {
				return fmt.Errorf("bl release requires %s", prereq.name)
			}
		}
		if b.RequiresISF() && !b.ISFSent {
			return errors.New("bl release to a USA destination requires isf")
		}
		return nil
	}
	return nil
}

// RequiresISF reports whether the booking's destination mandates an
// Importer Security Filing (any USA port in POD or FPOD).
func (b *BookingEntry) RequiresISF() bool {
	dest := strings.ToUpper(b.FPOD + " " + b.POD)
	return strings.Contains(dest, "USA")
}

// SetFlag applies a validated flag change to the entry, including the
// side fields persisted together with the flag.
func (b *BookingEntry) SetFlag(req FlagChange) {
	switch req.Flag {
	case FlagVGMFiled:
		b.VGMFiled = req.Value
	case FlagSIFiled:
		b.SIFiled = req.Value
		if req.Value {
			b.BLType = req.BLType
		}
	case FlagFirstPrinted:
		b.FirstPrinted = req.Value
		if req.Value {
			b.BLNo = req.BLNo
		}
	case FlagCorrectionsFinalised:
		b.CorrectionsFinalised = req.Value
	case FlagLinerInvoice:
		b.LinerInvoice = req.Value
	case FlagBLReleased:
		b.BLReleased = req.Value
	case FlagISFSent:
		b.ISFSent = req.Value
	case FlagSOB:
		b.SOB = req.Value
		if req.Value {
			b.SOBDate = req.SOBDate
		}
	case FlagFinalDG:
		b.FinalDG = req.Value
	}
}

// ResetChecklist clears every lifecycle flag. A new booking starts with
// a clean checklist no matter what the client sent.
func (b *BookingEntry) ResetChecklist() {
	b.VGMFiled = false
	b.SIFiled = false
	b.FirstPrinted = false
	b.CorrectionsFinalised = false
	b.LinerInvoice = false
	b.BLReleased = false
	b.ISFSent = false
	b.SOB = false
	b.FinalDG = false
}

// FlagValue reads a checklist flag by wire name.
func (b *BookingEntry) FlagValue(name string) bool {
	switch name {
	case FlagVGMFiled:
		return b.VGMFiled
	case FlagSIFiled:
		return b.SIFiled
	case FlagFirstPrinted:
		return b.FirstPrinted
	case FlagCorrectionsFinalised:
		return b.CorrectionsFinalised
	case FlagLinerInvoice:
		return b.LinerInvoice
	case FlagBLReleased:
		return b.BLReleased
	case FlagISFSent:
		return b.ISFSent
	case FlagSOB:
		return b.SOB
	case FlagFinalDG:
		return b.FinalDG
	}
	return false
}

func knownFlag(name string) bool {
	switch name {
	case FlagVGMFiled, FlagSIFiled, FlagFirstPrinted, FlagCorrectionsFinalised,
		FlagLinerInvoice, FlagBLReleased, FlagISFSent, FlagSOB, FlagFinalDG:
		return true
	}
	return false
}
