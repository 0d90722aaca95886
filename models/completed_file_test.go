package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSnapshotFrom(t *testing.T) {
	b := entryWith(func(b *BookingEntry) {
		b.ID = uuid.New()
		b.BLType = BLTypeOBL
		b.BLNo = "MAEU123"
		b.SOBDate = "12/08/2026"
		b.CreatedBy = "desk1"
	})

	snap := SnapshotFrom(b, "desk2")

	if snap.ID != b.ID {
		t.Error("snapshot should keep the booking id")
	}
	if snap.BookingNo != b.BookingNo || snap.Customer != b.Customer || snap.BLNo != "MAEU123" {
		t.Errorf("snapshot lost fields: %+v", snap)
	}
	if snap.Status != "completed" {
		t.Errorf("snapshot status = %q", snap.Status)
	}
	if snap.ReleasedBy != "desk2" {
		t.Errorf("snapshot releasedBy = %q", snap.ReleasedBy)
	}
	if time.Time(snap.ReleasedAt).IsZero() {
		t.Error("snapshot should stamp the release time")
	}
	if snap.CreatedBy != "desk1" {
		t.Errorf("snapshot createdBy = %q", snap.CreatedBy)
	}
}
