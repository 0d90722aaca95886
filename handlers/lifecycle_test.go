package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// A B/L release must copy the booking into completed files and remove it
// from the live table, both inside one transaction.
func TestBLReleaseMovesBookingToCompletedFiles(t *testing.T) {
	mock := newMockDB(t)
	id := uuid.NewString()

	cols := []string{
		"id", "booking_no", "customer", "line", "pol", "pod",
		"vessel", "voyage", "equipment", "bl_type", "bl_no", "sob_date",
		"vgm_filed", "si_filed", "first_printed", "corrections_finalised",
		"liner_invoice", "isf_sent", "sob", "bl_released", "final_dg",
	}
	mock.ExpectQuery(`SELECT (.+) FROM "booking_entries"`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			id, "DMS-1001", "Acme Exports", "Maersk", "Nhava Sheva", "Rotterdam",
			"MSC Pilar", "429W",
			[]byte(`[{"type":"40HC","quantity":1,"containerNo":"MSKU1234567"}]`),
			"OBL", "MAEU123", "12/08/2026",
			true, true, true, true, true, false, true, false, false))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "completed_files"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "booking_entries"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodPost, "/bookings/"+id+"/flags",
		strings.NewReader(`{"flag":"blReleased","value":true}`))
	w := httptest.NewRecorder()

	r := mux.NewRouter()
	r.HandleFunc("/bookings/{id}/flags", ChangeBookingFlag).Methods(http.MethodPost)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"released":true`) {
		t.Errorf("response missing release marker: %s", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("release must insert the snapshot and delete the booking: %v", err)
	}
}

// Releasing without the prerequisite flags must fail before any write.
func TestBLReleaseRejectedWhenChecklistIncomplete(t *testing.T) {
	mock := newMockDB(t)
	id := uuid.NewString()

	cols := []string{"id", "booking_no", "vgm_filed", "si_filed", "sob"}
	mock.ExpectQuery(`SELECT (.+) FROM "booking_entries"`).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(id, "DMS-1002", true, false, false))

	req := httptest.NewRequest(http.MethodPost, "/bookings/"+id+"/flags",
		strings.NewReader(`{"flag":"blReleased","value":true}`))
	w := httptest.NewRecorder()

	r := mux.NewRouter()
	r.HandleFunc("/bookings/{id}/flags", ChangeBookingFlag).Methods(http.MethodPost)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("rejected release ran extra statements: %v", err)
	}
}
