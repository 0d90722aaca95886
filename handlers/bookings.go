package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"dms.in/freightdesk/config"
	"dms.in/freightdesk/middleware"
	"dms.in/freightdesk/models"
	"dms.in/freightdesk/utils"
)

// bookingFilters maps query parameters onto columns. The dashboard
// filters by field equality only (plus the flag states).
var bookingFilters = map[string]string{
	"customer":   "customer",
	"line":       "line",
	"pol":        "pol",
	"pod":        "pod",
	"fpod":       "fpod",
	"vessel":     "vessel",
	"voyage":     "voyage",
	"bookingNo":  "booking_no",
	"siFiled":    "si_filed",
	"vgmFiled":   "vgm_filed",
	"sob":        "sob",
	"blReleased": "bl_released",
}

func applyBookingFilters(db *gorm.DB, r *http.Request) *gorm.DB {
	for param, column := range bookingFilters {
		if v := r.URL.Query().Get(param); v != "" {
			db = db.Where(column+" = ?", v)
		}
	}
	return db
}

func GetAllBookings(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 50
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}
	offset := (page - 1) * limit

	query := applyBookingFilters(config.DB.Model(&models.BookingEntry{}), r)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		http.Error(w, "db count error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var entries []models.BookingEntry
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"total": total,
		"page":  page,
		"limit": limit,
		"data":  entries,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// normalizeCutoff canonicalizes a client-sent cut-off into the display
// encoding. RFC 3339 timestamps are converted; display-form strings are
// round-tripped so the HRS suffix comes out uniform.
func normalizeCutoff(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return utils.FormatCutoff(t), nil
	}
	t, err := utils.ParseCutoff(s, 0)
	if err != nil {
		return "", err
	}
	return utils.FormatCutoff(t), nil
}

func CreateBooking(w http.ResponseWriter, r *http.Request) {
	var item models.BookingEntry
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if item.BookingNo == "" || item.Customer == "" || item.Line == "" {
		http.Error(w, "bookingNo, customer and line are required", http.StatusBadRequest)
		return
	}

	user := middleware.GetUser(r)

	item.ResetChecklist()
	item.CreatedBy = user.Username
	item.LastEditedBy = user.Username

	// Clients may send cutoffs as RFC 3339 timestamps or already in the
	// display encoding; anything else is rejected.
	for _, cutoff := range []struct {
		field string
		value *string
	}{
		{"siCutoff", &item.SICutoff},
		{"vgmCutoff", &item.VGMCutoff},
		{"gateOpen", &item.GateOpen},
	} {
		normalized, err := normalizeCutoff(*cutoff.value)
		if err != nil {
			http.Error(w, cutoff.field+": "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		*cutoff.value = normalized
	}

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

func GetBooking(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var item models.BookingEntry
	if err := config.DB.Where("id = ?", id).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

// UpdateBooking merges field edits onto the record. Checklist flags are
// not editable here; they go through the flags endpoint so the ordering
// rules apply. Each changed routing field lands in the audit trail.
func UpdateBooking(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var item models.BookingEntry
	if err := config.DB.Where("id = ?", id).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	before := item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Flags only change through the lifecycle endpoint.
	item.VGMFiled = before.VGMFiled
	item.SIFiled = before.SIFiled
	item.FirstPrinted = before.FirstPrinted
	item.CorrectionsFinalised = before.CorrectionsFinalised
	item.LinerInvoice = before.LinerInvoice
	item.BLReleased = before.BLReleased
	item.ISFSent = before.ISFSent
	item.SOB = before.SOB
	item.FinalDG = before.FinalDG
	item.ID = before.ID
	item.CreatedBy = before.CreatedBy

	user := middleware.GetUser(r)
	item.LastEditedBy = user.Username
	for _, change := range []struct {
		field    string
		from, to string
	}{
		{"customer", before.Customer, item.Customer},
		{"line", before.Line, item.Line},
		{"pol", before.POL, item.POL},
		{"pod", before.POD, item.POD},
		{"fpod", before.FPOD, item.FPOD},
		{"vessel", before.Vessel, item.Vessel},
		{"voyage", before.Voyage, item.Voyage},
		{"blNo", before.BLNo, item.BLNo},
		{"remarks", before.Remarks, item.Remarks},
	} {
		if change.from != change.to {
			item.AppendAction(change.field, change.from, change.to, user.Username)
		}
	}

	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(item)
}

func DeleteBooking(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	result := config.DB.Where("id = ?", id).Delete(&models.BookingEntry{})
	if result.Error != nil {
		http.Error(w, "failed to delete record", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
