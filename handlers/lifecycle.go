package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"dms.in/freightdesk/config"
	"dms.in/freightdesk/middleware"
	"dms.in/freightdesk/models"
	"dms.in/freightdesk/utils"
)

// ChangeBookingFlag is the single entry point for checklist transitions.
// Prerequisites are validated against the stored record, the flag plus
// its side fields are persisted together, and a B/L release moves the
// record into completed files within one transaction.
func ChangeBookingFlag(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var req models.FlagChange
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	var item models.BookingEntry
	if err := config.DB.Where("id = ?", id).First(&item).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	if req.Flag == models.FlagSOB && req.Value {
		formatted, err := utils.FormatSOBDate(req.SOBDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		req.SOBDate = formatted
	}

	if err := models.ValidateFlagChange(&item, req); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	user := middleware.GetUser(r)
	item.AppendAction(req.Flag, strconv.FormatBool(item.FlagValue(req.Flag)), strconv.FormatBool(req.Value), user.Username)
	item.SetFlag(req)
	item.LastEditedBy = user.Username

	if req.Flag == models.FlagBLReleased && req.Value {
		releaseBooking(w, &item, user.Username)
		return
	}

	if err := config.DB.Save(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{"data": item}

	// SOB notification is best effort: a failed send is reported but the
	// flag stays set.
	if req.Flag == models.FlagSOB && req.Value {
		if err := sendSOBNotification(&item); err != nil {
			log.Println("sob notification failed:", err)
			response["emailSent"] = false
			response["emailError"] = err.Error()
		} else {
			response["emailSent"] = true
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// releaseBooking snapshots the entry into completed files and removes it
// from the live bookings, both inside one transaction.
func releaseBooking(w http.ResponseWriter, item *models.BookingEntry, releasedBy string) {
	snapshot := models.SnapshotFrom(item, releasedBy)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&snapshot).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.BookingEntry{}, "id = ?", item.ID).Error
	})
	if err != nil {
		http.Error(w, "release failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":     snapshot,
		"released": true,
	})
}

// sendSOBNotification resolves the booking's customer record and relays
// the shipped-on-board notice.
func sendSOBNotification(item *models.BookingEntry) error {
	var customer models.Customer
	if err := config.DB.Where("name = ?", item.Customer).First(&customer).Error; err != nil {
		return err
	}

	notice := SOBNotification{
		CustomerEmail:    firstOrEmpty(customer.Emails),
		SalesPersonEmail: customer.SalesPersonEmail,
		CustomerName:     customer.Name,
		BookingNo:        item.BookingNo,
		SOBDate:          item.SOBDate,
		Vessel:           item.Vessel,
		Voyage:           item.Voyage,
		POL:              item.POL,
		POD:              item.POD,
		FPOD:             item.FPOD,
		ContainerNo:      item.ContainerNo(),
		Volume:           item.Volume,
		BLNo:             item.BLNo,
	}
	return DefaultMailer().SendSOBNotification(notice)
}

func firstOrEmpty(list []string) string {
	if len(list) > 0 {
		return list[0]
	}
	return ""
}
