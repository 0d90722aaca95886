package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"dms.in/freightdesk/config"
	"dms.in/freightdesk/middleware"
	"dms.in/freightdesk/models"
)

func GetAllBookingRequests(w http.ResponseWriter, r *http.Request) {
	query := config.DB.Order("created_at DESC")
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var requests []models.BookingRequest
	if err := query.Find(&requests).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  requests,
		"count": len(requests),
	})
}

func CreateBookingRequest(w http.ResponseWriter, r *http.Request) {
	var item models.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if item.Customer == "" {
		http.Error(w, "customer is required", http.StatusBadRequest)
		return
	}

	user := middleware.GetUser(r)
	item.Status = models.RequestPending
	item.RequestedBy = user.Username

	if err := config.DB.Create(&item).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(item)
}

type confirmReq struct {
	BookingNo string `json:"bookingNo"`
	Vessel    string `json:"vessel"`
	Voyage    string `json:"voyage"`
}

// ConfirmBookingRequest turns a pending request into a booking entry and
// marks the request confirmed, in one transaction.
func ConfirmBookingRequest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req confirmReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.BookingNo == "" {
		http.Error(w, "bookingNo is required", http.StatusBadRequest)
		return
	}

	user := middleware.GetUser(r)
	var booking models.BookingEntry

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var request models.BookingRequest
		if err := tx.Where("id = ? AND status = ?", id, models.RequestPending).First(&request).Error; err != nil {
			return err
		}

		booking = models.BookingEntry{
			BookingNo: req.BookingNo,
			Customer:  request.Customer,
			Line:      request.Line,
			POL:       request.POL,
			POD:       request.POD,
			FPOD:      request.FPOD,
			Vessel:    req.Vessel,
			Voyage:    req.Voyage,
			Equipment: request.Equipment,
			Remarks:   request.Remarks,
			CreatedBy: user.Username,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}

		request.Status = models.RequestConfirmed
		return tx.Save(&request).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "pending request not found", http.StatusNotFound)
			return
		}
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

func DeleteBookingRequest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Where("id = ?", id).Delete(&models.BookingRequest{})
	if result.Error != nil {
		http.Error(w, "db error: "+result.Error.Error(), http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
