package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"dms.in/freightdesk/config"
	"dms.in/freightdesk/middleware"
	"dms.in/freightdesk/models"
	"dms.in/freightdesk/utils"
)

func GetAllCompletedFiles(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 50
	if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && l > 0 {
		limit = l
	}
	offset := (page - 1) * limit

	query := config.DB.Model(&models.CompletedFile{})
	for param, column := range map[string]string{
		"customer":  "customer",
		"line":      "line",
		"pol":       "pol",
		"pod":       "pod",
		"bookingNo": "booking_no",
		"blNo":      "bl_no",
	} {
		if v := r.URL.Query().Get(param); v != "" {
			query = query.Where(column+" = ?", v)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		http.Error(w, "db count error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	var files []models.CompletedFile
	if err := query.
		Order("released_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&files).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"total": total,
		"page":  page,
		"limit": limit,
		"data":  files,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func GetCompletedFile(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var file models.CompletedFile
	if err := config.DB.Where("id = ?", id).First(&file).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(file)
}

type invoiceReq struct {
	InvoiceNo string `json:"invoiceNo"`
}

// UpdateInvoiceNo is the only edit allowed on a completed file. The
// input is reformatted to the fixed "DMS/<n>/25-26" template on write.
func UpdateInvoiceNo(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id := params["id"]

	var req invoiceReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.InvoiceNo) == "" {
		http.Error(w, "invoiceNo is required", http.StatusBadRequest)
		return
	}

	var file models.CompletedFile
	if err := config.DB.Where("id = ?", id).First(&file).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	user := middleware.GetUser(r)
	file.InvoiceNo = utils.FormatInvoiceNo(req.InvoiceNo)
	file.LastEditedBy = user.Username

	if err := config.DB.Save(&file).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(file)
}
