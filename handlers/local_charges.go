package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"dms.in/freightdesk/config"
	"dms.in/freightdesk/middleware"
	"dms.in/freightdesk/models"
)

// GetLocalCharges returns the tariff grid for one (line, POL) pair, or
// an empty template when nothing has been saved yet.
// GET /api/v1/localcharges?line=X&pol=Y
func GetLocalCharges(w http.ResponseWriter, r *http.Request) {
	line := strings.TrimSpace(r.URL.Query().Get("line"))
	pol := strings.TrimSpace(r.URL.Query().Get("pol"))
	if line == "" || pol == "" {
		http.Error(w, "line and pol are required", http.StatusBadRequest)
		return
	}

	response := map[string]interface{}{
		"line":      line,
		"pol":       pol,
		"heads":     models.ChargeHeads,
		"equipment": models.EquipmentColumns,
		"saved":     false,
		"grid":      models.EmptyChargeGrid(),
		"updatedBy": "",
	}

	var sheet models.LocalChargeSheet
	err := config.DB.Where("line = ? AND pol = ?", line, pol).First(&sheet).Error
	if err == nil {
		response["saved"] = true
		response["grid"] = sheet.Grid()
		response["updatedBy"] = sheet.UpdatedBy
		response["updatedAt"] = sheet.UpdatedAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

type saveChargesReq struct {
	Line string            `json:"line"`
	POL  string            `json:"pol"`
	Grid models.ChargeGrid `json:"grid"`
}

// SaveLocalCharges overwrites the whole sheet for a (line, POL) pair.
// PUT /api/v1/localcharges
func SaveLocalCharges(w http.ResponseWriter, r *http.Request) {
	var req saveChargesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	req.Line = strings.TrimSpace(req.Line)
	req.POL = strings.TrimSpace(req.POL)
	if req.Line == "" || req.POL == "" {
		http.Error(w, "line and pol are required", http.StatusBadRequest)
		return
	}

	for head := range req.Grid {
		known := false
		for _, h := range models.ChargeHeads {
			if h == head {
				known = true
				break
			}
		}
		if !known {
			http.Error(w, "unknown charge head: "+head, http.StatusUnprocessableEntity)
			return
		}
	}

	raw, err := json.Marshal(req.Grid)
	if err != nil {
		http.Error(w, "invalid grid", http.StatusBadRequest)
		return
	}

	user := middleware.GetUser(r)
	sheet := models.LocalChargeSheet{
		Line:      req.Line,
		POL:       req.POL,
		Cells:     raw,
		UpdatedBy: user.Username,
	}

	// Wholesale overwrite, matching how the desk edits the grid.
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.LocalChargeSheet
		findErr := tx.Where("line = ? AND pol = ?", req.Line, req.POL).First(&existing).Error
		if findErr == nil {
			sheet.ID = existing.ID
			sheet.CreatedAt = existing.CreatedAt
			return tx.Save(&sheet).Error
		}
		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}
		return tx.Create(&sheet).Error
	})
	if err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sheet)
}
