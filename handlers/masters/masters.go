package masters

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"dms.in/freightdesk/config"
	"dms.in/freightdesk/middleware"
	"dms.in/freightdesk/models"
)

// GetCategory returns the ordered records of one master category.
// GET /api/v1/masters/{category}
func GetCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	if !models.KnownCategory(category) {
		http.Error(w, "unknown master category", http.StatusNotFound)
		return
	}

	var records []models.MasterRecord
	if err := config.DB.
		Where("category = ?", category).
		Order("position, name").
		Find(&records).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"category": category,
		"records":  records,
		"count":    len(records),
	})
}

type appendReq struct {
	Name    string          `json:"name"`
	Details json.RawMessage `json:"details,omitempty"`
}

// AppendRecord adds a value to a category unless it is already present.
// Membership is case-sensitive equality on the name; appending a
// duplicate is a no-op that returns the existing record.
// POST /api/v1/masters/{category}
func AppendRecord(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	if !models.KnownCategory(category) {
		http.Error(w, "unknown master category", http.StatusNotFound)
		return
	}

	var req appendReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	var existing models.MasterRecord
	err := config.DB.Where("category = ? AND name = ?", category, name).First(&existing).Error
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"record":   existing,
			"appended": false,
		})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	user := middleware.GetUser(r)
	record := models.MasterRecord{
		Category:  category,
		Name:      name,
		CreatedBy: user.Username,
	}
	if len(req.Details) > 0 {
		record.Details = []byte(req.Details)
	}

	// Position appends to the end of the list.
	var maxPos int
	config.DB.Model(&models.MasterRecord{}).
		Where("category = ?", category).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPos)
	record.Position = maxPos + 1

	if err := config.DB.Create(&record).Error; err != nil {
		// The unique index closes the check-then-insert race; a losing
		// writer reads the winner back.
		if strings.Contains(err.Error(), "duplicate key") {
			config.DB.Where("category = ? AND name = ?", category, name).First(&record)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"record":   record,
				"appended": false,
			})
			return
		}
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"record":   record,
		"appended": true,
	})
}

type updateReq struct {
	Name     string          `json:"name"`
	Position *int            `json:"position"`
	Details  json.RawMessage `json:"details,omitempty"`
}

// UpdateRecord edits a record from the manager screen inside one
// transaction, so a concurrent rename cannot interleave.
// PUT /api/v1/masters/{category}/{id}
func UpdateRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category := vars["category"]
	id := vars["id"]

	var req updateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	var record models.MasterRecord
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category = ? AND id = ?", category, id).First(&record).Error; err != nil {
			return err
		}
		if name := strings.TrimSpace(req.Name); name != "" {
			record.Name = name
		}
		if req.Position != nil {
			record.Position = *req.Position
		}
		if len(req.Details) > 0 {
			record.Details = []byte(req.Details)
		}
		return tx.Save(&record).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "a record with that name already exists", http.StatusConflict)
			return
		}
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(record)
}

// DeleteRecord removes a record from the manager screen.
// DELETE /api/v1/masters/{category}/{id}
func DeleteRecord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	category := vars["category"]
	id := vars["id"]

	result := config.DB.Where("category = ? AND id = ?", category, id).Delete(&models.MasterRecord{})
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
