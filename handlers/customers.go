package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"dms.in/freightdesk/config"
	"dms.in/freightdesk/middleware"
	"dms.in/freightdesk/models"
)

func GetAllCustomers(w http.ResponseWriter, r *http.Request) {
	var customers []models.Customer
	query := config.DB.Order("name")
	if name := r.URL.Query().Get("name"); name != "" {
		query = query.Where("name = ?", name)
	}
	if err := query.Find(&customers).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":  customers,
		"count": len(customers),
	})
}

// CreateCustomer stores the contact record and mirrors the name into the
// "customer" master category so dropdowns pick it up.
func CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	customer.Name = strings.TrimSpace(customer.Name)
	if customer.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	user := middleware.GetUser(r)
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}
		var existing models.MasterRecord
		err := tx.Where("category = ? AND name = ?", models.CategoryCustomer, customer.Name).
			First(&existing).Error
		if err == nil {
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		return tx.Create(&models.MasterRecord{
			Category:  models.CategoryCustomer,
			Name:      customer.Name,
			CreatedBy: user.Username,
		}).Error
	})
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			http.Error(w, "customer already exists", http.StatusConflict)
			return
		}
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(customer)
}

func GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var customer models.Customer
	if err := config.DB.Where("id = ?", id).First(&customer).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customer)
}

func UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var customer models.Customer
	if err := config.DB.Where("id = ?", id).First(&customer).Error; err != nil {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}

	before := customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	customer.ID = before.ID

	if err := config.DB.Save(&customer).Error; err != nil {
		http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(customer)
}

func DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result := config.DB.Where("id = ?", id).Delete(&models.Customer{})
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
