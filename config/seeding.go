package config

import (
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dms.in/freightdesk/models"
)

// Seed creates the initial admin account and the baseline equipment-type
// master records. Safe to run on every start; existing rows are left alone.
func Seed(db *gorm.DB) error {
	if err := seedAdminUser(db); err != nil {
		return err
	}
	if err := seedEquipmentTypes(db); err != nil {
		return err
	}
	return nil
}

func seedAdminUser(db *gorm.DB) error {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Username:     username,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Seeded admin user:", username)
	return nil
}

func seedEquipmentTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MasterRecord{}).
		Where("category = ?", models.CategoryEquipmentType).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, name := range models.EquipmentColumns {
		rec := models.MasterRecord{
			Category: models.CategoryEquipmentType,
			Name:     name,
			Position: i,
		}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}
	}
	log.Println("Seeded equipment type masters")
	return nil
}
