package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type flagCount struct {
	Stage string `gorm:"column:stage"`
	Count int64  `gorm:"column:count"`
}

// Quick sanity check against a live database: counts bookings per
// lifecycle stage and flags any record whose stored flags violate the
// checklist ordering.
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	dsn := os.Getenv("DB_DSN")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("========================================")
	fmt.Println("VERIFICATION: Booking checklist state")
	fmt.Println("========================================")

	var counts []flagCount
	query := `
		SELECT stage, COUNT(*) as count FROM (
			SELECT CASE
				WHEN bl_released THEN 'bl_released'
				WHEN liner_invoice THEN 'liner_invoice'
				WHEN corrections_finalised THEN 'corrections_finalised'
				WHEN first_printed THEN 'first_printed'
				WHEN si_filed THEN 'si_filed'
				ELSE 'new'
			END as stage
			FROM booking_entries
			WHERE deleted_at IS NULL
		) stages
		GROUP BY stage
		ORDER BY count DESC
	`
	if err := db.Raw(query).Scan(&counts).Error; err != nil {
		log.Fatal("Query failed:", err)
	}
	for _, c := range counts {
		fmt.Printf("  %-22s %d\n", c.Stage, c.Count)
	}

	var broken int64
	violation := `
		SELECT COUNT(*) FROM booking_entries
		WHERE deleted_at IS NULL AND (
			(first_printed AND NOT si_filed) OR
			(corrections_finalised AND NOT first_printed) OR
			(liner_invoice AND NOT corrections_finalised)
		)
	`
	if err := db.Raw(violation).Scan(&broken).Error; err != nil {
		log.Fatal("Query failed:", err)
	}
	if broken > 0 {
		fmt.Printf("\nWARNING: %d bookings violate the checklist ordering\n", broken)
		return
	}
	fmt.Println("\nAll bookings respect the checklist ordering.")
}
