package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Customer carries the contact detail behind the "customer" master
// category. Emails and CCEmails are independent lists; the salesperson
// pair is denormalized onto the record.
type Customer struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string         `gorm:"not null;uniqueIndex" json:"name"`
	Address       string         `json:"address"`
	ContactPerson string         `json:"contactPerson"`
	Phone         string         `json:"phone"`
	Emails        pq.StringArray `gorm:"type:text[]" json:"emails"`
	CCEmails      pq.StringArray `gorm:"type:text[];column:cc_emails" json:"ccEmails"`

	SalesPersonName  string `json:"salesPersonName"`
	SalesPersonEmail string `json:"salesPersonEmail"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
