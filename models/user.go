package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"dms.in/freightdesk/utils"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string         `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Name         string         `gorm:"size:100" json:"name"`
	PasswordHash string         `gorm:"size:255;not null" json:"-"`
	Role         string         `gorm:"size:20;not null;default:'user'" json:"role"`
	Permissions  pq.StringArray `gorm:"type:text[]" json:"permissions"`
	IsActive     bool           `gorm:"default:true" json:"isActive"`
	LastLogoutAt *time.Time     `json:"lastLogoutAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

// HasPermission checks the user's permission keys. Admins pass
// everything.
func (u *User) HasPermission(permission string) bool {
	if u.Role == RoleAdmin {
		return true
	}
	for _, p := range u.Permissions {
		if utils.MatchesPermission(p, permission) {
			return true
		}
	}
	return false
}
