package models

import "time"

type Role string

const (
	RoleCitizen  Role = "citizen"
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	switch r {
	case RoleCitizen, RoleAdmin, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID           uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"` // Opaque credential, hashed upstream; never exposed in JSON
	Role         Role      `gorm:"type:varchar(20);not null;default:'citizen'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
