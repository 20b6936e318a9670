package models

import (
	"time"
)

type UserRole string

const (
	RoleAdmin            UserRole = "admin"
	RoleProjectManager   UserRole = "project_manager"
	RoleSiteManager      UserRole = "site_manager"
	RoleSurveyor         UserRole = "surveyor"
	RoleROWCoordinator   UserRole = "row_coordinator"
	RoleQualityInspector UserRole = "quality_inspector"
	RoleUser             UserRole = "user"
	RoleViewer           UserRole = "viewer"
)

// Valid reports whether the role belongs to the closed role set.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleSiteManager, RoleSurveyor,
		RoleROWCoordinator, RoleQualityInspector, RoleUser, RoleViewer:
		return true
	}
	return false
}

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string    `gorm:"type:varchar(255)" json:"full_name"`
	Phone        *string   `gorm:"type:varchar(20)" json:"phone"`
	Role         UserRole  `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	AssignedTasks []Task `gorm:"foreignKey:AssignedToID" json:"-"`
}
