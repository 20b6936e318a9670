package models

import "time"

// AuthToken is an opaque bearer credential. Each user holds at most one live
// token; login returns the existing one when present.
type AuthToken struct {
	Key       string    `gorm:"type:varchar(64);primarykey" json:"key"`
	UserID    uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
