package models

import "time"

// Admin represents an administrator account stored in the database.
//
// Email is normalized (trimmed, lower-cased) before storage and lookup, so the
// unique index enforces case-insensitive uniqueness. Password holds a bcrypt
// hash and is never serialized to clients.
type Admin struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Email    string `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password string `gorm:"type:text;not null" json:"-"`
	Name     string `gorm:"type:text;not null;default:'Admin'" json:"name"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}
