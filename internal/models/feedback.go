package models

import "time"

// Feedback represents a single public feedback submission.
//
// Name and Message are trimmed and never blank; Email is optional and stored
// as an empty string when absent. Rating is constrained to 1..5 before any
// record reaches the database. Records are immutable after creation.
type Feedback struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name    string `gorm:"type:text;not null" json:"name"`
	Email   string `gorm:"type:text;not null;default:''" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
	Rating  int    `gorm:"not null" json:"rating"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}
