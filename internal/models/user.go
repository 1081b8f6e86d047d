package models

import "time"

// User represents an application user. Email doubles as the login
// identifier and is matched case-insensitively.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:150"`
	Email        string `gorm:"size:254;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
