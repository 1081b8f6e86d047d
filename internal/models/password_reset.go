package models

import "time"

// PasswordReset stores an issued password-reset token (for the
// forgot-password flow; no mail is dispatched, tokens are logged).
type PasswordReset struct {
	ID        string    `gorm:"primaryKey;size:64"` // UUID
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	Used      bool      `gorm:"index;not null"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
