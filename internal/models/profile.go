package models

import "time"

// Supported profile settings.
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyGBP = "GBP"

	DateFormatMDY = "MM/DD/YYYY"
	DateFormatDMY = "DD/MM/YYYY"
	DateFormatISO = "YYYY-MM-DD"
)

// UserProfile holds per-user display settings, one row per user.
// Created lazily on first access if signup did not create it.
type UserProfile struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"uniqueIndex;not null"`
	Currency   string    `gorm:"size:10;not null;default:USD"`
	DateFormat string    `gorm:"size:20;not null;default:YYYY-MM-DD"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// ValidCurrency reports whether s is one of the supported currencies.
func ValidCurrency(s string) bool {
	return s == CurrencyUSD || s == CurrencyEUR || s == CurrencyGBP
}

// ValidDateFormat reports whether s is one of the supported date formats.
func ValidDateFormat(s string) bool {
	return s == DateFormatMDY || s == DateFormatDMY || s == DateFormatISO
}
