package util

import (
	"fmt"
	"regexp"
	"time"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail validates an email address (loose pattern check).
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if len(email) > 254 || !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return t, nil
}

var colorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateColor validates a #rrggbb hex color string.
func ValidateColor(color string) error {
	if !colorRe.MatchString(color) {
		return fmt.Errorf("invalid hex color")
	}
	return nil
}
