package util

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"john@example.com", "a.b+c@sub.domain.org"}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("ValidateEmail(%q) error = %v, want nil", email, err)
		}
	}

	invalid := []string{"", "plainstring", "missing@tld", "@example.com", "two@@example.com"}
	for _, email := range invalid {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("ValidateEmail(%q) error = nil, want error", email)
		}
	}
}

func TestParseDate(t *testing.T) {
	valid := []string{"2024-01-01", "2024-12-31", "2025-06-15"}
	for _, date := range valid {
		if _, err := ParseDate(date); err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", date, err)
		}
	}

	invalid := []string{
		"",
		"2024/01/01",
		"01-01-2024",
		"2024-1-1",
		"not-a-date",
		"2024-13-01",
		"2024-01-32",
	}
	for _, date := range invalid {
		if _, err := ParseDate(date); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", date)
		}
	}
}

func TestValidateColor(t *testing.T) {
	valid := []string{"#3b82f6", "#FF0000", "#000000"}
	for _, color := range valid {
		if err := ValidateColor(color); err != nil {
			t.Errorf("ValidateColor(%q) error = %v, want nil", color, err)
		}
	}

	invalid := []string{"", "3b82f6", "#fff", "#12345g", "red"}
	for _, color := range invalid {
		if err := ValidateColor(color); err == nil {
			t.Errorf("ValidateColor(%q) error = nil, want error", color)
		}
	}
}
