package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction/category kinds.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Category represents a user-defined income/expense category.
// The (user_id, name) pair is unique per user.
type Category struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"uniqueIndex:idx_user_category_name;not null"`
	Name      string          `gorm:"size:100;uniqueIndex:idx_user_category_name;not null"`
	Color     string          `gorm:"size:7;not null;default:#3b82f6"`
	Icon      string          `gorm:"size:50;not null;default:ShoppingCart"`
	Type      string          `gorm:"size:7;index;not null;default:expense"` // income / expense
	Budget    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

// ValidType reports whether s is a valid category/transaction type.
func ValidType(s string) bool {
	return s == TypeIncome || s == TypeExpense
}
