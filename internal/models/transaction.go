package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single income or expense record.
// Amount is signed: income rows are non-negative, expense rows are
// non-positive. The write path normalizes the sign before saving.
//
// CategoryID is a weak reference: deleting the category clears it
// instead of deleting the transaction.
type Transaction struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index;not null"`
	CategoryID  *uint           `gorm:"index"`
	Description string          `gorm:"size:200;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Type        string          `gorm:"size:7;index;not null"` // income / expense
	Date        time.Time       `gorm:"type:date;index;not null"`
	CreatedAt   time.Time

	User     User      `gorm:"constraint:OnDelete:CASCADE"`
	Category *Category `gorm:"constraint:OnDelete:SET NULL"`
}

// NormalizeAmount flips the stored sign when it disagrees with the type:
// income amounts become non-negative, expense amounts non-positive.
func (t *Transaction) NormalizeAmount() {
	switch t.Type {
	case TypeIncome:
		if t.Amount.IsNegative() {
			t.Amount = t.Amount.Abs()
		}
	case TypeExpense:
		if t.Amount.IsPositive() {
			t.Amount = t.Amount.Abs().Neg()
		}
	}
}
