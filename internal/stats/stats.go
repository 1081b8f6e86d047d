// Package stats implements the dashboard and analytics aggregations.
// All functions are pure over already-fetched rows; scoping the input to
// a single user happens at the query.
package stats

import (
	"sort"
	"time"

	"github.com/tahir0900/expense-backend/internal/models"

	"github.com/shopspring/decimal"
)

// ChartPoint is one month bucket of the income-vs-expenses chart.
type ChartPoint struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// TrendPoint is one month bucket of the net-amount trend.
type TrendPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// CategoryValue is one slice of the expense-by-category breakdown.
type CategoryValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Summary returns total income, total expenses and balance.
// Expenses are the absolute value of the signed expense sum, which
// equals the sum of absolute values as long as the write path keeps
// expense amounts non-positive.
func Summary(txs []models.Transaction) (income, expenses, balance float64) {
	incomeTotal := decimal.Zero
	expenseTotal := decimal.Zero
	for i := range txs {
		switch txs[i].Type {
		case models.TypeIncome:
			incomeTotal = incomeTotal.Add(txs[i].Amount)
		case models.TypeExpense:
			expenseTotal = expenseTotal.Add(txs[i].Amount)
		}
	}
	expensesAbs := expenseTotal.Abs()
	return incomeTotal.InexactFloat64(),
		expensesAbs.InexactFloat64(),
		incomeTotal.Sub(expensesAbs).InexactFloat64()
}

// monthLabel buckets a date by abbreviated month name. Distinct years
// sharing a month name collapse into the same bucket.
func monthLabel(t time.Time) string {
	return t.Format("Jan")
}

// MonthlyChart groups all transactions by month label, accumulating raw
// income and absolute expenses. Buckets appear in first-seen order.
func MonthlyChart(txs []models.Transaction) []ChartPoint {
	type bucket struct {
		income   decimal.Decimal
		expenses decimal.Decimal
	}
	idx := make(map[string]int)
	var labels []string
	var buckets []bucket

	for i := range txs {
		label := monthLabel(txs[i].Date)
		j, ok := idx[label]
		if !ok {
			j = len(buckets)
			idx[label] = j
			labels = append(labels, label)
			buckets = append(buckets, bucket{income: decimal.Zero, expenses: decimal.Zero})
		}
		if txs[i].Type == models.TypeIncome {
			buckets[j].income = buckets[j].income.Add(txs[i].Amount)
		} else {
			buckets[j].expenses = buckets[j].expenses.Add(txs[i].Amount.Abs())
		}
	}

	points := make([]ChartPoint, 0, len(labels))
	for j, label := range labels {
		points = append(points, ChartPoint{
			Month:    label,
			Income:   buckets[j].income.InexactFloat64(),
			Expenses: buckets[j].expenses.InexactFloat64(),
		})
	}
	return points
}

// MonthlyTrend groups all transactions by month label, accumulating the
// signed amount (income positive, expenses negative) into a net figure.
func MonthlyTrend(txs []models.Transaction) []TrendPoint {
	idx := make(map[string]int)
	var labels []string
	var totals []decimal.Decimal

	for i := range txs {
		label := monthLabel(txs[i].Date)
		j, ok := idx[label]
		if !ok {
			j = len(totals)
			idx[label] = j
			labels = append(labels, label)
			totals = append(totals, decimal.Zero)
		}
		totals[j] = totals[j].Add(txs[i].Amount)
	}

	points := make([]TrendPoint, 0, len(labels))
	for j, label := range labels {
		points = append(points, TrendPoint{Month: label, Amount: totals[j].InexactFloat64()})
	}
	return points
}

// CategoryBreakdown sums absolute expense amounts per category name for
// expense transactions that have a category, sorted descending by total.
func CategoryBreakdown(txs []models.Transaction) []CategoryValue {
	idx := make(map[string]int)
	var names []string
	var totals []decimal.Decimal

	for i := range txs {
		if txs[i].Type != models.TypeExpense || txs[i].Category == nil {
			continue
		}
		name := txs[i].Category.Name
		j, ok := idx[name]
		if !ok {
			j = len(totals)
			idx[name] = j
			names = append(names, name)
			totals = append(totals, decimal.Zero)
		}
		totals[j] = totals[j].Add(txs[i].Amount.Abs())
	}

	breakdown := make([]CategoryValue, 0, len(names))
	for j, name := range names {
		breakdown = append(breakdown, CategoryValue{Name: name, Value: totals[j].InexactFloat64()})
	}
	sort.SliceStable(breakdown, func(a, b int) bool {
		return breakdown[a].Value > breakdown[b].Value
	})
	return breakdown
}

// TopCategory returns the leading breakdown entry and its share of the
// breakdown total as a percentage. Both are nil when the breakdown is
// empty; the percentage is also nil when the total is zero.
func TopCategory(breakdown []CategoryValue) (name *string, percent *float64) {
	if len(breakdown) == 0 {
		return nil, nil
	}
	top := breakdown[0].Name
	name = &top

	var total float64
	for _, c := range breakdown {
		total += c.Value
	}
	if total > 0 {
		p := breakdown[0].Value / total * 100.0
		percent = &p
	}
	return name, percent
}

// AverageDailySpending sums absolute expense amounts dated within the
// inclusive window [today-30d, today] and divides by the constant 30,
// regardless of how many days actually carry data.
func AverageDailySpending(txs []models.Transaction, today time.Time) float64 {
	today = dateOnly(today)
	windowStart := today.AddDate(0, 0, -30)

	total := decimal.Zero
	for i := range txs {
		if txs[i].Type != models.TypeExpense {
			continue
		}
		d := dateOnly(txs[i].Date)
		if d.Before(windowStart) || d.After(today) {
			continue
		}
		total = total.Add(txs[i].Amount.Abs())
	}
	return total.Div(decimal.NewFromInt(30)).InexactFloat64()
}

// SavingsRate returns (income - expenses) / income * 100 with expenses
// as the sum of absolute expense amounts. Nil unless income > 0.
func SavingsRate(txs []models.Transaction) *float64 {
	incomeTotal := decimal.Zero
	expenseTotal := decimal.Zero
	for i := range txs {
		switch txs[i].Type {
		case models.TypeIncome:
			incomeTotal = incomeTotal.Add(txs[i].Amount)
		case models.TypeExpense:
			expenseTotal = expenseTotal.Add(txs[i].Amount.Abs())
		}
	}
	if !incomeTotal.IsPositive() {
		return nil
	}
	rate := incomeTotal.Sub(expenseTotal).
		Div(incomeTotal).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
	return &rate
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
