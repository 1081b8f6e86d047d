package stats

import (
	"math"
	"testing"
	"time"

	"github.com/tahir0900/expense-backend/internal/models"

	"github.com/shopspring/decimal"
)

func tx(txType string, amount float64, date time.Time, category *models.Category) models.Transaction {
	return models.Transaction{
		Type:     txType,
		Amount:   decimal.NewFromFloat(amount),
		Date:     date,
		Category: category,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummary_Empty(t *testing.T) {
	income, expenses, balance := Summary(nil)
	if income != 0 || expenses != 0 || balance != 0 {
		t.Errorf("Summary(nil) = %v, %v, %v, want all zero", income, expenses, balance)
	}
}

func TestSummary_MixedSigns(t *testing.T) {
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx("expense", -25.50, day, nil),
		tx("income", 3000.00, day, nil),
	}

	income, expenses, balance := Summary(txs)
	if !almostEqual(income, 3000.00) {
		t.Errorf("income = %v, want 3000.00", income)
	}
	if !almostEqual(expenses, 25.50) {
		t.Errorf("expenses = %v, want 25.50", expenses)
	}
	if !almostEqual(balance, 2974.50) {
		t.Errorf("balance = %v, want 2974.50", balance)
	}
}

// The balance identity must hold for any transaction set.
func TestSummary_BalanceIdentity(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	cases := [][]models.Transaction{
		nil,
		{tx("income", 10, day, nil)},
		{tx("expense", -10, day, nil)},
		{
			tx("income", 1234.56, day, nil),
			tx("income", 0.01, day, nil),
			tx("expense", -99.99, day, nil),
			tx("expense", -0.02, day, nil),
		},
	}
	for _, txs := range cases {
		income, expenses, balance := Summary(txs)
		if !almostEqual(balance, income-expenses) {
			t.Errorf("balance = %v, want income-expenses = %v", balance, income-expenses)
		}
	}
}

func TestMonthlyChart(t *testing.T) {
	txs := []models.Transaction{
		tx("income", 1000, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), nil),
		tx("expense", -200, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), nil),
		tx("expense", -50, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), nil),
	}

	chart := MonthlyChart(txs)
	if len(chart) != 2 {
		t.Fatalf("len(chart) = %d, want 2", len(chart))
	}
	if chart[0].Month != "Jan" || !almostEqual(chart[0].Income, 1000) || !almostEqual(chart[0].Expenses, 200) {
		t.Errorf("Jan bucket = %+v", chart[0])
	}
	if chart[1].Month != "Feb" || !almostEqual(chart[1].Income, 0) || !almostEqual(chart[1].Expenses, 50) {
		t.Errorf("Feb bucket = %+v", chart[1])
	}
}

// Known boundary behavior: month labels carry no year, so the same month
// of different years lands in one bucket.
func TestMonthlyChart_YearCollision(t *testing.T) {
	txs := []models.Transaction{
		tx("income", 100, time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC), nil),
		tx("income", 200, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), nil),
	}

	chart := MonthlyChart(txs)
	if len(chart) != 1 {
		t.Fatalf("len(chart) = %d, want 1 (Jan 2023 and Jan 2024 share a bucket)", len(chart))
	}
	if chart[0].Month != "Jan" || !almostEqual(chart[0].Income, 300) {
		t.Errorf("merged Jan bucket = %+v, want income 300", chart[0])
	}
}

func TestMonthlyTrend(t *testing.T) {
	txs := []models.Transaction{
		tx("income", 1000, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), nil),
		tx("expense", -300, time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), nil),
		tx("expense", -40, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), nil),
	}

	trend := MonthlyTrend(txs)
	if len(trend) != 2 {
		t.Fatalf("len(trend) = %d, want 2", len(trend))
	}
	if trend[0].Month != "Jan" || !almostEqual(trend[0].Amount, 700) {
		t.Errorf("Jan = %+v, want net 700", trend[0])
	}
	if trend[1].Month != "Mar" || !almostEqual(trend[1].Amount, -40) {
		t.Errorf("Mar = %+v, want net -40", trend[1])
	}
}

func TestCategoryBreakdown(t *testing.T) {
	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	food := &models.Category{Name: "Food"}
	rent := &models.Category{Name: "Rent"}

	txs := []models.Transaction{
		tx("expense", -30, day, food),
		tx("expense", -900, day, rent),
		tx("expense", -20, day, food),
		tx("expense", -15, day, nil),     // no category, excluded
		tx("income", 5000, day, food),    // income, excluded
	}

	breakdown := CategoryBreakdown(txs)
	if len(breakdown) != 2 {
		t.Fatalf("len(breakdown) = %d, want 2", len(breakdown))
	}
	if breakdown[0].Name != "Rent" || !almostEqual(breakdown[0].Value, 900) {
		t.Errorf("breakdown[0] = %+v, want Rent 900", breakdown[0])
	}
	if breakdown[1].Name != "Food" || !almostEqual(breakdown[1].Value, 50) {
		t.Errorf("breakdown[1] = %+v, want Food 50", breakdown[1])
	}
}

func TestTopCategory(t *testing.T) {
	name, percent := TopCategory(nil)
	if name != nil || percent != nil {
		t.Errorf("TopCategory(nil) = %v, %v, want nil, nil", name, percent)
	}

	breakdown := []CategoryValue{{Name: "Food", Value: 25.50}}
	name, percent = TopCategory(breakdown)
	if name == nil || *name != "Food" {
		t.Fatalf("name = %v, want Food", name)
	}
	if percent == nil || !almostEqual(*percent, 100.0) {
		t.Errorf("percent = %v, want 100", percent)
	}

	breakdown = []CategoryValue{
		{Name: "Rent", Value: 75},
		{Name: "Food", Value: 25},
	}
	name, percent = TopCategory(breakdown)
	if name == nil || *name != "Rent" {
		t.Fatalf("name = %v, want Rent", name)
	}
	if percent == nil || !almostEqual(*percent, 75.0) {
		t.Errorf("percent = %v, want 75", percent)
	}
	if *percent < 0 || *percent > 100 {
		t.Errorf("percent = %v, out of [0,100]", *percent)
	}

	// all-zero breakdown keeps the name but not the percentage
	name, percent = TopCategory([]CategoryValue{{Name: "Food", Value: 0}})
	if name == nil || *name != "Food" {
		t.Errorf("name = %v, want Food", name)
	}
	if percent != nil {
		t.Errorf("percent = %v, want nil for zero total", *percent)
	}
}

func TestAverageDailySpending(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	// a single 10.00 expense today and nothing else
	txs := []models.Transaction{tx("expense", -10.00, today, nil)}
	got := AverageDailySpending(txs, today)
	if !almostEqual(got, 10.0/30.0) {
		t.Errorf("avg = %v, want %v", got, 10.0/30.0)
	}

	// window boundaries are inclusive on both ends
	txs = []models.Transaction{
		tx("expense", -30, today.AddDate(0, 0, -30), nil), // in
		tx("expense", -60, today.AddDate(0, 0, -31), nil), // out
		tx("expense", -30, today, nil),                    // in
		tx("income", 500, today, nil),                     // not spending
	}
	got = AverageDailySpending(txs, today)
	if !almostEqual(got, 2.0) {
		t.Errorf("avg = %v, want 2.0", got)
	}

	if got := AverageDailySpending(nil, today); got != 0 {
		t.Errorf("avg over no data = %v, want 0", got)
	}
}

func TestSavingsRate(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	if rate := SavingsRate(nil); rate != nil {
		t.Errorf("rate = %v, want nil with no income", *rate)
	}

	// expenses only: income is zero, guard is income > 0
	txs := []models.Transaction{tx("expense", -10, day, nil)}
	if rate := SavingsRate(txs); rate != nil {
		t.Errorf("rate = %v, want nil with zero income", *rate)
	}

	txs = []models.Transaction{
		tx("income", 3000.00, day, nil),
		tx("expense", -25.50, day, nil),
	}
	rate := SavingsRate(txs)
	if rate == nil {
		t.Fatal("rate = nil, want value")
	}
	want := (3000.00 - 25.50) / 3000.00 * 100.0 // ≈ 99.15
	if !almostEqual(*rate, want) {
		t.Errorf("rate = %v, want %v", *rate, want)
	}

	// overspending is allowed to go negative
	txs = []models.Transaction{
		tx("income", 100, day, nil),
		tx("expense", -150, day, nil),
	}
	rate = SavingsRate(txs)
	if rate == nil || !almostEqual(*rate, -50.0) {
		t.Errorf("rate = %v, want -50", rate)
	}
}
