package aggregate

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/editiq/editiq/internal/models"
)

// SeriesMode picks the bucketing of the chart series.
type SeriesMode int

const (
	// SeriesDaily buckets per calendar day over a trailing window.
	SeriesDaily SeriesMode = iota
	// SeriesMonthly buckets per named month, Jan through Dec.
	SeriesMonthly
)

// Query is one dashboard request: a time window, a client filter and the
// series bucketing to chart with.
type Query struct {
	Window Window
	Client ClientScope
	Series SeriesMode
}

// Totals are the income/expense sums over the filtered set.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Profit  decimal.Decimal
}

// Point is one chart bucket. Date is set in daily mode only and carries the
// exact ISO date the bucket matched on.
type Point struct {
	Label   string
	Date    string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryTotal is one row of the expense breakdown.
type CategoryTotal struct {
	Category string
	Value    decimal.Decimal
}

// Summary is everything the dashboard renders for one query.
type Summary struct {
	Filtered  []models.Transaction
	Totals    Totals
	Series    []Point
	Breakdown []CategoryTotal
}

// Aggregate filters by client, then by window, and derives totals, series
// and breakdown from the filtered subset. Given the same inputs it returns
// identical results; the only notion of "today" is the now argument.
func Aggregate(txs []models.Transaction, q Query, now time.Time) Summary {
	filtered := filter(txs, q.Window, q.Client, now)
	return Summary{
		Filtered:  filtered,
		Totals:    sumTotals(filtered),
		Series:    series(filtered, q.Window, q.Series, now),
		Breakdown: breakdown(filtered),
	}
}

// filter applies the client scope first and the time window second.
func filter(txs []models.Transaction, w Window, scope ClientScope, now time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !scope.matches(tx) {
			continue
		}
		if !w.matches(tx.Date, now) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func sumTotals(txs []models.Transaction) Totals {
	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionIncome:
			income = income.Add(tx.Amount)
		case models.TransactionExpense:
			expense = expense.Add(tx.Amount)
		}
	}
	return Totals{Income: income, Expense: expense, Profit: income.Sub(expense)}
}

// breakdown groups EXPENSE records by category, sums per category, sorts
// descending by sum and keeps the top 5. The sort is stable, so categories
// with equal sums stay in first-encountered order.
func breakdown(txs []models.Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var order []string
	for _, tx := range txs {
		if tx.Type != models.TransactionExpense {
			continue
		}
		if _, seen := sums[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		out = append(out, CategoryTotal{Category: cat, Value: sums[cat]})
	}
	stableSortDesc(out)
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}
