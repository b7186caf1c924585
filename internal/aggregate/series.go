package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/editiq/editiq/internal/models"
)

func series(txs []models.Transaction, w Window, mode SeriesMode, now time.Time) []Point {
	if mode == SeriesMonthly {
		return monthlySeries(txs, now)
	}
	return dailySeries(txs, w, now)
}

// dailySeries produces one bucket per calendar day over a trailing window:
// 7 days for ALL and LAST_WEEK, 30 days otherwise. A transaction lands in a
// bucket only when its date string equals the bucket's ISO date exactly.
func dailySeries(txs []models.Transaction, w Window, now time.Time) []Point {
	days := 30
	if w.Kind == WindowAll || w.Kind == WindowLastWeek {
		days = 7
	}

	today := startOfDay(now)
	out := make([]Point, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		iso := day.Format(models.DateLayout)

		income, expense := decimal.Zero, decimal.Zero
		for _, tx := range txs {
			if tx.Date != iso {
				continue
			}
			switch tx.Type {
			case models.TransactionIncome:
				income = income.Add(tx.Amount)
			case models.TransactionExpense:
				expense = expense.Add(tx.Amount)
			}
		}

		label := day.Format("Mon Jan 2")
		if days == 30 {
			label = day.Format("Jan 2")
		}
		out = append(out, Point{Label: label, Date: iso, Income: income, Expense: expense})
	}
	return out
}

// monthlySeries buckets by named month, Jan through Dec. The month is taken
// from the record's date without looking at the year, so two Januaries of
// different years share a bucket — the source behaves this way. Months with
// no activity are dropped, except the current month which always stays.
func monthlySeries(txs []models.Transaction, now time.Time) []Point {
	var out []Point
	for m := time.January; m <= time.December; m++ {
		income, expense := decimal.Zero, decimal.Zero
		for _, tx := range txs {
			d, ok := parseDate(tx.Date)
			if !ok || d.Month() != m {
				continue
			}
			switch tx.Type {
			case models.TransactionIncome:
				income = income.Add(tx.Amount)
			case models.TransactionExpense:
				expense = expense.Add(tx.Amount)
			}
		}
		if income.IsZero() && expense.IsZero() && m != now.Month() {
			continue
		}
		out = append(out, Point{Label: m.String()[:3], Income: income, Expense: expense})
	}
	return out
}

func stableSortDesc(rows []CategoryTotal) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Value.GreaterThan(rows[j].Value)
	})
}
