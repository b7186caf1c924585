package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/editiq/editiq/internal/aggregate"
)

// promptWindow maps user input to a time window. A "YYYY-MM" answer selects
// that calendar month.
func promptWindow(a *App) (aggregate.Window, error) {
	choice, err := GetSimpleText(a.reader, "Window (all/week/month/30/YYYY-MM)", os.Stdout)
	if err != nil {
		return aggregate.Window{}, err
	}
	switch strings.ToLower(choice) {
	case "", "all":
		return aggregate.All(), nil
	case "week":
		return aggregate.LastWeek(), nil
	case "month":
		return aggregate.ThisMonth(), nil
	case "30":
		return aggregate.Last30Days(), nil
	}

	parts := strings.SplitN(choice, "-", 2)
	if len(parts) == 2 {
		year, yerr := strconv.Atoi(parts[0])
		month, merr := strconv.Atoi(parts[1])
		if yerr == nil && merr == nil && month >= 1 && month <= 12 {
			return aggregate.CustomMonth(year, time.Month(month)), nil
		}
	}
	return aggregate.Window{}, fmt.Errorf("unknown window %q", choice)
}

func promptClientScope(a *App) (aggregate.ClientScope, error) {
	choice, err := GetSimpleText(a.reader, "Client filter (all/none/<client id>)", os.Stdout)
	if err != nil {
		return aggregate.ClientScope{}, err
	}
	switch strings.ToLower(choice) {
	case "", "all":
		return aggregate.AllClients(), nil
	case "none":
		return aggregate.Unassigned(), nil
	default:
		return aggregate.OneClient(choice), nil
	}
}

// Dashboard runs one aggregation query over the full ledger and renders
// totals, the chart series and the expense breakdown.
func (a *App) Dashboard(ctx context.Context) error {
	window, err := promptWindow(a)
	if err != nil {
		return err
	}
	scope, err := promptClientScope(a)
	if err != nil {
		return err
	}
	seriesText, err := GetSimpleText(a.reader, "Series (daily/monthly)", os.Stdout)
	if err != nil {
		return err
	}
	series := aggregate.SeriesDaily
	if strings.EqualFold(seriesText, "monthly") {
		series = aggregate.SeriesMonthly
	}

	res, err := a.facade.ListTransactions(ctx, a.userID)
	if err != nil {
		return err
	}

	summary := aggregate.Aggregate(res.Records, aggregate.Query{
		Window: window,
		Client: scope,
		Series: series,
	}, a.now())

	printlnFn(fmt.Sprintf("%d record(s) in window%s", len(summary.Filtered), originNote(res.Origin)))
	printlnFn(fmt.Sprintf("Income:  %10s", summary.Totals.Income.String()))
	printlnFn(fmt.Sprintf("Expense: %10s", summary.Totals.Expense.String()))
	printlnFn(fmt.Sprintf("Profit:  %10s", summary.Totals.Profit.String()))

	printlnFn("Series:")
	for _, p := range summary.Series {
		printlnFn(fmt.Sprintf("  %-10s income=%-10s expense=%s", p.Label, p.Income.String(), p.Expense.String()))
	}

	if len(summary.Breakdown) > 0 {
		printlnFn("Top expense categories:")
		for _, c := range summary.Breakdown {
			printlnFn(fmt.Sprintf("  %-20s %s", c.Category, c.Value.String()))
		}
	}
	return nil
}
