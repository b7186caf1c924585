// Package aggregate holds the pure filtering and aggregation pipeline the
// dashboard is built on: time-window filters, a client filter, totals,
// chart series and a top-N expense breakdown. Every function is stateless
// and recomputed from scratch per call; the reference instant is always
// passed in, never read from the system clock.
package aggregate

import (
	"time"

	"github.com/editiq/editiq/internal/models"
)

// WindowKind names the supported time windows.
type WindowKind int

const (
	WindowAll WindowKind = iota
	WindowLastWeek
	WindowThisMonth
	WindowLast30Days
	WindowCustomMonth
)

// Window is a named or parameterized date range. Year and Month are only
// meaningful for WindowCustomMonth.
type Window struct {
	Kind  WindowKind
	Year  int
	Month time.Month
}

func All() Window        { return Window{Kind: WindowAll} }
func LastWeek() Window   { return Window{Kind: WindowLastWeek} }
func ThisMonth() Window  { return Window{Kind: WindowThisMonth} }
func Last30Days() Window { return Window{Kind: WindowLast30Days} }

// CustomMonth selects one calendar month of one year, both ends inclusive.
func CustomMonth(year int, month time.Month) Window {
	return Window{Kind: WindowCustomMonth, Year: year, Month: month}
}

// ClientScopeKind names the client-filter variants.
type ClientScopeKind int

const (
	// ClientAll passes every record.
	ClientAll ClientScopeKind = iota
	// ClientUnassigned keeps only records without a client reference.
	ClientUnassigned
	// ClientOne keeps exact matches on ClientID.
	ClientOne
)

// ClientScope filters records by their weak client reference.
type ClientScope struct {
	Kind     ClientScopeKind
	ClientID string
}

func AllClients() ClientScope  { return ClientScope{Kind: ClientAll} }
func Unassigned() ClientScope  { return ClientScope{Kind: ClientUnassigned} }
func OneClient(id string) ClientScope {
	return ClientScope{Kind: ClientOne, ClientID: id}
}

// startOfDay strips the time component in UTC; all window math is anchored
// to it so results depend only on the calendar date of the passed instant.
func startOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDate parses an ISO calendar date. The boolean is false for records
// whose date does not parse; windowed filters drop those records, ALL keeps
// them (mirrors the source, where an invalid date fails every comparison).
func parseDate(s string) (time.Time, bool) {
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func (t ClientScope) matches(tx models.Transaction) bool {
	switch t.Kind {
	case ClientUnassigned:
		return tx.ClientID == ""
	case ClientOne:
		return tx.ClientID == t.ClientID
	default:
		return true
	}
}

// matches reports whether the record's date falls inside the window,
// relative to the given reference instant.
func (w Window) matches(date string, now time.Time) bool {
	if w.Kind == WindowAll {
		return true
	}
	d, ok := parseDate(date)
	if !ok {
		return false
	}
	today := startOfDay(now)

	switch w.Kind {
	case WindowLastWeek:
		return !d.Before(today.AddDate(0, 0, -7))
	case WindowThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return !d.Before(first)
	case WindowLast30Days:
		return !d.Before(today.AddDate(0, 0, -30))
	case WindowCustomMonth:
		first := time.Date(w.Year, w.Month, 1, 0, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)
		return !d.Before(first) && !d.After(last)
	default:
		return true
	}
}
