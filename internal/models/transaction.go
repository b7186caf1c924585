package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used by Transaction.Date and
// WorkspaceTask.DueDate. Dates carry no time component.
const DateLayout = "2006-01-02"

// TransactionType splits ledger entries into money in and money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Transaction is an immutable ledger entry. There is no edit operation:
// once created a transaction can only be deleted. ClientID is a weak
// reference; it may point at a client that was deleted later, and lookups
// must treat a miss as "unknown client", never as an error.
type Transaction struct {
	ID       string          `json:"id"`
	UserID   string          `json:"userId"`
	Amount   decimal.Decimal `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Date     string          `json:"date"` // ISO calendar date, DateLayout
	Note     string          `json:"note"`
	ClientID string          `json:"clientId,omitempty"`
}

func (t Transaction) RecordID() string    { return t.ID }
func (t Transaction) RecordOwner() string { return t.UserID }

// Validate enforces amount > 0, a known type and a parseable ISO date.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if t.Type != TransactionIncome && t.Type != TransactionExpense {
		return fmt.Errorf("%w: unknown transaction type %q", ErrValidation, t.Type)
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return fmt.Errorf("%w: invalid date %q", ErrValidation, t.Date)
	}
	return nil
}
