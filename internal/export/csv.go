// Package export renders facade list output as CSV. It is a pure consumer:
// it reads the in-memory record slices and imposes nothing back on storage.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/editiq/editiq/internal/models"
)

// TransactionsCSV writes the ledger with one row per transaction. A missing
// client reference is rendered as "N/A", matching the source export.
func TransactionsCSV(w io.Writer, txs []models.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Type", "Category", "Amount", "Note", "Client"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, t := range txs {
		client := t.ClientID
		if client == "" {
			client = "N/A"
		}
		row := []string{t.Date, string(t.Type), t.Category, t.Amount.String(), t.Note, client}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ClientsCSV writes the client roster.
func ClientsCSV(w io.Writer, clients []models.Client) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Name", "Platform", "Project Type", "Budget", "Notes"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, c := range clients {
		budget := ""
		if c.Budget.Valid {
			budget = c.Budget.Decimal.String()
		}
		row := []string{c.Name, string(c.Platform), string(c.ProjectType), budget, c.Notes}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
