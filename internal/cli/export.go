package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/editiq/editiq/internal/export"
)

// Export writes the ledger or the client roster to a CSV file.
func (a *App) Export(ctx context.Context) error {
	what, err := GetSimpleText(a.reader, "Export what (transactions/clients)", os.Stdout)
	if err != nil {
		return err
	}
	path, err := GetSimpleText(a.reader, "Output file", os.Stdout)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(what) {
	case "transactions", "txs", "":
		res, err := a.facade.ListTransactions(ctx, a.userID)
		if err != nil {
			return err
		}
		if err := export.TransactionsCSV(f, res.Records); err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Wrote %d transaction(s) to %s%s", len(res.Records), path, originNote(res.Origin)))

	case "clients":
		res, err := a.facade.ListClients(ctx, a.userID)
		if err != nil {
			return err
		}
		if err := export.ClientsCSV(f, res.Records); err != nil {
			return err
		}
		printlnFn(fmt.Sprintf("Wrote %d client(s) to %s%s", len(res.Records), path, originNote(res.Origin)))

	default:
		return fmt.Errorf("unknown export target %q", what)
	}
	return nil
}
