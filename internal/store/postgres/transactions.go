package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/editiq/editiq/internal/dbx"
	"github.com/editiq/editiq/internal/models"
)

// Transactions persists ledger rows. The date column is TEXT: the engine
// compares and buckets dates as exact ISO strings, so the stored value must
// round-trip byte for byte.
type Transactions struct {
	db dbx.DBTX
}

func (r Transactions) List(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, type, category, date, note, client_id
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select transactions: %w", err)
	}
	defer rows.Close()

	var result []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var clientID sql.NullString
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Category, &t.Date, &t.Note, &clientID); err != nil {
			return nil, err
		}
		t.ClientID = clientID.String
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r Transactions) Insert(ctx context.Context, t models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, amount, type, category, date, note, client_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Amount, string(t.Type), t.Category, t.Date, t.Note, nullable(t.ClientID))
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r Transactions) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}
