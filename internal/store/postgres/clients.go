package postgres

import (
	"context"
	"fmt"

	"github.com/editiq/editiq/internal/dbx"
	"github.com/editiq/editiq/internal/models"
)

// Clients persists models.Client rows over a dbx.DBTX (*sql.DB or *sql.Tx).
type Clients struct {
	db dbx.DBTX
}

func (r Clients) List(ctx context.Context, ownerID string) ([]models.Client, error) {
	query := `
		SELECT id, user_id, name, platform, project_type, notes, budget, created_at
		FROM clients
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select clients: %w", err)
	}
	defer rows.Close()

	var result []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Platform, &c.ProjectType, &c.Notes, &c.Budget, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r Clients) Insert(ctx context.Context, c models.Client) error {
	query := `
		INSERT INTO clients (id, user_id, name, platform, project_type, notes, budget, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.Name, string(c.Platform), string(c.ProjectType), c.Notes, c.Budget, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}
	return nil
}

// Delete removes the client matching both id and owner. Zero rows affected
// is fine: deleting a missing record is a no-op by contract.
func (r Clients) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM clients WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}
