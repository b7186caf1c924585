package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/editiq/editiq/internal/dbx"
	"github.com/editiq/editiq/internal/models"
)

// Tasks persists workspace/kanban items. StartedAt and CompletedAt keep the
// zero-means-unset convention of the model, stored as plain BIGINT.
type Tasks struct {
	db dbx.DBTX
}

func (r Tasks) List(ctx context.Context, ownerID string) ([]models.WorkspaceTask, error) {
	query := `
		SELECT id, user_id, client_id, title, description, status, due_date, budget,
			created_at, started_at, completed_at
		FROM workspace_tasks
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks: %w", err)
	}
	defer rows.Close()

	var result []models.WorkspaceTask
	for rows.Next() {
		var t models.WorkspaceTask
		var clientID sql.NullString
		if err := rows.Scan(&t.ID, &t.UserID, &clientID, &t.Title, &t.Description, &t.Status,
			&t.DueDate, &t.Budget, &t.CreatedAt, &t.StartedAt, &t.CompletedAt); err != nil {
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

func (r Tasks) Insert(ctx context.Context, t models.WorkspaceTask) error {
	query := `
		INSERT INTO workspace_tasks (id, user_id, client_id, title, description, status, due_date, budget,
			created_at, started_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, nullable(t.ClientID), t.Title, t.Description, string(t.Status),
		t.DueDate, t.Budget, t.CreatedAt, t.StartedAt, t.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (r Tasks) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM workspace_tasks WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
