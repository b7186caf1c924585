package postgres

import (
	"context"
	"fmt"

	"github.com/editiq/editiq/internal/dbx"
	"github.com/editiq/editiq/internal/models"
)

// Credentials persists stored logins. Passwords are kept as-is; the source
// system never hashed or encrypted them and the adapter does not either.
type Credentials struct {
	db dbx.DBTX
}

func (r Credentials) List(ctx context.Context, ownerID string) ([]models.Credential, error) {
	query := `
		SELECT id, user_id, platform_name, login_name, password, notes, created_at
		FROM credentials
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select credentials: %w", err)
	}
	defer rows.Close()

	var result []models.Credential
	for rows.Next() {
		var c models.Credential
		if err := rows.Scan(&c.ID, &c.UserID, &c.PlatformName, &c.LoginName, &c.Password, &c.Notes, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r Credentials) Insert(ctx context.Context, c models.Credential) error {
	query := `
		INSERT INTO credentials (id, user_id, platform_name, login_name, password, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.PlatformName, c.LoginName, c.Password, c.Notes, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert credential: %w", err)
	}
	return nil
}

func (r Credentials) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM credentials WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete credential: %w", err)
	}
	return nil
}
