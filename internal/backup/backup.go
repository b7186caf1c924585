// Package backup builds full JSON snapshots of one owner's data, restores
// them into the remote store, and uploads them to S3-compatible object
// storage.
package backup

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/editiq/editiq/internal/dbx"
	"github.com/editiq/editiq/internal/models"
	"github.com/editiq/editiq/internal/store"
	"github.com/editiq/editiq/internal/store/postgres"
)

// SnapshotVersion is bumped when the snapshot layout changes.
const SnapshotVersion = "1.0"

// Snapshot is everything one owner has, as served by the facade at the time
// of the export. Field names match the JSON the facade's local adapter uses,
// so a snapshot doubles as a readable copy of the local storage layout.
type Snapshot struct {
	Version      string                 `json:"version"`
	ExportedAt   string                 `json:"exportedAt"`
	UserID       string                 `json:"userId"`
	Clients      []models.Client        `json:"clients"`
	Transactions []models.Transaction   `json:"transactions"`
	Credentials  []models.Credential    `json:"credentials"`
	Tasks        []models.WorkspaceTask `json:"workspaceTasks"`
}

// Build collects all four collections through the facade, so the snapshot
// reflects whatever backend currently answers for the owner.
func Build(ctx context.Context, f *store.Facade, ownerID string, now time.Time) (Snapshot, error) {
	snap := Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: now.UTC().Format(time.RFC3339),
		UserID:     ownerID,
	}

	clients, err := f.ListClients(ctx, ownerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to collect clients: %w", err)
	}
	snap.Clients = clients.Records

	txs, err := f.ListTransactions(ctx, ownerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to collect transactions: %w", err)
	}
	snap.Transactions = txs.Records

	creds, err := f.ListCredentials(ctx, ownerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to collect credentials: %w", err)
	}
	snap.Credentials = creds.Records

	tasks, err := f.ListTasks(ctx, ownerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to collect tasks: %w", err)
	}
	snap.Tasks = tasks.Records

	return snap, nil
}

// WriteJSON renders the snapshot as indented JSON.
func (s Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// ReadJSON parses a snapshot produced by WriteJSON.
func ReadJSON(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return s, nil
}

// RestoreRemote inserts every snapshot record into the remote store inside
// a single transaction: either the whole snapshot lands or none of it does.
func RestoreRemote(ctx context.Context, db *sql.DB, snap Snapshot) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		b := postgres.NewBackend(tx)
		for _, c := range snap.Clients {
			if err := b.Clients.Insert(ctx, c); err != nil {
				return err
			}
		}
		for _, t := range snap.Transactions {
			if err := b.Transactions.Insert(ctx, t); err != nil {
				return err
			}
		}
		for _, c := range snap.Credentials {
			if err := b.Credentials.Insert(ctx, c); err != nil {
				return err
			}
		}
		for _, t := range snap.Tasks {
			if err := b.Tasks.Insert(ctx, t); err != nil {
				return err
			}
		}
		return nil
	})
}
