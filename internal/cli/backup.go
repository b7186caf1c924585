package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/editiq/editiq/internal/backup"
)

// Backup snapshots the current owner's data to a JSON file and, when S3
// credentials are configured, uploads the same snapshot to object storage.
func (a *App) Backup(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Snapshot file", os.Stdout)
	if err != nil {
		return err
	}

	snap, err := backup.Build(ctx, a.facade, a.userID, a.now())
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	if err := snap.WriteJSON(f); err != nil {
		return err
	}
	printlnFn("Wrote snapshot to", path)

	if a.config.S3RootUser == "" {
		return nil
	}

	uploader, err := backup.NewUploader(ctx, backup.S3Settings{
		RootUser:     a.config.S3RootUser,
		RootPassword: a.config.S3RootPassword,
		Bucket:       a.config.S3Bucket,
		Region:       a.config.S3Region,
		BaseEndpoint: a.config.S3BaseEndpoint,
	})
	if err != nil {
		return err
	}

	uctx, cancel := context.WithTimeout(ctx, a.config.S3UploadTimeout)
	defer cancel()

	key, err := uploader.Upload(uctx, snap, a.now())
	if err != nil {
		return err
	}
	printlnFn("Uploaded snapshot as", key)
	return nil
}

// Restore loads a snapshot file into the remote store in one transaction.
// Restore targets the database directly, so it requires a reachable remote.
func (a *App) Restore(ctx context.Context) error {
	path, err := GetSimpleText(a.reader, "Snapshot file to restore", os.Stdout)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	snap, err := backup.ReadJSON(f)
	if err != nil {
		return err
	}

	if err := backup.RestoreRemote(ctx, a.db, snap); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Restored %d client(s), %d transaction(s), %d credential(s), %d task(s) for %s",
		len(snap.Clients), len(snap.Transactions), len(snap.Credentials), len(snap.Tasks), snap.UserID))
	return nil
}
