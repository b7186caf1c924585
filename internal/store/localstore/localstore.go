// Package localstore implements the facade's local adapter: one JSON array
// per entity type in a kv.Store, holding records for all users. Every read
// unmarshals the whole array and filters by owner in memory; every write
// reads, mutates and writes the full array back. There is no indexing.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/editiq/editiq/internal/kv"
	"github.com/editiq/editiq/internal/models"
	"github.com/editiq/editiq/internal/store"
)

// Storage keys, one per entity type, shared by every user of the store.
const (
	KeyClients      = "clients"
	KeyTransactions = "transactions"
	KeyCredentials  = "credentials"
	KeyTasks        = "workspace_tasks"
)

// collection persists one entity type under a fixed key. before reports
// whether a should be listed ahead of b; List sorts with it, keeping
// insertion order for ties.
type collection[T models.Record] struct {
	store  kv.Store
	key    string
	before func(a, b T) bool
}

func (c collection[T]) load() ([]T, error) {
	raw, ok, err := c.store.GetItem(c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", c.key, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}
	var all []T
	if err := json.Unmarshal([]byte(raw), &all); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", c.key, err)
	}
	return all, nil
}

func (c collection[T]) save(all []T) error {
	b, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", c.key, err)
	}
	if err := c.store.SetItem(c.key, string(b)); err != nil {
		return fmt.Errorf("failed to write %q: %w", c.key, err)
	}
	return nil
}

func (c collection[T]) List(_ context.Context, ownerID string) ([]T, error) {
	all, err := c.load()
	if err != nil {
		return nil, err
	}
	var out []T
	for _, rec := range all {
		if rec.RecordOwner() == ownerID {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return c.before(out[i], out[j]) })
	return out, nil
}

func (c collection[T]) Insert(_ context.Context, rec T) error {
	all, err := c.load()
	if err != nil {
		return err
	}
	return c.save(append(all, rec))
}

// Delete removes the record matching both id and owner. A record that is
// not there, or that belongs to another user, is left alone without error.
func (c collection[T]) Delete(_ context.Context, ownerID, id string) error {
	all, err := c.load()
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, rec := range all {
		if rec.RecordID() == id && rec.RecordOwner() == ownerID {
			continue
		}
		kept = append(kept, rec)
	}
	return c.save(kept)
}

// NewBackend wires a full local backend over the given kv store.
func NewBackend(s kv.Store) store.Backend {
	return store.Backend{
		Clients: collection[models.Client]{
			store: s, key: KeyClients,
			before: func(a, b models.Client) bool { return a.CreatedAt > b.CreatedAt },
		},
		Transactions: collection[models.Transaction]{
			store: s, key: KeyTransactions,
			before: func(a, b models.Transaction) bool { return a.Date > b.Date },
		},
		Credentials: collection[models.Credential]{
			store: s, key: KeyCredentials,
			before: func(a, b models.Credential) bool { return a.CreatedAt > b.CreatedAt },
		},
		Tasks: collection[models.WorkspaceTask]{
			store: s, key: KeyTasks,
			before: func(a, b models.WorkspaceTask) bool { return a.CreatedAt > b.CreatedAt },
		},
	}
}
