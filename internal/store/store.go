// Package store implements the persistence facade: a uniform surface for
// Client, Transaction, Credential and WorkspaceTask records that routes each
// call to either a remote document store or local key-value storage, and
// degrades from remote to local whenever a remote call fails.
package store

import (
	"context"

	"github.com/editiq/editiq/internal/models"
)

// Origin tags which path served an operation, so callers and tests can tell
// a healthy remote call from a degraded one. Reads and writes never
// hard-fail while the local adapter works; an error accompanies
// OriginFallback only when the fallback itself failed too.
type Origin int

const (
	// OriginNone means the operation was rejected before reaching storage.
	OriginNone Origin = iota
	// OriginLocal means the owner is routed to local storage by policy.
	OriginLocal
	// OriginRemote means the remote document store served the call.
	OriginRemote
	// OriginFallback means the remote call failed and local storage
	// answered in its place.
	OriginFallback
)

func (o Origin) String() string {
	switch o {
	case OriginLocal:
		return "local"
	case OriginRemote:
		return "remote"
	case OriginFallback:
		return "local-fallback"
	default:
		return "none"
	}
}

// Collection is the per-entity adapter contract. List returns every record
// owned by ownerID in the adapter's natural order (creation time descending,
// transactions by date descending). Delete on a missing id is a no-op.
type Collection[T models.Record] interface {
	List(ctx context.Context, ownerID string) ([]T, error)
	Insert(ctx context.Context, rec T) error
	Delete(ctx context.Context, ownerID, id string) error
}

// Backend bundles one adapter per entity type.
type Backend struct {
	Clients      Collection[models.Client]
	Transactions Collection[models.Transaction]
	Credentials  Collection[models.Credential]
	Tasks        Collection[models.WorkspaceTask]
}

// Result carries a list response together with the path that produced it.
type Result[T any] struct {
	Records []T
	Origin  Origin
}

// Topic names for change notifications, one per entity collection.
const (
	topicClients      = "clients"
	topicTransactions = "transactions"
	topicCredentials  = "credentials"
	topicTasks        = "workspace_tasks"
)
