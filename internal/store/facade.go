package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/editiq/editiq/internal/logging"
	"github.com/editiq/editiq/internal/models"
)

// Options configures a Facade.
//
// DemoOwnerID is the routing policy made explicit: records owned by this
// identifier live in local storage, everything else goes to the remote
// backend. Now and NewID exist so tests can pin timestamps and identifiers.
type Options struct {
	DemoOwnerID string
	Logger      logging.Logger
	Now         func() time.Time
	NewID       func() string
}

// Facade routes every operation to the remote or local backend, assigns
// identifiers and creation timestamps on create, and publishes change
// events consumed by subscriptions.
type Facade struct {
	remote Backend
	local  Backend
	opts   Options
	hub    *hub
}

func New(remote, local Backend, opts Options) *Facade {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	return &Facade{remote: remote, local: local, opts: opts, hub: newHub()}
}

// useLocal is evaluated independently on every call; routing never caches.
func (f *Facade) useLocal(ownerID string) bool {
	return ownerID == f.opts.DemoOwnerID
}

func (f *Facade) nowMillis() int64 {
	return f.opts.Now().UnixMilli()
}

// listIn runs List against the backend chosen by the routing policy and
// falls back to local storage when the remote call fails.
func listIn[T models.Record](ctx context.Context, f *Facade, ownerID, entity string, pick func(Backend) Collection[T]) (Result[T], error) {
	if f.useLocal(ownerID) {
		recs, err := pick(f.local).List(ctx, ownerID)
		if err != nil {
			return Result[T]{Origin: OriginLocal}, fmt.Errorf("local %s list: %w", entity, err)
		}
		return Result[T]{Records: recs, Origin: OriginLocal}, nil
	}

	recs, err := pick(f.remote).List(ctx, ownerID)
	if err == nil {
		return Result[T]{Records: recs, Origin: OriginRemote}, nil
	}
	f.opts.Logger.Warn(ctx, "remote list failed, using local storage", "entity", entity, "owner", ownerID, "error", err)

	recs, lerr := pick(f.local).List(ctx, ownerID)
	if lerr != nil {
		return Result[T]{Origin: OriginFallback}, fmt.Errorf("remote %s list failed (%v), local fallback: %w", entity, err, lerr)
	}
	return Result[T]{Records: recs, Origin: OriginFallback}, nil
}

// insertIn persists a fully-stamped record with the same routing and
// fallback behavior as listIn and publishes a change event on success.
func insertIn[T models.Record](ctx context.Context, f *Facade, entity string, rec T, pick func(Backend) Collection[T]) (Origin, error) {
	ownerID := rec.RecordOwner()

	if f.useLocal(ownerID) {
		if err := pick(f.local).Insert(ctx, rec); err != nil {
			return OriginLocal, fmt.Errorf("local %s insert: %w", entity, err)
		}
		f.hub.publish(topic{entity, ownerID})
		return OriginLocal, nil
	}

	err := pick(f.remote).Insert(ctx, rec)
	if err == nil {
		f.hub.publish(topic{entity, ownerID})
		return OriginRemote, nil
	}
	f.opts.Logger.Warn(ctx, "remote insert failed, writing to local storage", "entity", entity, "owner", ownerID, "error", err)

	if lerr := pick(f.local).Insert(ctx, rec); lerr != nil {
		return OriginFallback, fmt.Errorf("remote %s insert failed (%v), local fallback: %w", entity, err, lerr)
	}
	f.hub.publish(topic{entity, ownerID})
	return OriginFallback, nil
}

// deleteIn removes by (owner, id); a missing record is a successful no-op.
func deleteIn[T models.Record](ctx context.Context, f *Facade, ownerID, id, entity string, pick func(Backend) Collection[T]) (Origin, error) {
	if f.useLocal(ownerID) {
		if err := pick(f.local).Delete(ctx, ownerID, id); err != nil {
			return OriginLocal, fmt.Errorf("local %s delete: %w", entity, err)
		}
		f.hub.publish(topic{entity, ownerID})
		return OriginLocal, nil
	}

	err := pick(f.remote).Delete(ctx, ownerID, id)
	if err == nil {
		f.hub.publish(topic{entity, ownerID})
		return OriginRemote, nil
	}
	f.opts.Logger.Warn(ctx, "remote delete failed, deleting from local storage", "entity", entity, "owner", ownerID, "error", err)

	if lerr := pick(f.local).Delete(ctx, ownerID, id); lerr != nil {
		return OriginFallback, fmt.Errorf("remote %s delete failed (%v), local fallback: %w", entity, err, lerr)
	}
	f.hub.publish(topic{entity, ownerID})
	return OriginFallback, nil
}

// subscribeIn delivers the current list synchronously, then re-lists and
// delivers on every published change for the (entity, owner) topic. The
// returned cancel function is idempotent.
func subscribeIn[T models.Record](ctx context.Context, f *Facade, ownerID, entity string, pick func(Backend) Collection[T], fn func([]T)) (func(), error) {
	res, err := listIn(ctx, f, ownerID, entity, pick)
	if err != nil {
		return nil, err
	}
	fn(res.Records)

	cancel := f.hub.subscribe(topic{entity, ownerID}, func() {
		res, err := listIn(ctx, f, ownerID, entity, pick)
		if err != nil {
			f.opts.Logger.Error(ctx, "subscription refresh failed", "entity", entity, "owner", ownerID, "error", err)
			return
		}
		fn(res.Records)
	})
	return cancel, nil
}

func pickClients(b Backend) Collection[models.Client]           { return b.Clients }
func pickTransactions(b Backend) Collection[models.Transaction] { return b.Transactions }
func pickCredentials(b Backend) Collection[models.Credential]   { return b.Credentials }
func pickTasks(b Backend) Collection[models.WorkspaceTask]      { return b.Tasks }

// --- Clients ---

func (f *Facade) ListClients(ctx context.Context, ownerID string) (Result[models.Client], error) {
	return listIn(ctx, f, ownerID, topicClients, pickClients)
}

// CreateClient validates, assigns a fresh id, owner and creation timestamp,
// persists and returns the new identifier.
func (f *Facade) CreateClient(ctx context.Context, ownerID string, c models.Client) (string, Origin, error) {
	if err := c.Validate(); err != nil {
		return "", OriginNone, err
	}
	c.ID = f.opts.NewID()
	c.UserID = ownerID
	c.CreatedAt = f.nowMillis()

	origin, err := insertIn(ctx, f, topicClients, c, pickClients)
	if err != nil {
		return "", origin, err
	}
	return c.ID, origin, nil
}

func (f *Facade) DeleteClient(ctx context.Context, ownerID, id string) (Origin, error) {
	return deleteIn(ctx, f, ownerID, id, topicClients, pickClients)
}

func (f *Facade) SubscribeClients(ctx context.Context, ownerID string, fn func([]models.Client)) (func(), error) {
	return subscribeIn(ctx, f, ownerID, topicClients, pickClients, fn)
}

// --- Transactions ---

func (f *Facade) ListTransactions(ctx context.Context, ownerID string) (Result[models.Transaction], error) {
	return listIn(ctx, f, ownerID, topicTransactions, pickTransactions)
}

// CreateTransaction validates and persists a ledger entry. Transactions
// carry no creation timestamp; the ledger date is user-supplied.
func (f *Facade) CreateTransaction(ctx context.Context, ownerID string, t models.Transaction) (string, Origin, error) {
	if err := t.Validate(); err != nil {
		return "", OriginNone, err
	}
	t.ID = f.opts.NewID()
	t.UserID = ownerID

	origin, err := insertIn(ctx, f, topicTransactions, t, pickTransactions)
	if err != nil {
		return "", origin, err
	}
	return t.ID, origin, nil
}

func (f *Facade) DeleteTransaction(ctx context.Context, ownerID, id string) (Origin, error) {
	return deleteIn(ctx, f, ownerID, id, topicTransactions, pickTransactions)
}

func (f *Facade) SubscribeTransactions(ctx context.Context, ownerID string, fn func([]models.Transaction)) (func(), error) {
	return subscribeIn(ctx, f, ownerID, topicTransactions, pickTransactions, fn)
}

// --- Credentials ---

func (f *Facade) ListCredentials(ctx context.Context, ownerID string) (Result[models.Credential], error) {
	return listIn(ctx, f, ownerID, topicCredentials, pickCredentials)
}

func (f *Facade) CreateCredential(ctx context.Context, ownerID string, c models.Credential) (string, Origin, error) {
	if err := c.Validate(); err != nil {
		return "", OriginNone, err
	}
	c.ID = f.opts.NewID()
	c.UserID = ownerID
	c.CreatedAt = f.nowMillis()

	origin, err := insertIn(ctx, f, topicCredentials, c, pickCredentials)
	if err != nil {
		return "", origin, err
	}
	return c.ID, origin, nil
}

func (f *Facade) DeleteCredential(ctx context.Context, ownerID, id string) (Origin, error) {
	return deleteIn(ctx, f, ownerID, id, topicCredentials, pickCredentials)
}

func (f *Facade) SubscribeCredentials(ctx context.Context, ownerID string, fn func([]models.Credential)) (func(), error) {
	return subscribeIn(ctx, f, ownerID, topicCredentials, pickCredentials, fn)
}

// --- Workspace tasks ---

func (f *Facade) ListTasks(ctx context.Context, ownerID string) (Result[models.WorkspaceTask], error) {
	return listIn(ctx, f, ownerID, topicTasks, pickTasks)
}

// CreateTask defaults an empty status to PENDING before persisting.
func (f *Facade) CreateTask(ctx context.Context, ownerID string, t models.WorkspaceTask) (string, Origin, error) {
	if err := t.Validate(); err != nil {
		return "", OriginNone, err
	}
	t.ID = f.opts.NewID()
	t.UserID = ownerID
	t.CreatedAt = f.nowMillis()
	if t.Status == "" {
		t.Status = models.TaskPending
	}

	origin, err := insertIn(ctx, f, topicTasks, t, pickTasks)
	if err != nil {
		return "", origin, err
	}
	return t.ID, origin, nil
}

func (f *Facade) DeleteTask(ctx context.Context, ownerID, id string) (Origin, error) {
	return deleteIn(ctx, f, ownerID, id, topicTasks, pickTasks)
}

func (f *Facade) SubscribeTasks(ctx context.Context, ownerID string, fn func([]models.WorkspaceTask)) (func(), error) {
	return subscribeIn(ctx, f, ownerID, topicTasks, pickTasks, fn)
}

// ReplaceTask swaps a task for its updated copy: delete by id, insert the
// new version. Status changes go through here after workspace.ApplyStatus.
// The record keeps its identifier, so subscribers see one change event pair.
func (f *Facade) ReplaceTask(ctx context.Context, ownerID string, t models.WorkspaceTask) (Origin, error) {
	if err := t.Validate(); err != nil {
		return OriginNone, err
	}
	if t.ID == "" || t.UserID != ownerID {
		return OriginNone, fmt.Errorf("%w: task is not owned by %s", models.ErrValidation, ownerID)
	}
	origin, err := deleteIn(ctx, f, ownerID, t.ID, topicTasks, pickTasks)
	if err != nil {
		return origin, err
	}
	return insertIn(ctx, f, topicTasks, t, pickTasks)
}
