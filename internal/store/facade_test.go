package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/editiq/editiq/internal/kv"
	"github.com/editiq/editiq/internal/models"
	"github.com/editiq/editiq/internal/store"
	"github.com/editiq/editiq/internal/store/localstore"
)

const demoOwner = "demo-user-123"

var errRemoteDown = errors.New("remote unavailable")

// failing simulates a remote document store that throws on every call.
type failing[T models.Record] struct{}

func (failing[T]) List(context.Context, string) ([]T, error) { return nil, errRemoteDown }
func (failing[T]) Insert(context.Context, T) error           { return errRemoteDown }
func (failing[T]) Delete(context.Context, string, string) error {
	return errRemoteDown
}

func failingBackend() store.Backend {
	return store.Backend{
		Clients:      failing[models.Client]{},
		Transactions: failing[models.Transaction]{},
		Credentials:  failing[models.Credential]{},
		Tasks:        failing[models.WorkspaceTask]{},
	}
}

func newFacade(t *testing.T, remote store.Backend) *store.Facade {
	t.Helper()
	return store.New(remote, localstore.NewBackend(kv.NewMemory()), store.Options{
		DemoOwnerID: demoOwner,
	})
}

func TestDemoOwnerRoutesToLocalStorage(t *testing.T) {
	ctx := context.Background()
	// Remote is broken; the demo owner must never touch it.
	f := newFacade(t, failingBackend())

	id, origin, err := f.CreateClient(ctx, demoOwner, models.Client{Name: "Acme", Platform: models.PlatformYouTube})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, store.OriginLocal, origin)

	res, err := f.ListClients(ctx, demoOwner)
	require.NoError(t, err)
	require.Equal(t, store.OriginLocal, res.Origin)
	require.Len(t, res.Records, 1)
	require.Equal(t, "Acme", res.Records[0].Name)
	require.Equal(t, demoOwner, res.Records[0].UserID)
}

func TestRemoteOwnerUsesRemoteBackend(t *testing.T) {
	ctx := context.Background()
	remote := localstore.NewBackend(kv.NewMemory())
	f := store.New(remote, localstore.NewBackend(kv.NewMemory()), store.Options{DemoOwnerID: demoOwner})

	_, origin, err := f.CreateCredential(ctx, "user-1", models.Credential{PlatformName: "YouTube", LoginName: "studio"})
	require.NoError(t, err)
	require.Equal(t, store.OriginRemote, origin)

	res, err := f.ListCredentials(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, store.OriginRemote, res.Origin)
	require.Len(t, res.Records, 1)
}

func TestRemoteFailureFallsBackToLocal(t *testing.T) {
	ctx := context.Background()
	f := newFacade(t, failingBackend())

	id, origin, err := f.CreateTransaction(ctx, "user-1", models.Transaction{
		Amount: decimal.NewFromInt(500), Type: models.TransactionIncome, Date: "2024-01-05",
	})
	require.NoError(t, err, "remote outage must be invisible to the caller")
	require.Equal(t, store.OriginFallback, origin)
	require.NotEmpty(t, id)

	res, err := f.ListTransactions(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, store.OriginFallback, res.Origin)
	require.Len(t, res.Records, 1)

	origin, err = f.DeleteTransaction(ctx, "user-1", id)
	require.NoError(t, err)
	require.Equal(t, store.OriginFallback, origin)
}

func TestValidationRejectedBeforeStorage(t *testing.T) {
	ctx := context.Background()
	f := newFacade(t, failingBackend())

	_, origin, err := f.CreateClient(ctx, demoOwner, models.Client{})
	require.ErrorIs(t, err, models.ErrValidation)
	require.Equal(t, store.OriginNone, origin)

	res, err := f.ListClients(ctx, demoOwner)
	require.NoError(t, err)
	require.Empty(t, res.Records)

	_, origin, err = f.CreateTransaction(ctx, demoOwner, models.Transaction{
		Amount: decimal.Zero, Type: models.TransactionIncome, Date: "2024-01-05",
	})
	require.ErrorIs(t, err, models.ErrValidation)
	require.Equal(t, store.OriginNone, origin)
}

func TestCreateAssignsIdentityAndTimestamp(t *testing.T) {
	ctx := context.Background()
	before := time.Now().UnixMilli()

	f := newFacade(t, failingBackend())
	id, _, err := f.CreateClient(ctx, demoOwner, models.Client{Name: "Acme"})
	require.NoError(t, err)

	res, err := f.ListClients(ctx, demoOwner)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	require.Equal(t, id, res.Records[0].ID)
	require.GreaterOrEqual(t, res.Records[0].CreatedAt, before)
}

func TestInjectedClockAndIDs(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	f := store.New(failingBackend(), localstore.NewBackend(kv.NewMemory()), store.Options{
		DemoOwnerID: demoOwner,
		Now:         func() time.Time { return fixed },
		NewID:       func() string { n++; return "id-1" },
	})

	id, _, err := f.CreateCredential(ctx, demoOwner, models.Credential{PlatformName: "p", LoginName: "l"})
	require.NoError(t, err)
	require.Equal(t, "id-1", id)

	res, err := f.ListCredentials(ctx, demoOwner)
	require.NoError(t, err)
	require.Equal(t, fixed.UnixMilli(), res.Records[0].CreatedAt)
}

func TestCreateThenDeleteLeavesListUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFacade(t, failingBackend())

	_, _, err := f.CreateClient(ctx, demoOwner, models.Client{Name: "Keeper"})
	require.NoError(t, err)

	beforeRes, err := f.ListClients(ctx, demoOwner)
	require.NoError(t, err)

	id, _, err := f.CreateClient(ctx, demoOwner, models.Client{Name: "Transient"})
	require.NoError(t, err)
	_, err = f.DeleteClient(ctx, demoOwner, id)
	require.NoError(t, err)

	afterRes, err := f.ListClients(ctx, demoOwner)
	require.NoError(t, err)
	require.Equal(t, beforeRes.Records, afterRes.Records)
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := newFacade(t, failingBackend())

	_, _, err := f.CreateCredential(ctx, demoOwner, models.Credential{PlatformName: "p", LoginName: "l"})
	require.NoError(t, err)

	_, err = f.DeleteCredential(ctx, demoOwner, "does-not-exist")
	require.NoError(t, err)

	res, err := f.ListCredentials(ctx, demoOwner)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
}

func TestSubscribeDeliversSnapshotAndPushes(t *testing.T) {
	ctx := context.Background()
	f := newFacade(t, failingBackend())

	_, _, err := f.CreateClient(ctx, demoOwner, models.Client{Name: "First"})
	require.NoError(t, err)

	var deliveries [][]models.Client
	cancel, err := f.SubscribeClients(ctx, demoOwner, func(cs []models.Client) {
		deliveries = append(deliveries, cs)
	})
	require.NoError(t, err)
	require.Len(t, deliveries, 1, "initial snapshot delivered synchronously")
	require.Len(t, deliveries[0], 1)

	_, _, err = f.CreateClient(ctx, demoOwner, models.Client{Name: "Second"})
	require.NoError(t, err)
	require.Len(t, deliveries, 2, "mutation pushes the full current list")
	require.Len(t, deliveries[1], 2)

	cancel()
	_, _, err = f.CreateClient(ctx, demoOwner, models.Client{Name: "Third"})
	require.NoError(t, err)
	require.Len(t, deliveries, 2, "no deliveries after unsubscribe")

	cancel() // idempotent
}

func TestSubscriptionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	f := newFacade(t, failingBackend())

	var a, b int
	cancelA, err := f.SubscribeTasks(ctx, demoOwner, func([]models.WorkspaceTask) { a++ })
	require.NoError(t, err)
	_, err = f.SubscribeTasks(ctx, demoOwner, func([]models.WorkspaceTask) { b++ })
	require.NoError(t, err)

	cancelA()

	_, _, err = f.CreateTask(ctx, demoOwner, models.WorkspaceTask{Title: "Cut trailer"})
	require.NoError(t, err)

	require.Equal(t, 1, a, "cancelled subscriber only saw the snapshot")
	require.Equal(t, 2, b, "remaining subscriber still receives pushes")
}

func TestSubscriptionScopedToOwner(t *testing.T) {
	ctx := context.Background()
	remote := localstore.NewBackend(kv.NewMemory())
	f := store.New(remote, localstore.NewBackend(kv.NewMemory()), store.Options{DemoOwnerID: demoOwner})

	var got int
	_, err := f.SubscribeClients(ctx, "user-a", func([]models.Client) { got++ })
	require.NoError(t, err)

	_, _, err = f.CreateClient(ctx, "user-b", models.Client{Name: "Elsewhere"})
	require.NoError(t, err)
	require.Equal(t, 1, got, "another owner's change does not notify")
}

func TestCreateTaskDefaultsStatus(t *testing.T) {
	ctx := context.Background()
	f := newFacade(t, failingBackend())

	_, _, err := f.CreateTask(ctx, demoOwner, models.WorkspaceTask{Title: "Grade footage"})
	require.NoError(t, err)

	res, err := f.ListTasks(ctx, demoOwner)
	require.NoError(t, err)
	require.Equal(t, models.TaskPending, res.Records[0].Status)
}

func TestReplaceTaskKeepsIdentifier(t *testing.T) {
	ctx := context.Background()
	f := newFacade(t, failingBackend())

	id, _, err := f.CreateTask(ctx, demoOwner, models.WorkspaceTask{Title: "Thumbnail set"})
	require.NoError(t, err)

	res, err := f.ListTasks(ctx, demoOwner)
	require.NoError(t, err)
	task := res.Records[0]
	task.Status = models.TaskWorking
	task.StartedAt = 42

	_, err = f.ReplaceTask(ctx, demoOwner, task)
	require.NoError(t, err)

	res, err = f.ListTasks(ctx, demoOwner)
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	require.Equal(t, id, res.Records[0].ID)
	require.Equal(t, models.TaskWorking, res.Records[0].Status)
	require.Equal(t, int64(42), res.Records[0].StartedAt)
}
