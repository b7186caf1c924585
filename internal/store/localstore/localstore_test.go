package localstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/editiq/editiq/internal/kv"
	"github.com/editiq/editiq/internal/models"
)

func TestListFiltersByOwnerAndSortsDescending(t *testing.T) {
	ctx := context.Background()
	b := NewBackend(kv.NewMemory())

	require.NoError(t, b.Clients.Insert(ctx, models.Client{ID: "c1", UserID: "u1", Name: "Old", CreatedAt: 100}))
	require.NoError(t, b.Clients.Insert(ctx, models.Client{ID: "c2", UserID: "u2", Name: "Other", CreatedAt: 150}))
	require.NoError(t, b.Clients.Insert(ctx, models.Client{ID: "c3", UserID: "u1", Name: "New", CreatedAt: 200}))

	got, err := b.Clients.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "c3", got[0].ID, "newest first")
	require.Equal(t, "c1", got[1].ID)
}

func TestTransactionsOrderedByDateDescending(t *testing.T) {
	ctx := context.Background()
	b := NewBackend(kv.NewMemory())

	amount := decimal.NewFromInt(10)
	require.NoError(t, b.Transactions.Insert(ctx, models.Transaction{ID: "t1", UserID: "u1", Amount: amount, Type: models.TransactionIncome, Date: "2024-01-05"}))
	require.NoError(t, b.Transactions.Insert(ctx, models.Transaction{ID: "t2", UserID: "u1", Amount: amount, Type: models.TransactionIncome, Date: "2024-03-01"}))
	require.NoError(t, b.Transactions.Insert(ctx, models.Transaction{ID: "t3", UserID: "u1", Amount: amount, Type: models.TransactionIncome, Date: "2024-01-05"}))

	got, err := b.Transactions.List(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"t2", "t1", "t3"}, []string{got[0].ID, got[1].ID, got[2].ID},
		"date descending, insertion order for equal dates")
}

func TestAllUsersShareOneArray(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	b := NewBackend(mem)

	require.NoError(t, b.Credentials.Insert(ctx, models.Credential{ID: "k1", UserID: "u1", PlatformName: "YouTube", LoginName: "a"}))
	require.NoError(t, b.Credentials.Insert(ctx, models.Credential{ID: "k2", UserID: "u2", PlatformName: "Instagram", LoginName: "b"}))

	raw, ok, err := mem.GetItem(KeyCredentials)
	require.NoError(t, err)
	require.True(t, ok)

	var all []models.Credential
	require.NoError(t, json.Unmarshal([]byte(raw), &all))
	require.Len(t, all, 2, "records of every user live in the same array")
}

func TestDeleteRequiresMatchingOwner(t *testing.T) {
	ctx := context.Background()
	b := NewBackend(kv.NewMemory())

	require.NoError(t, b.Clients.Insert(ctx, models.Client{ID: "c1", UserID: "u1", Name: "Acme"}))

	// Wrong owner: record stays.
	require.NoError(t, b.Clients.Delete(ctx, "u2", "c1"))
	got, err := b.Clients.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)

	// Matching owner: record goes.
	require.NoError(t, b.Clients.Delete(ctx, "u1", "c1"))
	got, err = b.Clients.List(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDeleteMissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	b := NewBackend(kv.NewMemory())

	require.NoError(t, b.Tasks.Insert(ctx, models.WorkspaceTask{ID: "w1", UserID: "u1", Title: "Edit", Status: models.TaskPending}))
	require.NoError(t, b.Tasks.Delete(ctx, "u1", "nope"))

	got, err := b.Tasks.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, got, 1, "store length unchanged")
}

func TestEmptyStoreListsNothing(t *testing.T) {
	b := NewBackend(kv.NewMemory())
	got, err := b.Transactions.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Empty(t, got)
}
