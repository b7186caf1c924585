// Package cli is the interactive front end: a small REPL over the
// persistence facade, the aggregation engine and the backup service.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/editiq/editiq/internal/config"
	"github.com/editiq/editiq/internal/kv"
	"github.com/editiq/editiq/internal/logging"
	"github.com/editiq/editiq/internal/store"
	"github.com/editiq/editiq/internal/store/localstore"
	"github.com/editiq/editiq/internal/store/postgres"
)

type App struct {
	config *config.Config
	facade *store.Facade
	logger logging.Logger
	db     *sql.DB
	reader *bufio.Reader
	userID string
	now    func() time.Time
}

// NewApp wires the storage stack: file-backed local storage under
// cfg.DataDir and a PostgreSQL remote. An unreachable database is not fatal;
// migrations are attempted once and failures are logged, after which the
// facade's fallback keeps every operation working against local storage.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	fileStore, err := kv.NewFileStore(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}
	local := localstore.NewBackend(fileStore)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := postgres.RunMigrations(ctx, db); err != nil {
		logger.Warn(ctx, "remote store is not ready, operations will fall back to local storage", "error", err)
	}
	remote := postgres.NewBackend(db)

	facade := store.New(remote, local, store.Options{
		DemoOwnerID: c.DemoUserID,
		Logger:      logger,
	})

	return &App{
		config: c,
		facade: facade,
		logger: logger,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		userID: c.UserID,
		now:    time.Now,
	}, nil
}

func (a *App) isDemo() bool {
	return a.userID == a.config.DemoUserID
}

// status is rendered in the REPL prompt.
func (a *App) status() string {
	if a.isDemo() {
		return a.userID + " (local)"
	}
	return a.userID
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	printlnFn("editiq CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}
