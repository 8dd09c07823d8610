package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/repository/sqlite"
)

var errNoSQLDriver = errors.New("the memory driver does not persist; use postgres or sqlite")

// recordStore is an open Record Store plus the SQL handle goose migrates
type recordStore struct {
	domain.Store

	db      *sql.DB
	dialect database.Dialect
	close   func()
}

func (a *app) openStore(ctx context.Context) (*recordStore, error) {
	switch a.cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.ConnectPostgres(ctx, a.cfg.Postgres)
		if err != nil {
			return nil, err
		}
		db := stdlib.OpenDBFromPool(pool)
		return &recordStore{
			Store:   postgres.NewStore(pool),
			db:      db,
			dialect: database.DialectPostgres,
			close: func() {
				db.Close()
				pool.Close()
			},
		}, nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, a.cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &recordStore{
			Store:   sqlite.NewStore(db),
			db:      db,
			dialect: database.DialectSQLite,
			close:   func() { db.Close() },
		}, nil

	case config.DriverMemory:
		return &recordStore{
			Store: memory.NewStore(memory.DefaultCategories()...),
			close: func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", a.cfg.DBDriver)
	}
}

// migrate runs a goose command, reporting errNoSQLDriver for the memory store
func (s *recordStore) migrate(ctx context.Context, command string) error {
	if s.db == nil {
		return errNoSQLDriver
	}
	return database.Migrate(ctx, s.db, s.dialect, command)
}
