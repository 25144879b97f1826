package store

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/mindmate/internal/client/store/migrations"
	"github.com/dmitrijs2005/mindmate/internal/filex"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded kv schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite database at dsn, migrates it
// and returns the store together with the handle the caller must close.
func Open(ctx context.Context, dsn string) (*SQLiteStore, *sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, nil, err
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, err
	}
	// One writer, and ":memory:" must not fan out into separate databases.
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}

	return NewSQLiteStore(db), db, nil
}
