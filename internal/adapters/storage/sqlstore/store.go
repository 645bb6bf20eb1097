// Package sqlstore implements the quote repository on database/sql.
// SQLite (modernc.org/sqlite) is the default backend; Postgres is reached
// through the pgx stdlib driver. Every mutation is a single UPDATE with
// relative arithmetic and RETURNING, so concurrent writers never lose updates.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	_ "modernc.org/sqlite"             // registers the "sqlite" driver
)

// Options configures Open.
type Options struct {
	Driver Driver

	// DSN is a file path or file: URI for SQLite and a connection URL for Postgres.
	DSN string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// QueryTimeout bounds each statement. Zero leaves only the caller's deadline.
	QueryTimeout time.Duration
}

// Store is a SQL backed ports.QuoteRepository.
type Store struct {
	db           *sql.DB
	dialect      dialect
	queryTimeout time.Duration
}

// Open connects, verifies the connection and migrates the schema.
func Open(ctx context.Context, opts Options) (*Store, error) {
	d, ok := dialectFor(opts.Driver)
	if !ok {
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", opts.Driver)
	}

	dsn, err := dataSourceName(d.driver, opts.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(d.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: opening %s: %w", d.driver, err)
	}

	configurePool(db, d.driver, opts)

	s := &Store{db: db, dialect: d, queryTimeout: opts.QueryTimeout}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore: connecting to %s: %w", d.driver, err)
	}

	if err := s.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// New wraps an already opened database. The schema is not migrated.
func New(db *sql.DB, driver Driver) (*Store, error) {
	if db == nil {
		return nil, errors.New("sqlstore: nil db")
	}

	d, ok := dialectFor(driver)
	if !ok {
		return nil, fmt.Errorf("sqlstore: unsupported driver %q", driver)
	}

	return &Store{db: db, dialect: d}, nil
}

// Migrate creates the quotes table and its indexes when missing.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range append(append([]string{}, s.dialect.schema...), commonIndexes...) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlstore: migrating schema: %w", err)
		}
	}

	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "database"
}

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Driver reports the backend in use.
func (s *Store) Driver() Driver {
	return s.dialect.driver
}

func configurePool(db *sql.DB, driver Driver, opts Options) {
	if driver == DriverSQLite {
		// SQLite has a single writer, and in-memory databases live per connection.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)

		return
	}

	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}

	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}

	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
}

// dataSourceName turns a plain SQLite path into a URI with WAL and a busy
// timeout, creating the parent directory. Other DSNs pass through.
func dataSourceName(driver Driver, dsn string) (string, error) {
	if dsn == "" {
		return "", fmt.Errorf("sqlstore: empty DSN for %s", driver)
	}

	if driver != DriverSQLite || strings.HasPrefix(dsn, "file:") {
		return dsn, nil
	}

	if dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return "", fmt.Errorf("sqlstore: creating database directory: %w", err)
		}
	}

	return fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_time_format=sqlite", dsn), nil
}

// withTimeout applies the per-statement timeout when configured.
func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, s.queryTimeout)
}
