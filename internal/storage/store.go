// Package storage persists departments, roles and employees in a SQL database.
//
// Two drivers are supported: SQLite (modernc.org/sqlite, pure Go) and PostgreSQL
// (github.com/lib/pq). Queries are written once with `?` placeholders and rebound
// for the PostgreSQL dialect.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"roster/pkg/logging"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect names a supported SQL driver.
type Dialect string

const (
	// DialectSQLite stores data in a local SQLite file.
	DialectSQLite Dialect = "sqlite"
	// DialectPostgres talks to a PostgreSQL server.
	DialectPostgres Dialect = "postgres"
)

// ParseDialect validates a driver name.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case DialectSQLite, "sqlite3":
		return DialectSQLite, nil
	case DialectPostgres, "postgresql", "pg":
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q (valid: sqlite, postgres)", s)
	}
}

// rebind rewrites `?` placeholders into the dialect's bind syntax.
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Options configures Open.
type Options struct {
	Driver       string
	DSN          string
	MaxOpenConns int
}

// Store is the SQL-backed storage for the roster schema.
type Store struct {
	sqlDB   *sql.DB
	dialect Dialect
}

// Open connects to the database and verifies the connection. It does not apply
// migrations; call Migrate for that.
func Open(ctx context.Context, opts Options) (*Store, error) {
	dialect, err := ParseDialect(opts.Driver)
	if err != nil {
		return nil, err
	}
	dsn := strings.TrimSpace(opts.DSN)
	if dsn == "" {
		return nil, fmt.Errorf("database dsn is required")
	}

	if dialect == DialectSQLite {
		dsn, err = prepareSQLiteDSN(dsn)
		if err != nil {
			return nil, err
		}
	}

	sqlDB, err := sql.Open(string(dialect), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", dialect, err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s db: %w", dialect, err)
	}

	logging.Info("Storage", "Opened %s database", dialect)
	return &Store{sqlDB: sqlDB, dialect: dialect}, nil
}

// prepareSQLiteDSN makes sure the database directory exists and that foreign keys
// are enforced on every pooled connection.
func prepareSQLiteDSN(dsn string) (string, error) {
	path := dsn
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimPrefix(path, "file:")
	if path != "" && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(filepath.Clean(path)), 0o755); err != nil {
			return "", fmt.Errorf("create database directory: %w", err)
		}
	}

	var pragmas []string
	if !strings.Contains(dsn, "foreign_keys") {
		pragmas = append(pragmas, "_pragma=foreign_keys(1)")
	}
	if !strings.Contains(dsn, "busy_timeout") {
		pragmas = append(pragmas, "_pragma=busy_timeout(5000)")
	}
	if len(pragmas) == 0 {
		return dsn, nil
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + strings.Join(pragmas, "&"), nil
}

// Dialect returns the SQL dialect of the store.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

func (s *Store) exec(ctx context.Context, q execer, query string, args ...any) (sql.Result, error) {
	return q.ExecContext(ctx, s.dialect.rebind(query), args...)
}

func (s *Store) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.sqlDB.QueryContext(ctx, s.dialect.rebind(query), args...)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// inTx runs fn inside a transaction and commits when it returns nil.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
