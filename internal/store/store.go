package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent"

	// PostgreSQL through database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open connects to the database named by dsn and runs auto-migration.
// postgres:// and postgresql:// URLs use pgx; anything else is treated as a
// SQLite file path with recommended pragmas applied.
func Open(dsn string) (*Store, error) {
	driverName, dialectName := "sqlite", dialect.SQLite
	if isPostgres(dsn) {
		driverName, dialectName = "pgx", dialect.Postgres
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dialectName == dialect.SQLite {
		// One connection serializes writers from concurrent chapter
		// workers and keeps the per-connection pragmas in effect.
		db.SetMaxOpenConns(1)
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
	}

	drv := entsql.OpenDB(dialectName, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Generations returns the course tree repository.
func (s *Store) Generations() GenerationRepo {
	return &generationRepo{client: s.client}
}

// Artifacts returns the lesson content repository.
func (s *Store) Artifacts() ArtifactRepo {
	return &artifactRepo{client: s.client}
}

// Submissions returns the graded submission repository.
func (s *Store) Submissions() SubmissionRepo {
	return &submissionRepo{client: s.client}
}

// Logs returns the generation audit log repository.
func (s *Store) Logs() LogRepo {
	return &logRepo{client: s.client}
}

// EventRepo returns the LLM request event repository.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client}
}

// applyPragmas configures SQLite for a single-process service.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// withTx runs fn inside a transaction, rolling back on error or panic.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// DefaultDBPath resolves the database location in priority order:
// 1. COURSEGEN_DB environment variable
// 2. $XDG_DATA_HOME/coursegen/coursegen.db
// 3. ~/.local/share/coursegen/coursegen.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("COURSEGEN_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "coursegen", "coursegen.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of a SQLite path if needed.
// Database URLs are left alone.
func EnsureDir(path string) error {
	if isPostgres(path) {
		return nil
	}
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
