package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/kukulab/kuku/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("init sequence counter: %w", err)
	}

	return &Store{db: db, client: client, seq: seq}, nil
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

// isNotFound reports whether err is ent's not-found error.
func isNotFound(err error) bool {
	return ent.IsNotFound(err)
}

// applyPragmas configures SQLite for optimal single-user performance.
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

// DefaultDBPath resolves the database file path in priority order:
// 1. KUKU_DB environment variable
// 2. $XDG_DATA_HOME/kuku/kuku.db
// 3. ~/.local/share/kuku/kuku.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("KUKU_DB"); p != "" {
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

	p := filepath.Join(dataHome, "kuku", "kuku.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

// Wipe deletes all stored progress, messages, and settings, and resets
// the global sequence counter. Used by the reset command.
func (s *Store) Wipe(ctx context.Context) error {
	c := s.client
	steps := []struct {
		name string
		del  func(context.Context) (int, error)
	}{
		{"answer events", c.AnswerEvent.Delete().Exec},
		{"point events", c.PointEvent.Delete().Exec},
		{"point state", c.PointState.Delete().Exec},
		{"level state", c.LevelState.Delete().Exec},
		{"table stats", c.TableStat.Delete().Exec},
		{"difficult questions", c.DifficultQuestion.Delete().Exec},
		{"daily challenges", c.DailyChallenge.Delete().Exec},
		{"badges", c.Badge.Delete().Exec},
		{"achievements", c.Achievement.Delete().Exec},
		{"messages", c.Message.Delete().Exec},
		{"llm events", c.LLMEvent.Delete().Exec},
		{"settings", c.Setting.Delete().Exec},
	}
	for _, step := range steps {
		if _, err := step.del(ctx); err != nil {
			return fmt.Errorf("wipe %s: %w", step.name, err)
		}
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE global_sequence SET next_val = 1 WHERE id = 1`); err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}
	return nil
}
