package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/taskmgr/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/taskmgr/internal/core/domain"
	"github.com/custodia-labs/taskmgr/internal/core/ports/driven"
	"github.com/custodia-labs/taskmgr/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.TaskStore = (*Store)(nil)

// Store is a SQLite-based task store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the database at path and applies
// pending migrations.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: database path is empty", domain.ErrInvalidInput)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", domain.ErrStoreIO, err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", domain.ErrStoreIO, err)
	}

	s := &Store{
		db:   db,
		path: path,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: running migrations: %v", domain.ErrStoreIO, err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns every task ordered by position.
func (s *Store) Load(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT description, done, due, priority
		FROM tasks
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying tasks: %v", domain.ErrStoreIO, err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating tasks: %v", domain.ErrStoreIO, err)
	}

	logger.Debug("loaded %d tasks from %s", len(tasks), s.path)
	return tasks, nil
}

// scanTask reads one row. Values the domain cannot hold mark the store corrupt.
func scanTask(rows *sql.Rows) (domain.Task, error) {
	var (
		description string
		done        int
		due         sql.NullString
		priority    string
	)
	if err := rows.Scan(&description, &done, &due, &priority); err != nil {
		return domain.Task{}, fmt.Errorf("%w: scanning task: %v", domain.ErrCorruptStore, err)
	}

	p := domain.Priority(priority)
	if !p.IsValid() {
		return domain.Task{}, fmt.Errorf("%w: unknown priority %q", domain.ErrCorruptStore, priority)
	}
	if done != 0 && done != 1 {
		return domain.Task{}, fmt.Errorf("%w: done flag %d", domain.ErrCorruptStore, done)
	}

	task := domain.Task{
		Description: description,
		Done:        done == 1,
		Due:         domain.NoDueDate(),
		Priority:    p,
	}
	if due.Valid {
		task.Due = domain.DueOn(due.String)
	}
	return task, nil
}

// Save replaces the stored collection with tasks in one transaction.
func (s *Store) Save(ctx context.Context, tasks []domain.Task) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", domain.ErrStoreIO, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM tasks"); err != nil {
		return fmt.Errorf("%w: clearing tasks: %v", domain.ErrStoreIO, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (position, description, done, due, priority)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("%w: preparing insert: %v", domain.ErrStoreIO, err)
	}
	defer stmt.Close()

	for i, task := range tasks {
		if _, err = stmt.ExecContext(ctx, i+1, task.Description, boolToInt(task.Done),
			nullDue(task.Due), task.Priority.String()); err != nil {
			return fmt.Errorf("%w: inserting task %d: %v", domain.ErrStoreIO, i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing tasks: %v", domain.ErrStoreIO, err)
	}

	logger.Debug("saved %d tasks to %s", len(tasks), s.path)
	return nil
}

// migrate runs all pending migrations and records each applied version.
func (s *Store) migrate(fsys fs.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_tasks.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := s.applyMigration(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		logger.Debug("applied migration %s", name)
	}

	return nil
}

// applyMigration executes one migration and records its version atomically.
func (s *Store) applyMigration(version int, content string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(content); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// SchemaVersion returns the highest applied migration version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}
	return version, nil
}

// ==================== Helpers ====================

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// nullDue converts an unset due date to SQL NULL.
func nullDue(d domain.DueDate) sql.NullString {
	value, ok := d.Get()
	return sql.NullString{String: value, Valid: ok}
}
