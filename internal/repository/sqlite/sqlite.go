package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mdupont/taskboard/internal/domain"
	"github.com/mdupont/taskboard/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database and exposes its repositories.
type DB struct {
	sqlDB    *sql.DB
	users    *UserRepository
	projects *ProjectRepository
	tasks    *TaskRepository
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign key enforcement.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL for better concurrent read performance.
	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Foreign keys make ownership cascades real at the storage layer.
	if _, err := sqlDB.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY under concurrent requests.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{sqlDB: sqlDB}
	db.users = &UserRepository{db: sqlDB}
	db.projects = &ProjectRepository{db: sqlDB}
	db.tasks = &TaskRepository{db: sqlDB}
	return db, nil
}

// Migrate applies all pending schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.sqlDB)
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.sqlDB.Close()
}

// Users returns the user repository.
func (d *DB) Users() domain.UserRepository { return d.users }

// Projects returns the project repository.
func (d *DB) Projects() domain.ProjectRepository { return d.projects }

// Tasks returns the task repository.
func (d *DB) Tasks() domain.TaskRepository { return d.tasks }
