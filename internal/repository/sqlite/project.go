package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mdupont/taskboard/internal/domain"
)

// ProjectRepository implements domain.ProjectRepository using SQLite.
// Lookups are scoped by owner in SQL, so a project owned by another user is
// indistinguishable from one that does not exist.
type ProjectRepository struct {
	db *sql.DB
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (id, user_id, name, description, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, project.UserID, project.Name, project.Description, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}

	project.ID = id
	project.CreatedAt = now
	project.UpdatedAt = now
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, userID, id string) (*domain.Project, error) {
	project := &domain.Project{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, description, created_at, updated_at
		 FROM projects WHERE id = ? AND user_id = ?`, id, userID,
	).Scan(&project.ID, &project.UserID, &project.Name, &project.Description,
		&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query project by id: %w", err)
	}
	return project, nil
}

func (r *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, description, created_at, updated_at
		 FROM projects WHERE user_id = ? ORDER BY created_at, id`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query projects by user: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, description = ?, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		project.Name, project.Description, now, project.ID, project.UserID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	project.UpdatedAt = now
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM projects WHERE id = ? AND user_id = ?", id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
