package domain

import (
	"context"
	"time"
)

// Project is a container for tasks, owned by exactly one user.
type Project struct {
	ID          string
	UserID      string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectRepository defines persistence operations for projects. Reads and
// writes that take a userID are owner-scoped: a project that exists but
// belongs to someone else behaves exactly like one that does not exist.
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, userID, id string) (*Project, error)
	ListByUser(ctx context.Context, userID string) ([]Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, userID, id string) error
}
