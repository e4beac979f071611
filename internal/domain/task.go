package domain

import (
	"context"
	"time"
)

// Task priorities. DefaultPriority applies when a task is created without one.
const (
	PriorityLow     = "low"
	PriorityMedium  = "medium"
	PriorityHigh    = "high"
	DefaultPriority = PriorityMedium
)

// Task is a unit of work inside a project. Both the project and the task
// itself are owned by the same user.
type Task struct {
	ID          string
	ProjectID   string
	UserID      string
	Title       string
	Description string
	Completed   bool
	Priority    string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask constructs a task with defaults applied.
func NewTask(projectID, userID, title, description string) *Task {
	return &Task{
		ProjectID:   projectID,
		UserID:      userID,
		Title:       title,
		Description: description,
		Completed:   false,
		Priority:    DefaultPriority,
	}
}

// TaskRepository defines persistence operations for tasks. Reads and writes
// that take a userID are owner-scoped, as in ProjectRepository.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, userID, id string) (*Task, error)
	ListByProject(ctx context.Context, projectID string) ([]Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, userID, id string) error
}
