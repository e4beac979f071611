package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mdupont/taskboard/internal/domain"
)

// TaskService handles task CRUD under owned projects.
type TaskService struct {
	tasks    domain.TaskRepository
	projects domain.ProjectRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(tasks domain.TaskRepository, projects domain.ProjectRepository) *TaskService {
	return &TaskService{tasks: tasks, projects: projects}
}

// TaskInput carries fields for creating a task. Completed, Priority, and
// DueDate are optional; defaults apply when absent.
type TaskInput struct {
	Title       string
	Description string
	Completed   *bool
	Priority    *string
	DueDate     *time.Time
}

// TaskUpdate carries optional changes to a task. Nil fields are left
// untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	DueDate     *time.Time
}

// Create creates a task under a project owned by userID. The project lookup
// is owner-scoped, so a project belonging to someone else is reported as not
// found.
func (s *TaskService) Create(ctx context.Context, userID, projectID string, in TaskInput) (*domain.Task, error) {
	project, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	if in.Title == "" {
		return nil, domain.ValidationErrors{"Title can't be blank"}
	}

	task := domain.NewTask(project.ID, userID, in.Title, in.Description)
	if in.Completed != nil {
		task.Completed = *in.Completed
	}
	if in.Priority != nil && *in.Priority != "" {
		task.Priority = *in.Priority
	}
	task.DueDate = in.DueDate

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// GetByID returns the task if it exists and belongs to userID.
func (s *TaskService) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, userID, id)
}

// ListByProject returns all tasks of a project owned by userID.
func (s *TaskService) ListByProject(ctx context.Context, userID, projectID string) ([]domain.Task, error) {
	project, err := s.projects.GetByID(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, project.ID)
}

// Update applies the given changes to an owned task.
func (s *TaskService) Update(ctx context.Context, userID, id string, upd TaskUpdate) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		if *upd.Title == "" {
			return nil, domain.ValidationErrors{"Title can't be blank"}
		}
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Completed != nil {
		task.Completed = *upd.Completed
	}
	if upd.Priority != nil && *upd.Priority != "" {
		task.Priority = *upd.Priority
	}
	if upd.DueDate != nil {
		task.DueDate = upd.DueDate
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes an owned task.
func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	return s.tasks.Delete(ctx, userID, id)
}

// Toggle flips the completed flag of an owned task and returns it.
func (s *TaskService) Toggle(ctx context.Context, userID, id string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}
	return task, nil
}
