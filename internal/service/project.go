package service

import (
	"context"
	"fmt"

	"github.com/mdupont/taskboard/internal/domain"
)

// ProjectService handles project CRUD, always scoped to the owning user.
type ProjectService struct {
	projects domain.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projects domain.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// ProjectUpdate carries optional changes to a project. Nil fields are left
// untouched.
type ProjectUpdate struct {
	Name        *string
	Description *string
}

// Create creates a new project owned by userID.
func (s *ProjectService) Create(ctx context.Context, userID, name, description string) (*domain.Project, error) {
	if name == "" {
		return nil, domain.ValidationErrors{"Name can't be blank"}
	}

	project := &domain.Project{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}

// GetByID returns the project if it exists and belongs to userID.
func (s *ProjectService) GetByID(ctx context.Context, userID, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, userID, id)
}

// ListByUser returns all projects owned by userID.
func (s *ProjectService) ListByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.projects.ListByUser(ctx, userID)
}

// Update applies the given changes to an owned project.
func (s *ProjectService) Update(ctx context.Context, userID, id string, upd ProjectUpdate) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, domain.ValidationErrors{"Name can't be blank"}
		}
		project.Name = *upd.Name
	}
	if upd.Description != nil {
		project.Description = *upd.Description
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// Delete removes an owned project and, via cascade, its tasks.
func (s *ProjectService) Delete(ctx context.Context, userID, id string) error {
	return s.projects.Delete(ctx, userID, id)
}
