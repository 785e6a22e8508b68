package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

// UserProjectService manages user-project assignments. Both sides of an
// assignment must exist before a row is created; the unique (user, project)
// index is the concurrency-safe guard against double assignment.
type UserProjectService struct {
	assignments ports.UserProjectRepository
	users       ports.UserRepository
	projects    ports.ProjectRepository
	logger      zerolog.Logger
}

func NewUserProjectService(
	assignments ports.UserProjectRepository,
	users ports.UserRepository,
	projects ports.ProjectRepository,
	logger zerolog.Logger,
) *UserProjectService {
	return &UserProjectService{
		assignments: assignments,
		users:       users,
		projects:    projects,
		logger:      logger,
	}
}

func (s *UserProjectService) Create(ctx context.Context, in ports.CreateUserProjectInput) (*domain.UserProject, error) {
	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}
	if _, err := s.projects.GetByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}

	up := &domain.UserProject{
		UserID:        in.UserID,
		ProjectID:     in.ProjectID,
		RoleInProject: in.RoleInProject,
	}
	if err := s.assignments.Create(ctx, up); err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("user_id", up.UserID).
		Uint("project_id", up.ProjectID).
		Str("role_in_project", up.RoleInProject).
		Msg("user assigned to project")
	return up, nil
}

func (s *UserProjectService) List(ctx context.Context, skip, limit int) ([]domain.UserProject, error) {
	return s.assignments.List(ctx, skip, limit)
}

func (s *UserProjectService) Get(ctx context.Context, id uint) (*domain.UserProject, error) {
	return s.assignments.GetByID(ctx, id)
}

func (s *UserProjectService) Update(ctx context.Context, id uint, in ports.UpdateUserProjectInput) (*domain.UserProject, error) {
	up, err := s.assignments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.RoleInProject != nil {
		up.RoleInProject = *in.RoleInProject
	}

	if err := s.assignments.Update(ctx, up); err != nil {
		return nil, err
	}
	return up, nil
}

func (s *UserProjectService) Delete(ctx context.Context, id uint) error {
	if err := s.assignments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("assignment_id", id).Msg("assignment removed")
	return nil
}
