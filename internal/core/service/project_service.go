package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

type ProjectService struct {
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, in ports.CreateProjectInput) (*domain.Project, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	project := &domain.Project{
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("project_id", project.ID).Str("name", project.Name).Msg("project created")
	return project, nil
}

func (s *ProjectService) List(ctx context.Context, skip, limit int) ([]domain.Project, error) {
	return s.projects.List(ctx, skip, limit)
}

func (s *ProjectService) Get(ctx context.Context, id uint) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *ProjectService) Update(ctx context.Context, id uint, in ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		project.Name = *in.Name
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.IsActive != nil {
		project.IsActive = *in.IsActive
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("project_id", id).Msg("project deleted")
	return nil
}
