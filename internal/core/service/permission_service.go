package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

type PermissionService struct {
	perms  ports.PermissionRepository
	logger zerolog.Logger
}

func NewPermissionService(perms ports.PermissionRepository, logger zerolog.Logger) *PermissionService {
	return &PermissionService{perms: perms, logger: logger}
}

func (s *PermissionService) Create(ctx context.Context, in ports.CreatePermissionInput) (*domain.Permission, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	perm := &domain.Permission{Name: in.Name, Description: in.Description}
	if err := s.perms.Create(ctx, perm); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("permission_id", perm.ID).Str("name", perm.Name).Msg("permission created")
	return perm, nil
}

func (s *PermissionService) List(ctx context.Context, skip, limit int) ([]domain.Permission, error) {
	return s.perms.List(ctx, skip, limit)
}

func (s *PermissionService) Get(ctx context.Context, id uint) (*domain.Permission, error) {
	return s.perms.GetByID(ctx, id)
}

func (s *PermissionService) Update(ctx context.Context, id uint, in ports.UpdatePermissionInput) (*domain.Permission, error) {
	perm, err := s.perms.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		perm.Name = *in.Name
	}
	if in.Description != nil {
		perm.Description = *in.Description
	}

	if err := s.perms.Update(ctx, perm); err != nil {
		return nil, err
	}
	return perm, nil
}

func (s *PermissionService) Delete(ctx context.Context, id uint) error {
	if err := s.perms.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("permission_id", id).Msg("permission deleted")
	return nil
}
