package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

// RoleService implements role CRUD plus permission attachment by name.
type RoleService struct {
	roles  ports.RoleRepository
	perms  ports.PermissionRepository
	logger zerolog.Logger
}

func NewRoleService(roles ports.RoleRepository, perms ports.PermissionRepository, logger zerolog.Logger) *RoleService {
	return &RoleService{roles: roles, perms: perms, logger: logger}
}

func (s *RoleService) Create(ctx context.Context, in ports.CreateRoleInput) (*domain.Role, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}

	perms, err := s.resolvePermissions(ctx, in.Permissions)
	if err != nil {
		return nil, err
	}

	role := &domain.Role{
		Name:        in.Name,
		Description: in.Description,
		Permissions: perms,
	}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("role_id", role.ID).Str("name", role.Name).Msg("role created")
	return s.roles.GetByID(ctx, role.ID)
}

func (s *RoleService) List(ctx context.Context, skip, limit int) ([]domain.Role, error) {
	return s.roles.List(ctx, skip, limit)
}

func (s *RoleService) Get(ctx context.Context, id uint) (*domain.Role, error) {
	return s.roles.GetByID(ctx, id)
}

func (s *RoleService) Update(ctx context.Context, id uint, in ports.UpdateRoleInput) (*domain.Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Resolve permission names before any write; an unknown name must
	// reject the update as a whole.
	var perms *[]domain.Permission
	if in.Permissions != nil {
		resolved, err := s.resolvePermissions(ctx, *in.Permissions)
		if err != nil {
			return nil, err
		}
		perms = &resolved
	}

	if in.Name != nil {
		role.Name = *in.Name
	}
	if in.Description != nil {
		role.Description = *in.Description
	}

	if err := s.roles.Update(ctx, role, perms); err != nil {
		return nil, err
	}

	return s.roles.GetByID(ctx, id)
}

func (s *RoleService) Delete(ctx context.Context, id uint) error {
	if err := s.roles.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("role_id", id).Msg("role deleted")
	return nil
}

func (s *RoleService) resolvePermissions(ctx context.Context, names []string) ([]domain.Permission, error) {
	if len(names) == 0 {
		return nil, nil
	}
	perms, err := s.perms.GetByNames(ctx, names)
	if err != nil {
		return nil, err
	}
	found := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		found[p.Name] = struct{}{}
	}
	for _, name := range names {
		if _, ok := found[name]; !ok {
			return nil, fmt.Errorf("%w: unknown permission %q", domain.ErrValidation, name)
		}
	}
	return perms, nil
}
