package ports

import (
	"context"

	"github.com/wisensor/wisensor-api/internal/core/domain"
)

// UserRepository persists users and their role associations. Read methods
// return users with roles and role permissions fully materialized; there is
// no lazy loading anywhere in the system.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	List(ctx context.Context, skip, limit int) ([]domain.User, error)
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update persists the user's columns and, when roles is non-nil,
	// replaces the role associations in the same transaction. Either the
	// whole mutation commits or none of it does.
	Update(ctx context.Context, user *domain.User, roles *[]domain.Role) error
	Delete(ctx context.Context, id uint) error
}

// RoleRepository persists roles and their permission associations.
type RoleRepository interface {
	Create(ctx context.Context, role *domain.Role) error
	List(ctx context.Context, skip, limit int) ([]domain.Role, error)
	GetByID(ctx context.Context, id uint) (*domain.Role, error)
	GetByNames(ctx context.Context, names []string) ([]domain.Role, error)

	// Update persists the role's columns and, when perms is non-nil,
	// replaces the permission associations in the same transaction.
	Update(ctx context.Context, role *domain.Role, perms *[]domain.Permission) error
	Delete(ctx context.Context, id uint) error
}

type PermissionRepository interface {
	Create(ctx context.Context, perm *domain.Permission) error
	List(ctx context.Context, skip, limit int) ([]domain.Permission, error)
	GetByID(ctx context.Context, id uint) (*domain.Permission, error)
	GetByNames(ctx context.Context, names []string) ([]domain.Permission, error)
	Update(ctx context.Context, perm *domain.Permission) error
	Delete(ctx context.Context, id uint) error
}

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	List(ctx context.Context, skip, limit int) ([]domain.Project, error)
	GetByID(ctx context.Context, id uint) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uint) error
}

type CenterRepository interface {
	Create(ctx context.Context, center *domain.Center) error
	List(ctx context.Context, skip, limit int) ([]domain.Center, error)
	GetByID(ctx context.Context, id uint) (*domain.Center, error)
	Update(ctx context.Context, center *domain.Center) error
	Delete(ctx context.Context, id uint) error
}

// UserProjectRepository persists user-project assignments.
type UserProjectRepository interface {
	Create(ctx context.Context, up *domain.UserProject) error
	List(ctx context.Context, skip, limit int) ([]domain.UserProject, error)
	GetByID(ctx context.Context, id uint) (*domain.UserProject, error)
	Update(ctx context.Context, up *domain.UserProject) error
	Delete(ctx context.Context, id uint) error
}
