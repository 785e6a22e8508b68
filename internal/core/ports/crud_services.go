package ports

import (
	"context"

	"github.com/wisensor/wisensor-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted on registration. Roles are
// attached by name; unknown names are a validation error.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Roles    []string
}

// UpdateUserInput is a partial merge: nil fields are left untouched.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
	IsActive *bool
	Roles    *[]string
}

type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	List(ctx context.Context, skip, limit int) ([]domain.User, error)
	Get(ctx context.Context, id uint) (*domain.User, error)
	Update(ctx context.Context, id uint, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id uint) error
}

type CreateRoleInput struct {
	Name        string
	Description string
	Permissions []string
}

type UpdateRoleInput struct {
	Name        *string
	Description *string
	Permissions *[]string
}

type RoleService interface {
	Create(ctx context.Context, in CreateRoleInput) (*domain.Role, error)
	List(ctx context.Context, skip, limit int) ([]domain.Role, error)
	Get(ctx context.Context, id uint) (*domain.Role, error)
	Update(ctx context.Context, id uint, in UpdateRoleInput) (*domain.Role, error)
	Delete(ctx context.Context, id uint) error
}

type CreatePermissionInput struct {
	Name        string
	Description string
}

type UpdatePermissionInput struct {
	Name        *string
	Description *string
}

type PermissionService interface {
	Create(ctx context.Context, in CreatePermissionInput) (*domain.Permission, error)
	List(ctx context.Context, skip, limit int) ([]domain.Permission, error)
	Get(ctx context.Context, id uint) (*domain.Permission, error)
	Update(ctx context.Context, id uint, in UpdatePermissionInput) (*domain.Permission, error)
	Delete(ctx context.Context, id uint) error
}

type CreateProjectInput struct {
	Name        string
	Description string
	IsActive    bool
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context, skip, limit int) ([]domain.Project, error)
	Get(ctx context.Context, id uint) (*domain.Project, error)
	Update(ctx context.Context, id uint, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id uint) error
}

type CreateCenterInput struct {
	Name      string
	Latitude  float64
	Longitude float64
	Code      string
	Name1     string
	Name2     string
}

type UpdateCenterInput struct {
	Name      *string
	Latitude  *float64
	Longitude *float64
	Code      *string
	Name1     *string
	Name2     *string
}

type CenterService interface {
	Create(ctx context.Context, in CreateCenterInput) (*domain.Center, error)
	List(ctx context.Context, skip, limit int) ([]domain.Center, error)
	Get(ctx context.Context, id uint) (*domain.Center, error)
	Update(ctx context.Context, id uint, in UpdateCenterInput) (*domain.Center, error)
	Delete(ctx context.Context, id uint) error
}

type CreateUserProjectInput struct {
	UserID        uint
	ProjectID     uint
	RoleInProject string
}

type UpdateUserProjectInput struct {
	RoleInProject *string
}

type UserProjectService interface {
	Create(ctx context.Context, in CreateUserProjectInput) (*domain.UserProject, error)
	List(ctx context.Context, skip, limit int) ([]domain.UserProject, error)
	Get(ctx context.Context, id uint) (*domain.UserProject, error)
	Update(ctx context.Context, id uint, in UpdateUserProjectInput) (*domain.UserProject, error)
	Delete(ctx context.Context, id uint) error
}
