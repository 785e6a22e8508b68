package domain

import "time"

// Canonical permission names seeded at startup and referenced by route guards.
const (
	PermManageConfig      = "manage_config"
	PermViewUsers         = "view_users"
	PermCreateUsers       = "create_users"
	PermEditUsers         = "edit_users"
	PermDeleteUsers       = "delete_users"
	PermViewRoles         = "view_roles"
	PermCreateRoles       = "create_roles"
	PermEditRoles         = "edit_roles"
	PermDeleteRoles       = "delete_roles"
	PermCreatePermissions = "create_permissions"
	PermEditPermissions   = "edit_permissions"
	PermDeletePermissions = "delete_permissions"
	PermViewProjects      = "view_projects"
	PermCreateProjects    = "create_projects"
	PermEditProjects      = "edit_projects"
	PermDeleteProjects    = "delete_projects"
	PermAssignUsers       = "assign_users"
)

// Permission is an atomic capability granted to roles.
type Permission struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Description string    `json:"description" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
