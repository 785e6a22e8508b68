package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/wisensor/wisensor-api/internal/core/auth"
	"github.com/wisensor/wisensor-api/internal/core/domain"
)

// seedPermissions is the canonical permission catalog.
var seedPermissions = []domain.Permission{
	{Name: domain.PermManageConfig, Description: "Manage system configuration"},
	{Name: domain.PermViewUsers, Description: "View users"},
	{Name: domain.PermCreateUsers, Description: "Create users"},
	{Name: domain.PermEditUsers, Description: "Edit users"},
	{Name: domain.PermDeleteUsers, Description: "Delete users"},
	{Name: domain.PermViewRoles, Description: "View roles"},
	{Name: domain.PermCreateRoles, Description: "Create roles"},
	{Name: domain.PermEditRoles, Description: "Edit roles"},
	{Name: domain.PermDeleteRoles, Description: "Delete roles"},
	{Name: domain.PermCreatePermissions, Description: "Create permissions"},
	{Name: domain.PermEditPermissions, Description: "Edit permissions"},
	{Name: domain.PermDeletePermissions, Description: "Delete permissions"},
	{Name: domain.PermViewProjects, Description: "View projects"},
	{Name: domain.PermCreateProjects, Description: "Create projects"},
	{Name: domain.PermEditProjects, Description: "Edit projects"},
	{Name: domain.PermDeleteProjects, Description: "Delete projects"},
	{Name: domain.PermAssignUsers, Description: "Assign users to projects"},
}

var seedRoles = []struct {
	name        string
	description string
	permissions []string // nil means all
}{
	{"admin", "System administrator", nil},
	{"user", "Standard user", []string{
		domain.PermViewProjects, domain.PermCreateProjects, domain.PermEditProjects,
	}},
	{"manager", "Project manager", []string{
		domain.PermViewProjects, domain.PermCreateProjects, domain.PermEditProjects,
		domain.PermDeleteProjects, domain.PermAssignUsers, domain.PermViewUsers,
		domain.PermViewRoles,
	}},
}

var seedUsers = []struct {
	username string
	email    string
	password string
	roles    []string
}{
	{"admin", "admin@wisensor.com", "admin123", []string{"admin"}},
	{"user1", "user1@wisensor.com", "user123", []string{"user"}},
	{"manager1", "manager1@wisensor.com", "manager123", []string{"manager"}},
}

var seedProjects = []struct {
	name        string
	description string
}{
	{"Proyecto A", "Primer proyecto de ejemplo"},
	{"Proyecto B", "Segundo proyecto de ejemplo"},
	{"Proyecto C", "Tercer proyecto de ejemplo"},
}

var seedAssignments = []struct {
	userEmail     string
	projectName   string
	roleInProject string
}{
	{"user1@wisensor.com", "Proyecto A", "Desarrollador"},
	{"manager1@wisensor.com", "Proyecto A", "Gerente"},
	{"user1@wisensor.com", "Proyecto B", "Tester"},
	{"manager1@wisensor.com", "Proyecto B", "Gerente"},
}

// Seed inserts the permission catalog, the default roles, the demo user
// accounts, and the sample projects with their member assignments. Every
// step is insert-if-absent, so repeated startups neither fail nor duplicate
// rows, and operator edits to existing rows survive.
func Seed(ctx context.Context, db *gorm.DB, logger zerolog.Logger) error {
	tx := db.WithContext(ctx)

	for _, p := range seedPermissions {
		perm := domain.Permission{Name: p.Name}
		err := tx.Where(&perm).
			Attrs(domain.Permission{Description: p.Description}).
			FirstOrCreate(&perm).Error
		if err != nil {
			return fmt.Errorf("seed permission %q: %w", p.Name, err)
		}
	}

	for _, r := range seedRoles {
		role := domain.Role{Name: r.name}
		res := tx.Where(&role).
			Attrs(domain.Role{Description: r.description}).
			FirstOrCreate(&role)
		if res.Error != nil {
			return fmt.Errorf("seed role %q: %w", r.name, res.Error)
		}
		if res.RowsAffected == 0 {
			continue // existing role: leave its permission set alone
		}

		perms, err := permissionsByName(tx, r.permissions)
		if err != nil {
			return fmt.Errorf("seed role %q: %w", r.name, err)
		}
		if err := tx.Model(&role).Association("Permissions").Replace(&perms); err != nil {
			return fmt.Errorf("seed role %q permissions: %w", r.name, err)
		}
		logger.Info().Str("role", r.name).Int("permissions", len(perms)).Msg("seeded role")
	}

	for _, u := range seedUsers {
		var existing domain.User
		err := tx.Where("email = ?", u.email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("seed user %q: %w", u.email, err)
		}

		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.email, err)
		}

		var roles []domain.Role
		if err := tx.Where("name IN ?", u.roles).Find(&roles).Error; err != nil {
			return fmt.Errorf("seed user %q roles: %w", u.email, err)
		}

		user := domain.User{
			Username:     u.username,
			Email:        u.email,
			PasswordHash: hash,
			IsActive:     true,
			Roles:        roles,
		}
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("seed user %q: %w", u.email, err)
		}
		logger.Info().Str("email", u.email).Msg("seeded user")
	}

	for _, p := range seedProjects {
		project := domain.Project{Name: p.name}
		err := tx.Where(&project).
			Attrs(domain.Project{Description: p.description, IsActive: true}).
			FirstOrCreate(&project).Error
		if err != nil {
			return fmt.Errorf("seed project %q: %w", p.name, err)
		}
	}

	for _, a := range seedAssignments {
		var user domain.User
		if err := tx.Where("email = ?", a.userEmail).First(&user).Error; err != nil {
			return fmt.Errorf("seed assignment %q/%q: %w", a.userEmail, a.projectName, err)
		}
		var project domain.Project
		if err := tx.Where("name = ?", a.projectName).First(&project).Error; err != nil {
			return fmt.Errorf("seed assignment %q/%q: %w", a.userEmail, a.projectName, err)
		}

		assignment := domain.UserProject{UserID: user.ID, ProjectID: project.ID}
		err := tx.Where(&assignment).
			Attrs(domain.UserProject{RoleInProject: a.roleInProject}).
			FirstOrCreate(&assignment).Error
		if err != nil {
			return fmt.Errorf("seed assignment %q/%q: %w", a.userEmail, a.projectName, err)
		}
	}

	return nil
}

func permissionsByName(tx *gorm.DB, names []string) ([]domain.Permission, error) {
	var perms []domain.Permission
	q := tx
	if names != nil {
		q = q.Where("name IN ?", names)
	}
	if err := q.Find(&perms).Error; err != nil {
		return nil, err
	}
	return perms, nil
}
