package postgres

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
	"github.com/wisensor/wisensor-api/internal/core/service"
)

// Updates that mix column changes with association changes must commit or
// roll back as one unit, exercised here through the services over real
// repositories.
func TestUserUpdate_UnknownRoleRollsBackColumns(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	users := NewUserRepository(db)
	roles := NewRoleRepository(db)
	svc := service.NewUserService(users, roles, zerolog.Nop())

	seedRole(t, db, "user")
	created, err := svc.Create(ctx, ports.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pass123",
		Roles:    []string{"user"},
	})
	require.NoError(t, err)

	newEmail := "changed@example.com"
	badRoles := []string{"no-such-role"}
	_, err = svc.Update(ctx, created.ID, ports.UpdateUserInput{
		Email: &newEmail,
		Roles: &badRoles,
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	stored, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", stored.Email)
	require.Len(t, stored.Roles, 1)
	require.Equal(t, "user", stored.Roles[0].Name)
}

func TestRoleUpdate_UnknownPermissionRollsBackColumns(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	roles := NewRoleRepository(db)
	perms := NewPermissionRepository(db)
	svc := service.NewRoleService(roles, perms, zerolog.Nop())

	require.NoError(t, perms.Create(ctx, &domain.Permission{Name: domain.PermViewUsers}))
	created, err := svc.Create(ctx, ports.CreateRoleInput{
		Name:        "auditor",
		Description: "Read-only access",
		Permissions: []string{domain.PermViewUsers},
	})
	require.NoError(t, err)

	newName := "renamed"
	badPerms := []string{"no-such-permission"}
	_, err = svc.Update(ctx, created.ID, ports.UpdateRoleInput{
		Name:        &newName,
		Permissions: &badPerms,
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	stored, err := roles.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "auditor", stored.Name)
	require.Len(t, stored.Permissions, 1)
}
