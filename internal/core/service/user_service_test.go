package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wisensor/wisensor-api/internal/core/auth"
	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

type memUserRepo struct {
	nextID uint
	users  map[uint]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: map[uint]*domain.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return domain.ErrUserExists
		}
	}
	user.ID = r.nextID
	r.nextID++
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) List(_ context.Context, skip, limit int) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for id := uint(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User, roles *[]domain.Role) error {
	stored, ok := r.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	clone.Roles = stored.Roles
	if roles != nil {
		clone.Roles = *roles
	}
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type memRoleRepo struct {
	roles []domain.Role
}

func (r *memRoleRepo) Create(_ context.Context, _ *domain.Role) error      { return nil }
func (r *memRoleRepo) List(_ context.Context, _, _ int) ([]domain.Role, error) {
	return r.roles, nil
}
func (r *memRoleRepo) GetByID(_ context.Context, _ uint) (*domain.Role, error) {
	return nil, domain.ErrRoleNotFound
}
func (r *memRoleRepo) GetByNames(_ context.Context, names []string) ([]domain.Role, error) {
	var out []domain.Role
	for _, role := range r.roles {
		for _, name := range names {
			if role.Name == name {
				out = append(out, role)
			}
		}
	}
	return out, nil
}
func (r *memRoleRepo) Update(_ context.Context, _ *domain.Role, _ *[]domain.Permission) error {
	return nil
}
func (r *memRoleRepo) Delete(_ context.Context, _ uint) error { return nil }

func newUserServiceForTest() (*UserService, *memUserRepo) {
	users := newMemUserRepo()
	roles := &memRoleRepo{roles: []domain.Role{
		{ID: 1, Name: "admin"},
		{ID: 2, Name: "user"},
	}}
	return NewUserService(users, roles, zerolog.Nop()), users
}

func TestUserService_Create(t *testing.T) {
	svc, _ := newUserServiceForTest()

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pass123",
		Roles:    []string{"user"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if !auth.CheckPassword("pass123", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if !user.IsActive {
		t.Fatalf("new users must be active")
	}
	if len(user.Roles) != 1 || user.Roles[0].Name != "user" {
		t.Fatalf("unexpected roles: %+v", user.Roles)
	}
}

func TestUserService_Create_MissingFields(t *testing.T) {
	svc, _ := newUserServiceForTest()

	_, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "alice"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	svc, _ := newUserServiceForTest()

	_, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pass123",
		Roles:    []string{"superuser"},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown role, got %v", err)
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	svc, _ := newUserServiceForTest()

	in := ports.CreateUserInput{Username: "bob", Email: "bob@example.com", Password: "pass123"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Update_PartialMerge(t *testing.T) {
	svc, _ := newUserServiceForTest()

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "original",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newEmail := "carol@wisensor.com"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Email: &newEmail})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Email != newEmail {
		t.Fatalf("expected email %q, got %q", newEmail, updated.Email)
	}
	if updated.Username != "carol" {
		t.Fatalf("unset fields must be preserved, got username %q", updated.Username)
	}
	if !auth.CheckPassword("original", updated.PasswordHash) {
		t.Fatalf("password must be unchanged when not provided")
	}
}

func TestUserService_Update_Password(t *testing.T) {
	svc, _ := newUserServiceForTest()

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "original",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newPassword := "rotated"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Password: &newPassword})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !auth.CheckPassword("rotated", updated.PasswordHash) {
		t.Fatalf("expected new password to verify")
	}
	if auth.CheckPassword("original", updated.PasswordHash) {
		t.Fatalf("old password must stop working")
	}
}

func TestUserService_Update_ReplaceRoles(t *testing.T) {
	svc, _ := newUserServiceForTest()

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "erin",
		Email:    "erin@example.com",
		Password: "pass123",
		Roles:    []string{"user"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	roles := []string{"admin"}
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserInput{Roles: &roles})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(updated.Roles) != 1 || updated.Roles[0].Name != "admin" {
		t.Fatalf("expected roles replaced with admin, got %+v", updated.Roles)
	}
}

func TestUserService_Update_UnknownRoleLeavesUserUntouched(t *testing.T) {
	svc, repo := newUserServiceForTest()

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "grace",
		Email:    "grace@example.com",
		Password: "pass123",
		Roles:    []string{"user"},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newEmail := "changed@example.com"
	badRoles := []string{"no-such-role"}
	_, err = svc.Update(context.Background(), created.ID, ports.UpdateUserInput{
		Email: &newEmail,
		Roles: &badRoles,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	// The rejected update must not leave the email change behind.
	stored, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if stored.Email != "grace@example.com" {
		t.Fatalf("expected email unchanged, got %q", stored.Email)
	}
	if len(stored.Roles) != 1 || stored.Roles[0].Name != "user" {
		t.Fatalf("expected roles unchanged, got %+v", stored.Roles)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc, _ := newUserServiceForTest()

	name := "ghost"
	if _, err := svc.Update(context.Background(), 99, ports.UpdateUserInput{Username: &name}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	svc, repo := newUserServiceForTest()

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "frank",
		Email:    "frank@example.com",
		Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected user gone, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
