package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

type memProjectRepo struct {
	projects map[uint]*domain.Project
}

func (r *memProjectRepo) Create(_ context.Context, p *domain.Project) error { return nil }
func (r *memProjectRepo) List(_ context.Context, _, _ int) ([]domain.Project, error) {
	return nil, nil
}
func (r *memProjectRepo) GetByID(_ context.Context, id uint) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}
func (r *memProjectRepo) Update(_ context.Context, _ *domain.Project) error { return nil }
func (r *memProjectRepo) Delete(_ context.Context, _ uint) error            { return nil }

type memAssignmentRepo struct {
	nextID uint
	rows   map[uint]*domain.UserProject
}

func newMemAssignmentRepo() *memAssignmentRepo {
	return &memAssignmentRepo{nextID: 1, rows: map[uint]*domain.UserProject{}}
}

func (r *memAssignmentRepo) Create(_ context.Context, up *domain.UserProject) error {
	for _, row := range r.rows {
		if row.UserID == up.UserID && row.ProjectID == up.ProjectID {
			return domain.ErrAssignmentExists
		}
	}
	up.ID = r.nextID
	r.nextID++
	clone := *up
	r.rows[up.ID] = &clone
	return nil
}

func (r *memAssignmentRepo) List(_ context.Context, _, _ int) ([]domain.UserProject, error) {
	out := make([]domain.UserProject, 0, len(r.rows))
	for id := uint(1); id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *memAssignmentRepo) GetByID(_ context.Context, id uint) (*domain.UserProject, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrAssignmentNotFound
	}
	clone := *row
	return &clone, nil
}

func (r *memAssignmentRepo) Update(_ context.Context, up *domain.UserProject) error {
	if _, ok := r.rows[up.ID]; !ok {
		return domain.ErrAssignmentNotFound
	}
	clone := *up
	r.rows[up.ID] = &clone
	return nil
}

func (r *memAssignmentRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrAssignmentNotFound
	}
	delete(r.rows, id)
	return nil
}

func newAssignmentServiceForTest() *UserProjectService {
	users := newMemUserRepo()
	_ = users.Create(context.Background(), &domain.User{Username: "alice", Email: "alice@example.com", IsActive: true})
	projects := &memProjectRepo{projects: map[uint]*domain.Project{
		1: {ID: 1, Name: "apollo", IsActive: true},
	}}
	return NewUserProjectService(newMemAssignmentRepo(), users, projects, zerolog.Nop())
}

func TestUserProjectService_Create(t *testing.T) {
	svc := newAssignmentServiceForTest()

	up, err := svc.Create(context.Background(), ports.CreateUserProjectInput{
		UserID: 1, ProjectID: 1, RoleInProject: "member",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if up.ID == 0 || up.RoleInProject != "member" {
		t.Fatalf("unexpected assignment: %+v", up)
	}
}

func TestUserProjectService_Create_UnknownUser(t *testing.T) {
	svc := newAssignmentServiceForTest()

	_, err := svc.Create(context.Background(), ports.CreateUserProjectInput{UserID: 99, ProjectID: 1})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserProjectService_Create_UnknownProject(t *testing.T) {
	svc := newAssignmentServiceForTest()

	_, err := svc.Create(context.Background(), ports.CreateUserProjectInput{UserID: 1, ProjectID: 99})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestUserProjectService_Create_Duplicate(t *testing.T) {
	svc := newAssignmentServiceForTest()

	in := ports.CreateUserProjectInput{UserID: 1, ProjectID: 1}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, domain.ErrAssignmentExists) {
		t.Fatalf("expected ErrAssignmentExists, got %v", err)
	}
}

func TestUserProjectService_Update(t *testing.T) {
	svc := newAssignmentServiceForTest()

	created, err := svc.Create(context.Background(), ports.CreateUserProjectInput{
		UserID: 1, ProjectID: 1, RoleInProject: "member",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	role := "admin"
	updated, err := svc.Update(context.Background(), created.ID, ports.UpdateUserProjectInput{RoleInProject: &role})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.RoleInProject != "admin" {
		t.Fatalf("expected role admin, got %q", updated.RoleInProject)
	}
}
