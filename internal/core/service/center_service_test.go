package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

type memCenterRepo struct {
	nextID uint
	rows   map[uint]*domain.Center
}

func newMemCenterRepo() *memCenterRepo {
	return &memCenterRepo{nextID: 1, rows: map[uint]*domain.Center{}}
}

func (r *memCenterRepo) Create(_ context.Context, ce *domain.Center) error {
	for _, row := range r.rows {
		if row.Name == ce.Name || row.Code == ce.Code {
			return domain.ErrCenterExists
		}
	}
	ce.ID = r.nextID
	r.nextID++
	clone := *ce
	r.rows[ce.ID] = &clone
	return nil
}

func (r *memCenterRepo) List(_ context.Context, _, _ int) ([]domain.Center, error) {
	out := make([]domain.Center, 0, len(r.rows))
	for id := uint(1); id < r.nextID; id++ {
		if row, ok := r.rows[id]; ok {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (r *memCenterRepo) GetByID(_ context.Context, id uint) (*domain.Center, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrCenterNotFound
	}
	clone := *row
	return &clone, nil
}

func (r *memCenterRepo) Update(_ context.Context, ce *domain.Center) error {
	if _, ok := r.rows[ce.ID]; !ok {
		return domain.ErrCenterNotFound
	}
	clone := *ce
	r.rows[ce.ID] = &clone
	return nil
}

func (r *memCenterRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrCenterNotFound
	}
	delete(r.rows, id)
	return nil
}

func TestCenterService_Create(t *testing.T) {
	svc := NewCenterService(newMemCenterRepo(), zerolog.Nop())

	center, err := svc.Create(context.Background(), ports.CreateCenterInput{
		Name:      "Centro Norte",
		Latitude:  -41.47,
		Longitude: -72.94,
		Code:      "CN-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if center.ID == 0 {
		t.Fatal("expected a generated id")
	}
	if center.Code != "CN-01" {
		t.Fatalf("unexpected code: %q", center.Code)
	}
}

func TestCenterService_CreateRequiresNameAndCode(t *testing.T) {
	svc := NewCenterService(newMemCenterRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateCenterInput{Name: "Centro"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCenterService_UpdatePartial(t *testing.T) {
	repo := newMemCenterRepo()
	svc := NewCenterService(repo, zerolog.Nop())
	ctx := context.Background()

	center, err := svc.Create(ctx, ports.CreateCenterInput{
		Name: "Centro Sur", Latitude: -42.0, Longitude: -73.0, Code: "CS-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	lat := -42.5
	updated, err := svc.Update(ctx, center.ID, ports.UpdateCenterInput{Latitude: &lat})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Latitude != -42.5 {
		t.Fatalf("latitude not updated: %v", updated.Latitude)
	}
	// Untouched fields survive a partial update.
	if updated.Name != "Centro Sur" || updated.Code != "CS-01" {
		t.Fatalf("unexpected mutation: %+v", updated)
	}
}

func TestCenterService_UpdateMissing(t *testing.T) {
	svc := NewCenterService(newMemCenterRepo(), zerolog.Nop())

	name := "x"
	_, err := svc.Update(context.Background(), 42, ports.UpdateCenterInput{Name: &name})
	if !errors.Is(err, domain.ErrCenterNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestCenterService_Delete(t *testing.T) {
	repo := newMemCenterRepo()
	svc := NewCenterService(repo, zerolog.Nop())
	ctx := context.Background()

	center, err := svc.Create(ctx, ports.CreateCenterInput{
		Name: "Centro Este", Latitude: 0.1, Longitude: 0.1, Code: "CE-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, center.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, center.ID); !errors.Is(err, domain.ErrCenterNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}
