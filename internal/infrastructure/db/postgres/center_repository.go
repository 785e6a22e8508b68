package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/wisensor/wisensor-api/internal/core/domain"
)

type CenterRepository struct {
	db *gorm.DB
}

func NewCenterRepository(db *gorm.DB) *CenterRepository {
	return &CenterRepository{db: db}
}

func (r *CenterRepository) Create(ctx context.Context, center *domain.Center) error {
	if err := r.db.WithContext(ctx).Create(center).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCenterExists
		}
		return fmt.Errorf("insert center: %w", err)
	}
	return nil
}

func (r *CenterRepository) List(ctx context.Context, skip, limit int) ([]domain.Center, error) {
	var centers []domain.Center
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&centers).Error
	if err != nil {
		return nil, fmt.Errorf("list centers: %w", err)
	}
	return centers, nil
}

func (r *CenterRepository) GetByID(ctx context.Context, id uint) (*domain.Center, error) {
	var center domain.Center
	if err := r.db.WithContext(ctx).First(&center, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCenterNotFound
		}
		return nil, fmt.Errorf("find center: %w", err)
	}
	return &center, nil
}

func (r *CenterRepository) Update(ctx context.Context, center *domain.Center) error {
	if err := r.db.WithContext(ctx).Save(center).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCenterExists
		}
		return fmt.Errorf("update center: %w", err)
	}
	return nil
}

func (r *CenterRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Center{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete center: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCenterNotFound
	}
	return nil
}
