package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/wisensor/wisensor-api/internal/core/domain"
)

type PermissionRepository struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

func (r *PermissionRepository) Create(ctx context.Context, perm *domain.Permission) error {
	if err := r.db.WithContext(ctx).Create(perm).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrPermissionExists
		}
		return fmt.Errorf("insert permission: %w", err)
	}
	return nil
}

func (r *PermissionRepository) List(ctx context.Context, skip, limit int) ([]domain.Permission, error) {
	var perms []domain.Permission
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&perms).Error
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return perms, nil
}

func (r *PermissionRepository) GetByID(ctx context.Context, id uint) (*domain.Permission, error) {
	var perm domain.Permission
	if err := r.db.WithContext(ctx).First(&perm, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPermissionNotFound
		}
		return nil, fmt.Errorf("find permission: %w", err)
	}
	return &perm, nil
}

func (r *PermissionRepository) GetByNames(ctx context.Context, names []string) ([]domain.Permission, error) {
	var perms []domain.Permission
	err := r.db.WithContext(ctx).
		Where("name IN ?", names).
		Find(&perms).Error
	if err != nil {
		return nil, fmt.Errorf("find permissions by name: %w", err)
	}
	return perms, nil
}

func (r *PermissionRepository) Update(ctx context.Context, perm *domain.Permission) error {
	if err := r.db.WithContext(ctx).Save(perm).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrPermissionExists
		}
		return fmt.Errorf("update permission: %w", err)
	}
	return nil
}

func (r *PermissionRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.Permission{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete permission: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPermissionNotFound
	}
	return nil
}
