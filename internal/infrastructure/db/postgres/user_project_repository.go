package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/wisensor/wisensor-api/internal/core/domain"
)

type UserProjectRepository struct {
	db *gorm.DB
}

func NewUserProjectRepository(db *gorm.DB) *UserProjectRepository {
	return &UserProjectRepository{db: db}
}

// Create relies on the unique (user_id, project_id) index to reject double
// assignment, including under concurrent requests.
func (r *UserProjectRepository) Create(ctx context.Context, up *domain.UserProject) error {
	if err := r.db.WithContext(ctx).Create(up).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAssignmentExists
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

func (r *UserProjectRepository) List(ctx context.Context, skip, limit int) ([]domain.UserProject, error) {
	var ups []domain.UserProject
	err := r.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&ups).Error
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return ups, nil
}

func (r *UserProjectRepository) GetByID(ctx context.Context, id uint) (*domain.UserProject, error) {
	var up domain.UserProject
	if err := r.db.WithContext(ctx).First(&up, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	return &up, nil
}

func (r *UserProjectRepository) Update(ctx context.Context, up *domain.UserProject) error {
	if err := r.db.WithContext(ctx).Save(up).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAssignmentExists
		}
		return fmt.Errorf("update assignment: %w", err)
	}
	return nil
}

func (r *UserProjectRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&domain.UserProject{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete assignment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAssignmentNotFound
	}
	return nil
}
