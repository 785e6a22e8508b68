package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wisensor/wisensor-api/internal/core/domain"
	"github.com/wisensor/wisensor-api/internal/core/ports"
)

type CenterService struct {
	centers ports.CenterRepository
	logger  zerolog.Logger
}

func NewCenterService(centers ports.CenterRepository, logger zerolog.Logger) *CenterService {
	return &CenterService{centers: centers, logger: logger}
}

func (s *CenterService) Create(ctx context.Context, in ports.CreateCenterInput) (*domain.Center, error) {
	if in.Name == "" || in.Code == "" {
		return nil, fmt.Errorf("%w: name and code are required", domain.ErrValidation)
	}

	center := &domain.Center{
		Name:      in.Name,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Code:      in.Code,
		Name1:     in.Name1,
		Name2:     in.Name2,
	}
	if err := s.centers.Create(ctx, center); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("center_id", center.ID).Str("code", center.Code).Msg("center created")
	return center, nil
}

func (s *CenterService) List(ctx context.Context, skip, limit int) ([]domain.Center, error) {
	return s.centers.List(ctx, skip, limit)
}

func (s *CenterService) Get(ctx context.Context, id uint) (*domain.Center, error) {
	return s.centers.GetByID(ctx, id)
}

func (s *CenterService) Update(ctx context.Context, id uint, in ports.UpdateCenterInput) (*domain.Center, error) {
	center, err := s.centers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		center.Name = *in.Name
	}
	if in.Latitude != nil {
		center.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		center.Longitude = *in.Longitude
	}
	if in.Code != nil {
		center.Code = *in.Code
	}
	if in.Name1 != nil {
		center.Name1 = *in.Name1
	}
	if in.Name2 != nil {
		center.Name2 = *in.Name2
	}

	if err := s.centers.Update(ctx, center); err != nil {
		return nil, err
	}
	return center, nil
}

func (s *CenterService) Delete(ctx context.Context, id uint) error {
	if err := s.centers.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("center_id", id).Msg("center deleted")
	return nil
}
