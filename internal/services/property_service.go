package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/dtos"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/models"
	"github.com/WeplTechnology/goldeVisa-demo-sub001/internal/repositories"
)

type PropertyService struct {
	propRepo repositories.PropertyRepository
	unitRepo repositories.UnitRepository
}

func NewPropertyService(propRepo repositories.PropertyRepository, unitRepo repositories.UnitRepository) *PropertyService {
	return &PropertyService{propRepo: propRepo, unitRepo: unitRepo}
}

func (s *PropertyService) ListProperties(ctx context.Context) ([]*models.Property, error) {
	list, err := s.propRepo.ListAll(ctx)
	if err != nil {
		return nil, internalErr("Could not list properties", err)
	}
	if list == nil {
		list = []*models.Property{}
	}
	return list, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, id uuid.UUID) (*dtos.PropertyDetailResponse, error) {
	p, err := s.propRepo.GetByID(ctx, id)
	if err != nil {
		return nil, internalErr("Could not load property", err)
	}
	if p == nil {
		return nil, notFound("Property not found")
	}
	units, err := s.unitRepo.ListByPropertyID(ctx, id)
	if err != nil {
		return nil, internalErr("Could not load property units", err)
	}
	if units == nil {
		units = []*models.PropertyUnit{}
	}
	return &dtos.PropertyDetailResponse{Property: p, Units: units}, nil
}
