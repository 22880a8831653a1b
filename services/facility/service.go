package facility

import (
	"context"
	"fmt"

	facilityRepo "fieldbook/database/repository/facility"
	"fieldbook/models"

	"github.com/google/uuid"
)

// DefaultFacilityService is the production facility catalog service.
type DefaultFacilityService struct {
	Repo facilityRepo.FacilityRepository
}

func (s *DefaultFacilityService) Register(ctx context.Context, facility *models.Facility) (*models.Facility, error) {
	if facility.Name == "" {
		return nil, fmt.Errorf("facility name is required")
	}
	if facility.HourlyPrice < 0 {
		return nil, fmt.Errorf("hourly price must not be negative")
	}
	if facility.Currency == "" {
		return nil, fmt.Errorf("currency is required")
	}
	if facility.ID == "" {
		facility.ID = uuid.New().String()
	}
	facility.Active = true
	if err := s.Repo.Create(ctx, facility); err != nil {
		return nil, err
	}
	return facility, nil
}

func (s *DefaultFacilityService) GetByID(ctx context.Context, id string) (*models.Facility, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultFacilityService) List(ctx context.Context, activeOnly bool) ([]models.Facility, error) {
	return s.Repo.List(ctx, activeOnly)
}

func (s *DefaultFacilityService) Update(ctx context.Context, facility *models.Facility) (*models.Facility, error) {
	if facility.ID == "" {
		return nil, fmt.Errorf("facility id is required")
	}
	if err := s.Repo.Update(ctx, facility); err != nil {
		return nil, err
	}
	return facility, nil
}

func (s *DefaultFacilityService) Deactivate(ctx context.Context, id string) error {
	return s.Repo.SetActive(ctx, id, false)
}

func (s *DefaultFacilityService) Activate(ctx context.Context, id string) error {
	return s.Repo.SetActive(ctx, id, true)
}
