package facility

import (
	"context"

	"fieldbook/models"
)

// FacilityService manages the facility catalog consumed by the
// scheduling engine.
type FacilityService interface {
	Register(ctx context.Context, facility *models.Facility) (*models.Facility, error)
	GetByID(ctx context.Context, id string) (*models.Facility, error)
	List(ctx context.Context, activeOnly bool) ([]models.Facility, error)
	Update(ctx context.Context, facility *models.Facility) (*models.Facility, error)
	Deactivate(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
}
