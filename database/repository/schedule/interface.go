// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"errors"

	"fieldbook/database"
	"fieldbook/models"
	"fieldbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no schedule exists for the lookup.
	ErrNotFound = errors.New("schedule not found")
	// ErrDuplicate is returned when a second schedule is created for the
	// same (facility, date) pair.
	ErrDuplicate = errors.New("schedule already exists for facility and date")
)

type ScheduleRepository interface {
	Create(ctx context.Context, sched *models.Schedule) error
	// GetByFacilityDate returns (nil, nil) when the facility/day has no
	// schedule: absence is a valid state meaning "open, no overrides".
	GetByFacilityDate(ctx context.Context, facilityID, date string) (*models.Schedule, error)
	ListByFacility(ctx context.Context, facilityID string, from, to string) ([]models.Schedule, error)
	UpdateSlots(ctx context.Context, facilityID, date string, slots []models.ScheduleSlot) error
	SetHoliday(ctx context.Context, facilityID, date string, holiday bool) error
	SetSpecialHours(ctx context.Context, facilityID, date string, hours *models.HoursWindow) error
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
// Index creation is part of construction: without the unique
// (facility_id, date) index, duplicate schedule creates would be
// silently accepted instead of surfacing ErrDuplicate.
func NewMongoScheduleRepo() ScheduleRepository {
	db := database.MongoClient.Database("fieldbook")
	repo := &mongoScheduleRepo{
		coll: db.Collection("schedules"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Fatal("failed to ensure schedule indexes", zap.Error(err))
	}
	return repo
}
