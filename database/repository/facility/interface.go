// File: database/repository/facility/interface.go
package facilityRepo

import (
	"context"
	"errors"

	"fieldbook/database"
	"fieldbook/models"
	"fieldbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ErrNotFound is returned when no facility matches the lookup.
var ErrNotFound = errors.New("facility not found")

type FacilityRepository interface {
	Create(ctx context.Context, facility *models.Facility) error
	GetByID(ctx context.Context, id string) (*models.Facility, error)
	List(ctx context.Context, activeOnly bool) ([]models.Facility, error)
	Update(ctx context.Context, facility *models.Facility) error
	SetActive(ctx context.Context, id string, active bool) error
}

type mongoFacilityRepo struct {
	coll *mongo.Collection
}

// NewMongoFacilityRepo constructs a new MongoDB FacilityRepository and
// creates its indexes.
func NewMongoFacilityRepo() FacilityRepository {
	db := database.MongoClient.Database("fieldbook")
	repo := &mongoFacilityRepo{
		coll: db.Collection("facilities"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Fatal("failed to ensure facility indexes", zap.Error(err))
	}
	return repo
}
