// FILE: database/repository/facility/indexes.go
package facilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// facilityIndexModels declares the indexes for the facilities collection.
func facilityIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "org_id", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("org_active_idx"),
		},
	}
}

// EnsureIndexes creates the facility indexes. It runs at repository
// construction.
func (r *mongoFacilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, facilityIndexModels())
	if err != nil {
		return fmt.Errorf("failed to create facility indexes: %w", err)
	}
	return nil
}
