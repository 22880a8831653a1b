// File: database/repository/facility/crud.go
package facilityRepo

import (
	"context"
	"fmt"
	"time"

	"fieldbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoFacilityRepo) Create(ctx context.Context, facility *models.Facility) error {
	now := time.Now()
	facility.CreatedAt = now
	facility.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, facility); err != nil {
		return fmt.Errorf("failed to insert facility: %w", err)
	}
	return nil
}

func (r *mongoFacilityRepo) GetByID(ctx context.Context, id string) (*models.Facility, error) {
	var facility models.Facility
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&facility)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch facility %s: %w", id, err)
	}
	return &facility, nil
}

func (r *mongoFacilityRepo) List(ctx context.Context, activeOnly bool) ([]models.Facility, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list facilities: %w", err)
	}
	defer cursor.Close(ctx)

	var facilities []models.Facility
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, fmt.Errorf("failed to decode facilities: %w", err)
	}
	return facilities, nil
}

func (r *mongoFacilityRepo) Update(ctx context.Context, facility *models.Facility) error {
	facility.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": facility.ID}, facility)
	if err != nil {
		return fmt.Errorf("failed to update facility %s: %w", facility.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoFacilityRepo) SetActive(ctx context.Context, id string, active bool) error {
	update := bson.M{"$set": bson.M{"active": active, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set facility %s active=%v: %w", id, active, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
