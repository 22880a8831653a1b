// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"fieldbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoScheduleRepo) Create(ctx context.Context, sched *models.Schedule) error {
	now := time.Now()
	sched.CreatedAt = now
	sched.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, sched); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert schedule: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) GetByFacilityDate(ctx context.Context, facilityID, date string) (*models.Schedule, error) {
	var sched models.Schedule
	err := r.coll.FindOne(ctx, bson.M{"facility_id": facilityID, "date": date}).Decode(&sched)
	if err == mongo.ErrNoDocuments {
		// No schedule is a valid state: the day defaults to open.
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule %s/%s: %w", facilityID, date, err)
	}
	return &sched, nil
}

func (r *mongoScheduleRepo) ListByFacility(ctx context.Context, facilityID string, from, to string) ([]models.Schedule, error) {
	filter := bson.M{"facility_id": facilityID}
	if from != "" || to != "" {
		dateRange := bson.M{}
		if from != "" {
			dateRange["$gte"] = from
		}
		if to != "" {
			dateRange["$lte"] = to
		}
		filter["date"] = dateRange
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules for facility %s: %w", facilityID, err)
	}
	defer cursor.Close(ctx)

	var schedules []models.Schedule
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("failed to decode schedules: %w", err)
	}
	return schedules, nil
}

func (r *mongoScheduleRepo) UpdateSlots(ctx context.Context, facilityID, date string, slots []models.ScheduleSlot) error {
	update := bson.M{"$set": bson.M{"slots": slots, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"facility_id": facilityID, "date": date}, update)
	if err != nil {
		return fmt.Errorf("failed to update slots for %s/%s: %w", facilityID, date, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoScheduleRepo) SetHoliday(ctx context.Context, facilityID, date string, holiday bool) error {
	update := bson.M{"$set": bson.M{"isHoliday": holiday, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"facility_id": facilityID, "date": date}, update)
	if err != nil {
		return fmt.Errorf("failed to set holiday for %s/%s: %w", facilityID, date, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoScheduleRepo) SetSpecialHours(ctx context.Context, facilityID, date string, hours *models.HoursWindow) error {
	var update bson.M
	if hours == nil {
		update = bson.M{
			"$unset": bson.M{"specialHours": ""},
			"$set":   bson.M{"updated_at": time.Now()},
		}
	} else {
		update = bson.M{"$set": bson.M{"specialHours": hours, "updated_at": time.Now()}}
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"facility_id": facilityID, "date": date}, update)
	if err != nil {
		return fmt.Errorf("failed to set special hours for %s/%s: %w", facilityID, date, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
