// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"

	"fieldbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildFilter translates a typed Query into a bson filter. Only the
// fields enumerated on Query are recognized; nothing is assembled from
// caller-supplied keys. An exact Date takes precedence over
// FromDate/ToDate: a range supplied alongside an exact date is ignored
// rather than silently replacing it.
func buildFilter(q Query) bson.M {
	filter := bson.M{}
	if q.FacilityID != "" {
		filter["facility_id"] = q.FacilityID
	}
	if q.UserID != "" {
		filter["user_id"] = q.UserID
	}
	if len(q.Statuses) > 0 {
		filter["status"] = bson.M{"$in": q.Statuses}
	}
	switch {
	case q.Date != "":
		filter["date"] = q.Date
	case q.FromDate != "" || q.ToDate != "":
		dateRange := bson.M{}
		if q.FromDate != "" {
			dateRange["$gte"] = q.FromDate
		}
		if q.ToDate != "" {
			dateRange["$lte"] = q.ToDate
		}
		filter["date"] = dateRange
	}
	return filter
}

func (r *mongoBookingRepo) List(ctx context.Context, q Query) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, buildFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) ListLive(ctx context.Context, facilityID, date string) ([]models.Booking, error) {
	return r.List(ctx, Query{
		FacilityID: facilityID,
		Date:       date,
		Statuses:   []string{models.BookingStatusPending, models.BookingStatusConfirmed},
	})
}

// listLiveInSession is ListLive for use inside an open session context,
// so the reserve transaction reads its own consistent snapshot.
func (r *mongoBookingRepo) listLiveInSession(sc mongo.SessionContext, facilityID, date string) ([]models.Booking, error) {
	filter := buildFilter(Query{
		FacilityID: facilityID,
		Date:       date,
		Statuses:   []string{models.BookingStatusPending, models.BookingStatusConfirmed},
	})
	cursor, err := r.coll.Find(sc, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list live bookings: %w", err)
	}
	defer cursor.Close(sc)

	var bookings []models.Booking
	if err := cursor.All(sc, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode live bookings: %w", err)
	}
	return bookings, nil
}
