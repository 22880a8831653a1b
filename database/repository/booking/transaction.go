// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"fieldbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ReserveTransactionally closes the check-then-reserve gap. The
// engine's out-of-transaction availability check is advisory; this
// session transaction re-loads the schedule and live bookings, re-runs
// the admission predicate over that snapshot, and only then inserts the
// booking. Concurrent reservations for overlapping ranges serialize
// here and at most one commits.
func (r *mongoBookingRepo) ReserveTransactionally(ctx context.Context, booking *models.Booking, admit AdmitFunc) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		var sched *models.Schedule
		var found models.Schedule
		err := r.scheduleColl.FindOne(sc, bson.M{
			"facility_id": booking.FacilityID,
			"date":        booking.Date,
		}).Decode(&found)
		switch err {
		case nil:
			sched = &found
		case mongo.ErrNoDocuments:
			// no schedule: day defaults to open
		default:
			return fmt.Errorf("failed to load schedule in transaction: %w", err)
		}

		live, err := r.listLiveInSession(sc, booking.FacilityID, booking.Date)
		if err != nil {
			return err
		}

		if !admit(sched, live) {
			return ErrConflict
		}

		now := time.Now()
		booking.CreatedAt = now
		booking.UpdatedAt = now
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrConflict {
			return ErrConflict
		}
		return fmt.Errorf("reserve transaction failed: %w", err)
	}

	return nil
}
