// File: database/repository/booking/interface.go
package bookingRepo

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
	// ErrNotFound is returned when no booking matches the lookup.
	ErrNotFound = errors.New("booking not found")
	// ErrConflict is returned when the admission predicate rejects the
	// reservation inside the check-then-reserve transaction.
	ErrConflict = errors.New("requested range is no longer available")
)

// AdmitFunc is the availability predicate re-run inside the reserve
// transaction. It receives the schedule for the booking's facility/day
// (nil when none exists) and the live bookings loaded within the same
// transactional boundary, and decides admission.
type AdmitFunc func(sched *models.Schedule, live []models.Booking) bool

// Query enumerates the recognized booking filters. Every field is
// optional; zero values are ignored.
type Query struct {
	FacilityID string
	UserID     string
	Date       string
	Statuses   []string
	FromDate   string
	ToDate     string
}

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByCode(ctx context.Context, code string) (*models.Booking, error)
	List(ctx context.Context, q Query) ([]models.Booking, error)
	// ListLive returns the bookings on a facility/day whose status
	// counts toward conflicts (pending or confirmed).
	ListLive(ctx context.Context, facilityID, date string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// ReserveTransactionally inserts the booking inside a mongo session
	// after re-running the admission predicate against the schedule and
	// live bookings read within the same transaction. This is the
	// authoritative check-then-reserve boundary: two concurrent
	// requests for overlapping ranges cannot both commit.
	ReserveTransactionally(ctx context.Context, booking *models.Booking, admit AdmitFunc) error
}

type mongoBookingRepo struct {
	coll         *mongo.Collection
	scheduleColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository and
// creates its indexes.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("fieldbook")
	repo := &mongoBookingRepo{
		coll:         db.Collection("bookings"),
		scheduleColl: db.Collection("schedules"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Fatal("failed to ensure booking indexes", zap.Error(err))
	}
	return repo
}
