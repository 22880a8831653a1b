package scheduling

import (
	"context"
	"errors"

	"fieldbook/models"
)

var (
	// ErrInvalidRange is returned when a request fails range validation.
	ErrInvalidRange = errors.New("invalid time range")
	// ErrFacilityUnavailable is returned when the facility is missing or
	// deactivated.
	ErrFacilityUnavailable = errors.New("facility not found or inactive")
	// ErrSlotTaken is returned when the requested range is rejected by
	// the availability decision.
	ErrSlotTaken = errors.New("requested range is not available")
)

// SchedulingService defines the operations of the availability and
// scheduling engine.
type SchedulingService interface {
	// CheckAvailability runs the admission predicate over the stored
	// schedule and live bookings. Advisory only: the binding check runs
	// inside Reserve's transaction.
	CheckAvailability(ctx context.Context, facilityID, date, startTime, endTime string) (bool, error)
	// Reserve creates a pending booking for the requested range, or
	// fails with ErrSlotTaken.
	Reserve(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	// DayAvailability computes the bookable slot grid for a facility/day.
	DayAvailability(ctx context.Context, facilityID, date string) ([]models.DaySlotView, error)
	// DefineSchedule creates the override schedule for a facility/day.
	// A second schedule for the same pair is a conflict.
	DefineSchedule(ctx context.Context, sched *models.Schedule) error
	UpdateScheduleSlots(ctx context.Context, facilityID, date string, slots []models.ScheduleSlot) error
	SetHoliday(ctx context.Context, facilityID, date string, holiday bool) error
	SetSpecialHours(ctx context.Context, facilityID, date string, hours *models.HoursWindow) error
	// ReconcileDay recomputes derived slot flags for one facility/day
	// from the live bookings. Used by the repair worker.
	ReconcileDay(ctx context.Context, facilityID, date string) error
}
