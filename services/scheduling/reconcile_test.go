package scheduling

import (
	"reflect"
	"testing"

	"fieldbook/models"
)

func baseSchedule() models.Schedule {
	return models.Schedule{
		FacilityID: testFacility,
		Date:       testDate,
		Slots: []models.ScheduleSlot{
			{StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
			{StartTime: "10:00", EndTime: "11:00", IsAvailable: true},
			{StartTime: "11:00", EndTime: "12:00", IsAvailable: false, UnavailableReason: "maintenance"},
		},
	}
}

func TestReconcileSlotsMarksBookedSlots(t *testing.T) {
	t.Parallel()
	live := []models.Booking{
		booking(testFacility, testDate, "09:00", "10:00", models.BookingStatusConfirmed),
	}

	got := ReconcileSlots(baseSchedule(), live)

	if got.Slots[0].IsAvailable {
		t.Error("slot 09:00-10:00 overlaps a live booking, should be unavailable")
	}
	if !got.Slots[1].IsAvailable {
		t.Error("slot 10:00-11:00 abuts the booking, should stay available")
	}
}

func TestReconcileSlotsFreesSlotsWithoutBookings(t *testing.T) {
	t.Parallel()
	sched := baseSchedule()
	sched.Slots[0].IsAvailable = false // stale flag from a cancelled booking

	got := ReconcileSlots(sched, nil)
	if !got.Slots[0].IsAvailable {
		t.Error("slot without live bookings and without a reason should be freed")
	}
}

func TestReconcileSlotsPreservesAdministrativeBlocks(t *testing.T) {
	t.Parallel()
	got := ReconcileSlots(baseSchedule(), nil)

	if got.Slots[2].IsAvailable {
		t.Error("maintenance slot must stay unavailable with no bookings")
	}
	if got.Slots[2].UnavailableReason != "maintenance" {
		t.Errorf("reason mutated: %q", got.Slots[2].UnavailableReason)
	}
}

func TestReconcileSlotsIdempotent(t *testing.T) {
	t.Parallel()
	live := []models.Booking{
		booking(testFacility, testDate, "09:30", "10:30", models.BookingStatusPending),
	}

	once := ReconcileSlots(baseSchedule(), live)
	twice := ReconcileSlots(once, live)

	if !reflect.DeepEqual(once.Slots, twice.Slots) {
		t.Errorf("reconcile not idempotent:\nonce:  %+v\ntwice: %+v", once.Slots, twice.Slots)
	}
}

func TestReconcileSlotsIgnoresNonLiveBookings(t *testing.T) {
	t.Parallel()
	bookings := []models.Booking{
		booking(testFacility, testDate, "09:00", "10:00", models.BookingStatusCancelled),
	}

	got := ReconcileSlots(baseSchedule(), bookings)
	if !got.Slots[0].IsAvailable {
		t.Error("cancelled booking must not block a slot")
	}
}

func TestReconcileSlotsDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	sched := baseSchedule()
	live := []models.Booking{
		booking(testFacility, testDate, "09:00", "12:00", models.BookingStatusConfirmed),
	}

	_ = ReconcileSlots(sched, live)
	if !sched.Slots[0].IsAvailable {
		t.Error("input schedule was mutated")
	}
}
