package scheduling

import "fieldbook/models"

// ReconcileSlots recomputes the derived availability flags on a
// schedule's slots from the current set of live bookings for that
// facility/day, so that reads stay consistent without re-scanning
// bookings each time. It operates on a copy and returns the updated
// schedule.
//
// Slots that carry a non-empty UnavailableReason were blocked
// administratively (maintenance, private event); booking-driven
// reconciliation leaves them untouched. Idempotent: reconciling twice
// over the same inputs yields the same schedule. Must run after every
// booking creation, confirmation, or cancellation on that facility/day.
func ReconcileSlots(sched models.Schedule, liveBookings []models.Booking) models.Schedule {
	slots := make([]models.ScheduleSlot, len(sched.Slots))
	copy(slots, sched.Slots)

	for i := range slots {
		if slots[i].UnavailableReason != "" {
			continue
		}
		booked := false
		for _, b := range liveBookings {
			if !b.IsLive() {
				continue
			}
			if RangesOverlap(b.StartTime, b.EndTime, slots[i].StartTime, slots[i].EndTime) {
				booked = true
				break
			}
		}
		slots[i].IsAvailable = !booked
	}

	sched.Slots = slots
	return sched
}
