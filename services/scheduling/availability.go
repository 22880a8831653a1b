package scheduling

import "fieldbook/models"

// IsAvailable decides whether the requested [startTime,endTime) range on
// a facility/day can be booked without conflict. Pure predicate, no I/O,
// no locking; the authoritative check-then-reserve boundary lives in the
// booking repository's transaction.
//
// Truth table for the schedule argument:
//   - no schedule for the day      -> the whole day defaults to open
//   - schedule present             -> the day narrows to exactly the
//     union of its slots; a request touching unscheduled time is
//     rejected even though the same request would pass on a day with
//     no schedule at all
//
// Precondition: startTime < endTime and both parseable. Callers go
// through ValidateRange first; the predicate itself does not re-check.
func IsAvailable(facilityID, date, startTime, endTime string, liveBookings []models.Booking, sched *models.Schedule) bool {
	if sched != nil {
		if sched.IsHoliday {
			return false
		}
		overlapping := OverlapSlots(sched, startTime, endTime)
		if len(overlapping) == 0 {
			return false
		}
		for _, slot := range overlapping {
			if !slot.IsAvailable {
				return false
			}
		}
	}

	for _, b := range liveBookings {
		if b.FacilityID != facilityID || b.Date != date || !b.IsLive() {
			continue
		}
		if RangesOverlap(startTime, endTime, b.StartTime, b.EndTime) {
			return false
		}
	}

	return true
}
