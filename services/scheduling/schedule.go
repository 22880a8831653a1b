package scheduling

import "fieldbook/models"

// OverlapSlots returns every override slot on the schedule whose time
// range overlaps the requested [start,end) range. It only selects; it
// does not decide admissibility.
func OverlapSlots(sched *models.Schedule, start, end string) []models.ScheduleSlot {
	if sched == nil {
		return nil
	}
	var overlapping []models.ScheduleSlot
	for _, slot := range sched.Slots {
		if RangesOverlap(start, end, slot.StartTime, slot.EndTime) {
			overlapping = append(overlapping, slot)
		}
	}
	return overlapping
}
