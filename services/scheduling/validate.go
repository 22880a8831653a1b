package scheduling

import "time"

// RangeValidation is the tagged result of validating a requested time
// range before it reaches the pure availability predicate.
type RangeValidation struct {
	OK     bool
	Reason string
}

// ValidateRange checks the documented preconditions of IsAvailable:
// a parseable date, parseable zero-padded times, and a strictly
// positive-length range. It sits outside the predicate so the predicate
// stays total and free of ad hoc checks.
func ValidateRange(date, startTime, endTime string) RangeValidation {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return RangeValidation{Reason: "invalid date, expected YYYY-MM-DD"}
	}
	if _, err := clockMinutes(startTime); err != nil {
		return RangeValidation{Reason: "invalid start time, expected HH:MM"}
	}
	if _, err := clockMinutes(endTime); err != nil {
		return RangeValidation{Reason: "invalid end time, expected HH:MM"}
	}
	if MinutesBetween(startTime, endTime) <= 0 {
		return RangeValidation{Reason: "start time must be before end time"}
	}
	return RangeValidation{OK: true}
}
