package scheduling

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// SlotWindow is one enumerated time-of-day interval.
type SlotWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// clockMinutes parses an "HH:MM" time-of-day string into minutes from
// midnight.
func clockMinutes(clock string) (int, error) {
	h, m, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	mins, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("time %q out of range", clock)
	}
	return hours*60 + mins, nil
}

// formatClock renders minutes from midnight as a zero-padded "HH:MM"
// string. Zero-padding keeps lexicographic order equal to chronological
// order, which callers rely on when comparing times as strings.
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// RangesOverlap reports whether the half-open ranges [start1,end1) and
// [start2,end2) overlap. Ranges that merely abut (end1 == start2) do not
// overlap. A zero-length range overlaps only when it sits strictly
// inside the other; ValidateRange rejects zero-length requests before
// they reach a booking decision. Any unparseable or empty operand
// yields false: the function fails closed to "no overlap" rather than
// guessing.
func RangesOverlap(start1, end1, start2, end2 string) bool {
	s1, err := clockMinutes(start1)
	if err != nil {
		return false
	}
	e1, err := clockMinutes(end1)
	if err != nil {
		return false
	}
	s2, err := clockMinutes(start2)
	if err != nil {
		return false
	}
	e2, err := clockMinutes(end2)
	if err != nil {
		return false
	}
	return s1 < e2 && s2 < e1
}

// MinutesBetween returns the signed minute difference end - start.
// Negative when end precedes start; the caller decides whether that is
// an error. Malformed input yields 0.
func MinutesBetween(start, end string) int {
	s, err := clockMinutes(start)
	if err != nil {
		return 0
	}
	e, err := clockMinutes(end)
	if err != nil {
		return 0
	}
	return e - s
}

// DayBoundaries returns the half-open [midnight, next midnight) window
// of the given calendar day.
func DayBoundaries(date string) (time.Time, time.Time, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day, day.AddDate(0, 0, 1), nil
}

// WeekBoundaries returns the half-open week window containing the given
// day, anchored to Sunday.
func WeekBoundaries(date string) (time.Time, time.Time, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 7), nil
}

// MonthBoundaries returns the half-open window spanning the full
// calendar month containing the given day.
func MonthBoundaries(date string) (time.Time, time.Time, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 1, 0), nil
}

// DayOfWeek resolves the weekday of a calendar date.
func DayOfWeek(date string) (time.Weekday, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Sunday, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day.Weekday(), nil
}

// SlotWindows enumerates consecutive slotMinutes-long windows from
// dayStart up to dayEnd. A trailing remainder shorter than slotMinutes
// is not emitted: only full-length slots are bookable. The sequence is
// lazy and can be ranged over more than once. Malformed bounds or a
// non-positive slot length yield an empty sequence.
func SlotWindows(dayStart, dayEnd string, slotMinutes int) iter.Seq[SlotWindow] {
	return func(yield func(SlotWindow) bool) {
		start, err := clockMinutes(dayStart)
		if err != nil {
			return
		}
		end, err := clockMinutes(dayEnd)
		if err != nil || slotMinutes <= 0 {
			return
		}
		for cur := start; cur+slotMinutes <= end; cur += slotMinutes {
			w := SlotWindow{Start: formatClock(cur), End: formatClock(cur + slotMinutes)}
			if !yield(w) {
				return
			}
		}
	}
}
