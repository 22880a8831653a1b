package scheduling

import (
	"testing"

	"fieldbook/models"
)

const (
	testFacility = "fac-1"
	testDate     = "2026-03-15"
)

func booking(facilityID, date, start, end, status string) models.Booking {
	return models.Booking{
		ID:         "bk-" + start,
		FacilityID: facilityID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
	}
}

func TestIsAvailableNoScheduleDefaultsOpen(t *testing.T) {
	t.Parallel()
	if !IsAvailable(testFacility, testDate, "09:00", "10:00", nil, nil) {
		t.Error("day without schedule or bookings should be open")
	}
}

func TestIsAvailableHolidayClosesWholeDay(t *testing.T) {
	t.Parallel()
	sched := &models.Schedule{
		FacilityID: testFacility,
		Date:       testDate,
		IsHoliday:  true,
		Slots: []models.ScheduleSlot{
			{StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
		},
	}
	if IsAvailable(testFacility, testDate, "10:00", "11:00", nil, sched) {
		t.Error("holiday must reject even inside an available slot")
	}
}

func TestIsAvailableScheduleNarrowsDay(t *testing.T) {
	t.Parallel()
	sched := &models.Schedule{
		FacilityID: testFacility,
		Date:       testDate,
		Slots: []models.ScheduleSlot{
			{StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
			{StartTime: "14:00", EndTime: "15:00", IsAvailable: false},
		},
	}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"inside available slot", "09:00", "10:00", true},
		{"request overlapping blocked slot", "14:00", "15:00", false},
		{"partially touching blocked slot", "13:30", "14:30", false},
		{"unscheduled time on a scheduled day is closed", "16:00", "17:00", false},
		{"range spanning slot edge into unscheduled time still matches slot", "11:00", "13:00", true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := IsAvailable(testFacility, testDate, test.start, test.end, nil, sched)
			if got != test.want {
				t.Errorf("IsAvailable(%s-%s) = %v, want %v", test.start, test.end, got, test.want)
			}
		})
	}
}

func TestIsAvailableBlockedSlotRejects(t *testing.T) {
	t.Parallel()
	sched := &models.Schedule{
		FacilityID: testFacility,
		Date:       testDate,
		Slots: []models.ScheduleSlot{
			{StartTime: "14:00", EndTime: "15:00", IsAvailable: false},
		},
	}
	if IsAvailable(testFacility, testDate, "14:00", "15:00", nil, sched) {
		t.Error("request matching an unavailable slot must be rejected")
	}
}

func TestIsAvailableLiveBookingConflicts(t *testing.T) {
	t.Parallel()
	live := []models.Booking{
		booking(testFacility, testDate, "10:00", "11:00", models.BookingStatusConfirmed),
	}

	tests := []struct {
		name       string
		start, end string
		want       bool
	}{
		{"partial overlap rejected", "10:30", "11:30", false},
		{"exact abutment accepted", "11:00", "12:00", true},
		{"before booking accepted", "09:00", "10:00", true},
		{"identical range rejected", "10:00", "11:00", false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := IsAvailable(testFacility, testDate, test.start, test.end, live, nil)
			if got != test.want {
				t.Errorf("IsAvailable(%s-%s) = %v, want %v", test.start, test.end, got, test.want)
			}
		})
	}
}

func TestIsAvailableIgnoresNonLiveAndForeignBookings(t *testing.T) {
	t.Parallel()
	live := []models.Booking{
		booking(testFacility, testDate, "10:00", "11:00", models.BookingStatusCancelled),
		booking(testFacility, testDate, "10:00", "11:00", models.BookingStatusCompleted),
		booking("other-facility", testDate, "10:00", "11:00", models.BookingStatusConfirmed),
		booking(testFacility, "2026-03-16", "10:00", "11:00", models.BookingStatusConfirmed),
	}
	if !IsAvailable(testFacility, testDate, "10:00", "11:00", live, nil) {
		t.Error("cancelled, completed, and foreign bookings must not conflict")
	}
}

func TestIsAvailablePendingCountsAsLive(t *testing.T) {
	t.Parallel()
	live := []models.Booking{
		booking(testFacility, testDate, "10:00", "11:00", models.BookingStatusPending),
	}
	if IsAvailable(testFacility, testDate, "10:00", "11:00", live, nil) {
		t.Error("pending bookings must count toward conflicts")
	}
}

func TestOverlapSlots(t *testing.T) {
	t.Parallel()
	sched := &models.Schedule{
		Slots: []models.ScheduleSlot{
			{StartTime: "08:00", EndTime: "09:00", IsAvailable: true},
			{StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
			{StartTime: "10:00", EndTime: "11:00", IsAvailable: false},
		},
	}

	got := OverlapSlots(sched, "09:30", "10:30")
	if len(got) != 2 {
		t.Fatalf("got %d overlapping slots, want 2", len(got))
	}
	if got[0].StartTime != "09:00" || got[1].StartTime != "10:00" {
		t.Errorf("unexpected slots: %+v", got)
	}

	if got := OverlapSlots(sched, "08:00", "09:00"); len(got) != 1 {
		t.Errorf("abutting second slot must not be included, got %d", len(got))
	}
	if got := OverlapSlots(nil, "08:00", "09:00"); got != nil {
		t.Errorf("nil schedule should yield nil, got %v", got)
	}
}
