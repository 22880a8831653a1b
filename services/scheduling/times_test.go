package scheduling

import (
	"testing"
	"time"
)

func TestRangesOverlap(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{"partial overlap", "10:00", "11:00", "10:30", "11:30", true},
		{"containment", "09:00", "17:00", "12:00", "13:00", true},
		{"identical", "14:00", "15:00", "14:00", "15:00", true},
		{"one minute overlap", "10:00", "10:31", "10:30", "11:00", true},
		{"abutting ranges never overlap", "09:00", "10:00", "10:00", "11:00", false},
		{"abutting reversed", "10:00", "11:00", "09:00", "10:00", false},
		{"disjoint", "08:00", "09:00", "15:00", "16:00", false},
		{"zero length inside the other range", "10:00", "10:00", "09:00", "11:00", true},
		{"zero length at the other's start", "09:00", "09:00", "09:00", "11:00", false},
		{"empty operand fails closed", "", "11:00", "10:00", "12:00", false},
		{"garbage operand fails closed", "10:00", "11:00", "xx:yy", "12:00", false},
		{"missing colon fails closed", "1000", "1100", "10:30", "11:30", false},
		{"out of range hour fails closed", "25:00", "26:00", "10:00", "11:00", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got := RangesOverlap(test.start1, test.end1, test.start2, test.end2)
			if got != test.want {
				t.Errorf("RangesOverlap(%q,%q,%q,%q) = %v, want %v",
					test.start1, test.end1, test.start2, test.end2, got, test.want)
			}
			// Overlap is symmetric in its two ranges.
			sym := RangesOverlap(test.start2, test.end2, test.start1, test.end1)
			if sym != got {
				t.Errorf("symmetry violated: swapped operands gave %v, want %v", sym, got)
			}
		})
	}
}

func TestMinutesBetween(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		start, end string
		want       int
	}{
		{"one hour", "09:00", "10:00", 60},
		{"ninety minutes", "14:00", "15:30", 90},
		{"zero", "12:00", "12:00", 0},
		{"negative when inverted", "15:00", "14:00", -60},
		{"full day span", "00:00", "23:59", 1439},
		{"malformed start", "nope", "10:00", 0},
		{"malformed end", "10:00", "", 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			if got := MinutesBetween(test.start, test.end); got != test.want {
				t.Errorf("MinutesBetween(%q,%q) = %d, want %d", test.start, test.end, got, test.want)
			}
		})
	}
}

func TestDayBoundaries(t *testing.T) {
	t.Parallel()
	start, end, err := DayBoundaries("2026-03-15")
	if err != nil {
		t.Fatalf("DayBoundaries: %v", err)
	}
	if got := start.Format("2006-01-02 15:04"); got != "2026-03-15 00:00" {
		t.Errorf("start = %s", got)
	}
	if got := end.Format("2006-01-02 15:04"); got != "2026-03-16 00:00" {
		t.Errorf("end = %s", got)
	}

	if _, _, err := DayBoundaries("15/03/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestWeekBoundariesAnchoredToSunday(t *testing.T) {
	t.Parallel()
	tests := []struct {
		date      string
		wantStart string
	}{
		{"2026-03-18", "2026-03-15"}, // Wednesday -> preceding Sunday
		{"2026-03-15", "2026-03-15"}, // Sunday maps to itself
		{"2026-03-21", "2026-03-15"}, // Saturday -> same week's Sunday
	}
	for _, test := range tests {
		start, end, err := WeekBoundaries(test.date)
		if err != nil {
			t.Fatalf("WeekBoundaries(%q): %v", test.date, err)
		}
		if got := start.Format("2006-01-02"); got != test.wantStart {
			t.Errorf("WeekBoundaries(%q) start = %s, want %s", test.date, got, test.wantStart)
		}
		if got := end.Sub(start); got != 7*24*time.Hour {
			t.Errorf("WeekBoundaries(%q) span = %v, want 168h", test.date, got)
		}
	}
}

func TestMonthBoundaries(t *testing.T) {
	t.Parallel()
	start, end, err := MonthBoundaries("2026-02-10")
	if err != nil {
		t.Fatalf("MonthBoundaries: %v", err)
	}
	if got := start.Format("2006-01-02"); got != "2026-02-01" {
		t.Errorf("start = %s, want 2026-02-01", got)
	}
	if got := end.Format("2006-01-02"); got != "2026-03-01" {
		t.Errorf("end = %s, want 2026-03-01", got)
	}
}

func TestDayOfWeek(t *testing.T) {
	t.Parallel()
	got, err := DayOfWeek("2026-03-15")
	if err != nil {
		t.Fatalf("DayOfWeek: %v", err)
	}
	if got != time.Sunday {
		t.Errorf("DayOfWeek(2026-03-15) = %v, want Sunday", got)
	}
	if _, err := DayOfWeek("not-a-date"); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestSlotWindows(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		start, end  string
		slotMinutes int
		want        []SlotWindow
	}{
		{
			name:  "trailing partial slot is dropped",
			start: "09:00", end: "10:30", slotMinutes: 60,
			want: []SlotWindow{{Start: "09:00", End: "10:00"}},
		},
		{
			name:  "exact fit",
			start: "09:00", end: "11:00", slotMinutes: 60,
			want: []SlotWindow{{Start: "09:00", End: "10:00"}, {Start: "10:00", End: "11:00"}},
		},
		{
			name:  "thirty minute slots",
			start: "18:00", end: "19:30", slotMinutes: 30,
			want: []SlotWindow{{Start: "18:00", End: "18:30"}, {Start: "18:30", End: "19:00"}, {Start: "19:00", End: "19:30"}},
		},
		{
			name:  "window shorter than slot",
			start: "09:00", end: "09:45", slotMinutes: 60,
			want: nil,
		},
		{
			name:  "inverted window",
			start: "12:00", end: "09:00", slotMinutes: 60,
			want: nil,
		},
		{
			name:  "malformed bound yields empty",
			start: "bad", end: "11:00", slotMinutes: 60,
			want: nil,
		},
		{
			name:  "non-positive slot length yields empty",
			start: "09:00", end: "11:00", slotMinutes: 0,
			want: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			var got []SlotWindow
			for w := range SlotWindows(test.start, test.end, test.slotMinutes) {
				got = append(got, w)
			}
			if len(got) != len(test.want) {
				t.Fatalf("got %d slots %v, want %d %v", len(got), got, len(test.want), test.want)
			}
			for i := range got {
				if got[i] != test.want[i] {
					t.Errorf("slot %d = %v, want %v", i, got[i], test.want[i])
				}
			}
		})
	}
}

func TestSlotWindowsRestartable(t *testing.T) {
	t.Parallel()
	seq := SlotWindows("09:00", "12:00", 60)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if first, second := count(), count(); first != 3 || second != 3 {
		t.Errorf("ranging twice gave %d then %d slots, want 3 and 3", first, second)
	}

	// Early break must not affect a later restart.
	for range seq {
		break
	}
	if got := count(); got != 3 {
		t.Errorf("after early break, restart gave %d slots, want 3", got)
	}
}
