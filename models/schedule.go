package models

import "time"

// ScheduleSlot is an explicit availability override for one time-of-day
// interval on a schedule's day. Times are "HH:MM" (24-hour, zero-padded),
// so string comparison matches chronological order.
type ScheduleSlot struct {
	StartTime         string `bson:"startTime" json:"startTime"`
	EndTime           string `bson:"endTime" json:"endTime"`
	IsAvailable       bool   `bson:"isAvailable" json:"isAvailable"`
	UnavailableReason string `bson:"unavailableReason,omitempty" json:"unavailableReason,omitempty"` // e.g., "maintenance"
}

// HoursWindow overrides a day's open/close window, distinct from
// slot-level control.
type HoursWindow struct {
	OpenTime  string `bson:"openTime" json:"openTime"`
	CloseTime string `bson:"closeTime" json:"closeTime"`
}

// Schedule holds the slot overrides and day-level flags for one facility
// on one calendar day. The (FacilityID, Date) pair is unique; schedules
// are never deleted once referenced, only flagged.
type Schedule struct {
	ID           string         `bson:"id" json:"id"`
	FacilityID   string         `bson:"facility_id" json:"facilityId"`
	Date         string         `bson:"date" json:"date"` // "YYYY-MM-DD"
	Slots        []ScheduleSlot `bson:"slots" json:"slots"`
	IsHoliday    bool           `bson:"isHoliday" json:"isHoliday"`
	SpecialHours *HoursWindow   `bson:"specialHours,omitempty" json:"specialHours,omitempty"`
	CreatedAt    time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `bson:"updated_at" json:"updatedAt"`
}

// DaySlotView is one entry of the computed availability grid for a
// facility/day, returned to clients browsing open times.
type DaySlotView struct {
	StartTime         string  `json:"startTime"`
	EndTime           string  `json:"endTime"`
	IsAvailable       bool    `json:"isAvailable"`
	UnavailableReason string  `json:"unavailableReason,omitempty"`
	Price             float64 `json:"price,omitempty"`
	Currency          string  `json:"currency,omitempty"`
}
