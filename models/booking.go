package models

import "time"

// Booking statuses. Only pending and confirmed bookings count toward
// slot conflicts.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Booking represents a reservation of one facility time range.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	FacilityID  string    `bson:"facility_id" json:"facilityId"`
	UserID      string    `bson:"user_id" json:"userId"`
	Date        string    `bson:"date" json:"date"`            // "YYYY-MM-DD"
	StartTime   string    `bson:"start_time" json:"startTime"` // "HH:MM"
	EndTime     string    `bson:"end_time" json:"endTime"`     // "HH:MM"
	Status      string    `bson:"status" json:"status"`
	BookingCode string    `bson:"booking_code" json:"bookingCode"` // opaque external identifier
	TotalPrice  float64   `bson:"total_price" json:"totalPrice"`
	Currency    string    `bson:"currency" json:"currency"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsLive reports whether the booking counts toward slot conflicts.
func (b Booking) IsLive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}

// BookingRequest is the payload for creating a booking.
type BookingRequest struct {
	FacilityID string `json:"facilityId" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime" binding:"required"`
}
