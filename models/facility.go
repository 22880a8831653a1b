package models

import "time"

// Facility represents a bookable physical facility (field, court, pool)
// owned by an organization.
type Facility struct {
	ID          string    `bson:"id" json:"id"`
	OrgID       string    `bson:"org_id" json:"orgId"`
	Name        string    `bson:"name" json:"name"`
	Sport       string    `bson:"sport" json:"sport"` // e.g., "football", "tennis", "swimming"
	HourlyPrice float64   `bson:"hourly_price" json:"hourlyPrice"`
	Currency    string    `bson:"currency" json:"currency"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
