package domain

import "time"

// LogEntry records a driving or rest stop belonging to exactly one Trip.
// Hours are fractional; a stop can cover e.g. 2.5 hours of driving.
type LogEntry struct {
	ID           int64     `json:"id"`
	TripID       int64     `json:"trip" validate:"required"`
	StopLocation string    `json:"stop_location" validate:"required,max=255,nonul"`
	DrivingHours float64   `json:"driving_hours"`
	RestHours    float64   `json:"rest_hours"`
	Timestamp    time.Time `json:"timestamp"` // set by the database on insert
}
