package domain

import "time"

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per log entry, with trip fields
// repeated for every entry on that trip. Trips with no log entries yield one
// row whose log fields are nil/empty.
type ExportRow struct {
	// Trip fields, repeated for every log entry on the trip.
	TripID           int64
	CurrentLocation  string
	PickupLocation   string
	DropoffLocation  string
	CurrentCycleUsed int
	TripCreatedAt    time.Time

	// Log entry fields, nil when the trip has no entries.
	LogEntryID   *int64
	StopLocation string
	DrivingHours *float64
	RestHours    *float64
	LoggedAt     *time.Time
}
