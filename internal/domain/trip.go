// Package domain contains the core data types for the Driver Logbook application.
// It is imported by every other internal package (repo, service, handler).
// The struct tags are metadata only: json names the wire field, validate holds
// the field rules checked by the service layer.
package domain

import "time"

// Trip is a planned driving trip: where the driver is now, where the load is
// picked up and dropped off, and how many duty-cycle hours are already used.
// A trip is the parent aggregate; log entries belong to a trip.
type Trip struct {
	ID               int64     `json:"id"`
	CurrentLocation  string    `json:"current_location" validate:"required,max=255,nonul"`
	PickupLocation   string    `json:"pickup_location" validate:"required,max=255,nonul"`
	DropoffLocation  string    `json:"dropoff_location" validate:"required,max=255,nonul"`
	CurrentCycleUsed int       `json:"current_cycle_used" validate:"min=-2147483648,max=2147483647"` // INTEGER column
	CreatedAt        time.Time `json:"created_at"` // set by the database on insert
}
