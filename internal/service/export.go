package service

import (
	"context"
	"fmt"

	"github.com/pkordes/driver-logbook/backend/internal/domain"
	"github.com/pkordes/driver-logbook/backend/internal/repo"
)

// ExportService assembles a flat export of all trips and their log entries.
type ExportService struct {
	trips   repo.TripRepo
	entries repo.LogEntryRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, entries repo.LogEntryRepo) *ExportService {
	return &ExportService{trips: trips, entries: entries}
}

// Export returns one ExportRow per log entry, grouped by trip in trip order.
// Trips with no entries contribute one row with empty log fields.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: list trips: %w", err)
	}

	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: list log entries: %w", err)
	}

	byTrip := make(map[int64][]domain.LogEntry, len(trips))
	for _, e := range entries {
		byTrip[e.TripID] = append(byTrip[e.TripID], e)
	}

	rows := make([]domain.ExportRow, 0, len(entries)+len(trips))
	for _, t := range trips {
		tripEntries := byTrip[t.ID]
		if len(tripEntries) == 0 {
			rows = append(rows, tripRow(t))
			continue
		}
		for _, e := range tripEntries {
			row := tripRow(t)
			id, driving, rest, logged := e.ID, e.DrivingHours, e.RestHours, e.Timestamp
			row.LogEntryID = &id
			row.StopLocation = e.StopLocation
			row.DrivingHours = &driving
			row.RestHours = &rest
			row.LoggedAt = &logged
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func tripRow(t domain.Trip) domain.ExportRow {
	return domain.ExportRow{
		TripID:           t.ID,
		CurrentLocation:  t.CurrentLocation,
		PickupLocation:   t.PickupLocation,
		DropoffLocation:  t.DropoffLocation,
		CurrentCycleUsed: t.CurrentCycleUsed,
		TripCreatedAt:    t.CreatedAt,
	}
}
