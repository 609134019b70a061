package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/driver-logbook/backend/internal/domain"
	"github.com/pkordes/driver-logbook/backend/internal/repo"
)

// LogEntryService implements business logic for LogEntry operations.
// It holds the trips repo because every entry must reference an existing trip.
type LogEntryService struct {
	trips   repo.TripRepo
	entries repo.LogEntryRepo
}

// NewLogEntryService constructs a LogEntryService backed by the provided repos.
func NewLogEntryService(trips repo.TripRepo, entries repo.LogEntryRepo) *LogEntryService {
	return &LogEntryService{trips: trips, entries: entries}
}

// Create validates the entry, verifies the referenced trip exists, then persists.
// Returns an error wrapping domain.ErrValidation for bad fields and
// domain.ErrReference when the trip does not exist; nothing is written in either case.
func (s *LogEntryService) Create(ctx context.Context, entry domain.LogEntry) (domain.LogEntry, error) {
	entry.StopLocation = strings.TrimSpace(entry.StopLocation)

	if err := validateStruct(entry); err != nil {
		return domain.LogEntry{}, fmt.Errorf("service.LogEntryService.Create: %w", err)
	}

	if _, err := s.trips.GetByID(ctx, entry.TripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.NewReferenceError("trip", entry.TripID)
		}
		return domain.LogEntry{}, fmt.Errorf("service.LogEntryService.Create: %w", err)
	}

	result, err := s.entries.Create(ctx, entry)
	if err != nil {
		return domain.LogEntry{}, fmt.Errorf("service.LogEntryService.Create: %w", err)
	}
	return result, nil
}

// List returns every log entry across all trips. Always returns a non-nil slice.
func (s *LogEntryService) List(ctx context.Context) ([]domain.LogEntry, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.LogEntryService.List: %w", err)
	}
	if entries == nil {
		return []domain.LogEntry{}, nil
	}
	return entries, nil
}

// ListByTripID returns the entries of one trip.
// Returns domain.ErrNotFound if the trip does not exist, so an unknown trip is
// distinguishable from a trip with no entries yet.
func (s *LogEntryService) ListByTripID(ctx context.Context, tripID int64) ([]domain.LogEntry, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.LogEntryService.ListByTripID: %w", err)
	}

	entries, err := s.entries.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.LogEntryService.ListByTripID: %w", err)
	}
	if entries == nil {
		return []domain.LogEntry{}, nil
	}
	return entries, nil
}
