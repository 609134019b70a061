package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/driver-logbook/backend/internal/domain"
)

// foreignKeyViolation is the Postgres SQLSTATE for a failed REFERENCES check.
const foreignKeyViolation = "23503"

// LogEntryRepo defines the persistence operations for LogEntries.
// There is no update or delete: entries are removed only with their trip.
type LogEntryRepo interface {
	// Create inserts a new log entry and returns the persisted record.
	// Returns an error wrapping domain.ErrReference if the trip does not exist.
	Create(ctx context.Context, entry domain.LogEntry) (domain.LogEntry, error)

	// List returns every log entry across all trips in insertion order.
	List(ctx context.Context) ([]domain.LogEntry, error)

	// ListByTripID returns the log entries of one trip in insertion order.
	ListByTripID(ctx context.Context, tripID int64) ([]domain.LogEntry, error)
}

type pgLogEntryRepo struct {
	db db
}

// NewLogEntryRepo constructs a LogEntryRepo backed by the provided db connection.
func NewLogEntryRepo(db db) LogEntryRepo {
	return &pgLogEntryRepo{db: db}
}

// Create relies on the trip_id foreign key for the reference check, so a
// trip deleted between the service's lookup and this insert still fails cleanly.
func (r *pgLogEntryRepo) Create(ctx context.Context, entry domain.LogEntry) (domain.LogEntry, error) {
	const q = `
		INSERT INTO log_entries (trip_id, stop_location, driving_hours, rest_hours)
		VALUES (@trip_id, @stop_location, @driving_hours, @rest_hours)
		RETURNING id, trip_id, stop_location, driving_hours, rest_hours, logged_at`

	args := pgx.NamedArgs{
		"trip_id":       entry.TripID,
		"stop_location": entry.StopLocation,
		"driving_hours": entry.DrivingHours,
		"rest_hours":    entry.RestHours,
	}

	result, err := scanLogEntry(r.db.QueryRow(ctx, q, args))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return domain.LogEntry{}, fmt.Errorf("repo.LogEntryRepo.Create: %w", domain.NewReferenceError("trip", entry.TripID))
		}
		return domain.LogEntry{}, fmt.Errorf("repo.LogEntryRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgLogEntryRepo) List(ctx context.Context) ([]domain.LogEntry, error) {
	const q = `
		SELECT id, trip_id, stop_location, driving_hours, rest_hours, logged_at
		FROM log_entries
		ORDER BY id`

	entries, err := r.query(ctx, q, nil)
	if err != nil {
		return nil, fmt.Errorf("repo.LogEntryRepo.List: %w", err)
	}
	return entries, nil
}

func (r *pgLogEntryRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.LogEntry, error) {
	const q = `
		SELECT id, trip_id, stop_location, driving_hours, rest_hours, logged_at
		FROM log_entries
		WHERE trip_id = @trip_id
		ORDER BY id`

	entries, err := r.query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.LogEntryRepo.ListByTripID: %w", err)
	}
	return entries, nil
}

// query runs a multi-row SELECT and scans every row. args may be nil.
func (r *pgLogEntryRepo) query(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.LogEntry, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if args == nil {
		rows, err = r.db.Query(ctx, q)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []domain.LogEntry{}
	for rows.Next() {
		e, err := scanLogEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return entries, nil
}

func scanLogEntry(s scanner) (domain.LogEntry, error) {
	var e domain.LogEntry
	err := s.Scan(&e.ID, &e.TripID, &e.StopLocation, &e.DrivingHours, &e.RestHours, &e.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.LogEntry{}, domain.ErrNotFound
		}
		return domain.LogEntry{}, err
	}
	return e, nil
}
