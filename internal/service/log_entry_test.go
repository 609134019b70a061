package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/driver-logbook/backend/internal/domain"
	"github.com/pkordes/driver-logbook/backend/internal/repo"
	"github.com/pkordes/driver-logbook/backend/internal/service"
)

// mockLogEntryRepo is a hand-written test double for repo.LogEntryRepo.
type mockLogEntryRepo struct {
	create       func(ctx context.Context, entry domain.LogEntry) (domain.LogEntry, error)
	list         func(ctx context.Context) ([]domain.LogEntry, error)
	listByTripID func(ctx context.Context, tripID int64) ([]domain.LogEntry, error)
}

func (m *mockLogEntryRepo) Create(ctx context.Context, e domain.LogEntry) (domain.LogEntry, error) {
	return m.create(ctx, e)
}
func (m *mockLogEntryRepo) List(ctx context.Context) ([]domain.LogEntry, error) {
	return m.list(ctx)
}
func (m *mockLogEntryRepo) ListByTripID(ctx context.Context, tripID int64) ([]domain.LogEntry, error) {
	return m.listByTripID(ctx, tripID)
}

var _ repo.LogEntryRepo = (*mockLogEntryRepo)(nil)

func validLogEntry(tripID int64) domain.LogEntry {
	return domain.LogEntry{
		TripID:       tripID,
		StopLocation: "Waco",
		DrivingHours: 2.5,
		RestHours:    0.5,
	}
}

// failOnCreate is a LogEntryRepo that fails the test if anything is persisted.
func failOnCreate(t *testing.T) *mockLogEntryRepo {
	return &mockLogEntryRepo{
		create: func(_ context.Context, _ domain.LogEntry) (domain.LogEntry, error) {
			t.Fatal("log entry must not be persisted")
			return domain.LogEntry{}, nil
		},
	}
}

// ---- Create ----------------------------------------------------------------

func TestLogEntryService_Create_OK(t *testing.T) {
	input := validLogEntry(1)
	stored := input
	stored.ID = 10

	svc := service.NewLogEntryService(existingTrip(), &mockLogEntryRepo{
		create: func(_ context.Context, e domain.LogEntry) (domain.LogEntry, error) {
			assert.Equal(t, input, e)
			return stored, nil
		},
	})

	got, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestLogEntryService_Create_TripNotFound(t *testing.T) {
	svc := service.NewLogEntryService(missingTrip(), failOnCreate(t))

	_, err := svc.Create(context.Background(), validLogEntry(99))

	require.ErrorIs(t, err, domain.ErrReference)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{`Invalid pk "99" - object does not exist.`}, verr.Fields["trip"])
}

func TestLogEntryService_Create_MissingTrip(t *testing.T) {
	svc := service.NewLogEntryService(&mockTripRepo{}, failOnCreate(t))

	_, err := svc.Create(context.Background(), validLogEntry(0))

	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"This field is required."}, verr.Fields["trip"])
}

func TestLogEntryService_Create_BlankStopLocation(t *testing.T) {
	svc := service.NewLogEntryService(existingTrip(), failOnCreate(t))

	input := validLogEntry(1)
	input.StopLocation = " "

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogEntryService_Create_StopLocationTooLong(t *testing.T) {
	svc := service.NewLogEntryService(existingTrip(), failOnCreate(t))

	input := validLogEntry(1)
	input.StopLocation = strings.Repeat("a", 256)

	_, err := svc.Create(context.Background(), input)

	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Ensure this field has no more than 255 characters."}, verr.Fields["stop_location"])
}

func TestLogEntryService_Create_StopLocationAtLimit(t *testing.T) {
	svc := service.NewLogEntryService(existingTrip(), &mockLogEntryRepo{
		create: func(_ context.Context, e domain.LogEntry) (domain.LogEntry, error) { return e, nil },
	})

	input := validLogEntry(1)
	input.StopLocation = strings.Repeat("é", 255)

	got, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, input.StopLocation, got.StopLocation)
}

func TestLogEntryService_Create_NullCharacterInStopLocation(t *testing.T) {
	svc := service.NewLogEntryService(existingTrip(), failOnCreate(t))

	input := validLogEntry(1)
	input.StopLocation = "Wa\x00co"

	_, err := svc.Create(context.Background(), input)

	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Null characters are not allowed."}, verr.Fields["stop_location"])
}

func TestLogEntryService_Create_NoHoursRules(t *testing.T) {
	var persisted domain.LogEntry
	svc := service.NewLogEntryService(existingTrip(), &mockLogEntryRepo{
		create: func(_ context.Context, e domain.LogEntry) (domain.LogEntry, error) {
			persisted = e
			return e, nil
		},
	})

	input := validLogEntry(1)
	input.DrivingHours = -1
	input.RestHours = 0

	_, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, -1.0, persisted.DrivingHours)
}

func TestLogEntryService_Create_TripLookupError(t *testing.T) {
	dbErr := errors.New("connection reset")
	svc := service.NewLogEntryService(&mockTripRepo{
		getByID: func(_ context.Context, _ int64) (domain.Trip, error) { return domain.Trip{}, dbErr },
	}, failOnCreate(t))

	_, err := svc.Create(context.Background(), validLogEntry(1))

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, domain.ErrReference)
}

func TestLogEntryService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	svc := service.NewLogEntryService(existingTrip(), &mockLogEntryRepo{
		create: func(_ context.Context, _ domain.LogEntry) (domain.LogEntry, error) {
			return domain.LogEntry{}, repoErr
		},
	})

	_, err := svc.Create(context.Background(), validLogEntry(1))

	assert.ErrorIs(t, err, repoErr)
}

// ---- List ------------------------------------------------------------------

func TestLogEntryService_List(t *testing.T) {
	svc := service.NewLogEntryService(&mockTripRepo{}, &mockLogEntryRepo{
		list: func(_ context.Context) ([]domain.LogEntry, error) {
			return []domain.LogEntry{validLogEntry(1), validLogEntry(2)}, nil
		},
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLogEntryService_List_Empty(t *testing.T) {
	svc := service.NewLogEntryService(&mockTripRepo{}, &mockLogEntryRepo{
		list: func(_ context.Context) ([]domain.LogEntry, error) { return nil, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- ListByTripID ----------------------------------------------------------

func TestLogEntryService_ListByTripID_OK(t *testing.T) {
	svc := service.NewLogEntryService(existingTrip(), &mockLogEntryRepo{
		listByTripID: func(_ context.Context, tripID int64) ([]domain.LogEntry, error) {
			assert.Equal(t, int64(4), tripID)
			return []domain.LogEntry{validLogEntry(4)}, nil
		},
	})

	got, err := svc.ListByTripID(context.Background(), 4)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestLogEntryService_ListByTripID_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewLogEntryService(existingTrip(), &mockLogEntryRepo{
		listByTripID: func(_ context.Context, _ int64) ([]domain.LogEntry, error) { return nil, nil },
	})

	got, err := svc.ListByTripID(context.Background(), 4)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLogEntryService_ListByTripID_TripNotFound(t *testing.T) {
	svc := service.NewLogEntryService(missingTrip(), &mockLogEntryRepo{})

	_, err := svc.ListByTripID(context.Background(), 4)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
