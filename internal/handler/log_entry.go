package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/pkordes/driver-logbook/backend/internal/domain"
)

type createLogEntryRequest struct {
	Trip         *int64   `json:"trip"`
	StopLocation *string  `json:"stop_location"`
	DrivingHours *float64 `json:"driving_hours"`
	RestHours    *float64 `json:"rest_hours"`
}

type logEntryResponse struct {
	ID           int64     `json:"id"`
	Trip         int64     `json:"trip"`
	StopLocation string    `json:"stop_location"`
	DrivingHours float64   `json:"driving_hours"`
	RestHours    float64   `json:"rest_hours"`
	Timestamp    time.Time `json:"timestamp"`
}

// CreateLogEntry handles POST /log-entries/.
// The trip id comes from the body; an unknown trip is a 400.
func (s *Server) CreateLogEntry(w http.ResponseWriter, r *http.Request) {
	var body createLogEntryRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	entry, err := requestToLogEntry(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.entries.Create(r.Context(), entry)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, logEntryToResponse(created))
}

// ListLogEntries handles GET /log-entries/.
func (s *Server) ListLogEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.entries.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logEntriesToResponse(entries))
}

// ListTripLogEntries handles GET /trips/{id}/logs/.
func (s *Server) ListTripLogEntries(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	entries, err := s.entries.ListByTripID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, logEntriesToResponse(entries))
}

// CreateTripLogEntry handles POST /trips/{id}/logs/.
// The path id wins over any "trip" in the body, and an unknown trip is a 404
// because the addressed resource itself does not exist.
func (s *Server) CreateTripLogEntry(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	// Storage ids start at 1.
	if id <= 0 {
		s.writeError(w, r, domain.ErrNotFound)
		return
	}

	var body createLogEntryRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}
	body.Trip = &id

	entry, err := requestToLogEntry(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.entries.Create(r.Context(), entry)
	if err != nil {
		if errors.Is(err, domain.ErrReference) {
			err = domain.ErrNotFound
		}
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, logEntryToResponse(created))
}

// --- mapping helpers --------------------------------------------------------

// requestToLogEntry converts a decoded body into a domain.LogEntry.
// Returns a *domain.ValidationError naming every absent field.
func requestToLogEntry(body createLogEntryRequest) (domain.LogEntry, error) {
	verr := domain.NewValidationError()
	if body.Trip == nil {
		verr.Add("trip", msgRequired)
	}
	if body.StopLocation == nil {
		verr.Add("stop_location", msgRequired)
	}
	if body.DrivingHours == nil {
		verr.Add("driving_hours", msgRequired)
	}
	if body.RestHours == nil {
		verr.Add("rest_hours", msgRequired)
	}
	if verr.HasErrors() {
		return domain.LogEntry{}, verr
	}

	return domain.LogEntry{
		TripID:       *body.Trip,
		StopLocation: *body.StopLocation,
		DrivingHours: *body.DrivingHours,
		RestHours:    *body.RestHours,
	}, nil
}

func logEntryToResponse(e domain.LogEntry) logEntryResponse {
	return logEntryResponse{
		ID:           e.ID,
		Trip:         e.TripID,
		StopLocation: e.StopLocation,
		DrivingHours: e.DrivingHours,
		RestHours:    e.RestHours,
		Timestamp:    e.Timestamp,
	}
}

func logEntriesToResponse(entries []domain.LogEntry) []logEntryResponse {
	data := make([]logEntryResponse, len(entries))
	for i, e := range entries {
		data[i] = logEntryToResponse(e)
	}
	return data
}
