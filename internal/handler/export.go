package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/driver-logbook/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "current_location", "pickup_location", "dropoff_location",
	"current_cycle_used", "trip_created_at",
	"log_entry_id", "stop_location", "driving_hours", "rest_hours", "timestamp",
}

type exportRowResponse struct {
	TripID           int64      `json:"trip_id"`
	CurrentLocation  string     `json:"current_location"`
	PickupLocation   string     `json:"pickup_location"`
	DropoffLocation  string     `json:"dropoff_location"`
	CurrentCycleUsed int        `json:"current_cycle_used"`
	TripCreatedAt    time.Time  `json:"trip_created_at"`
	LogEntryID       *int64     `json:"log_entry_id,omitempty"`
	StopLocation     string     `json:"stop_location,omitempty"`
	DrivingHours     *float64   `json:"driving_hours,omitempty"`
	RestHours        *float64   `json:"rest_hours,omitempty"`
	Timestamp        *time.Time `json:"timestamp,omitempty"`
}

// GetExport handles GET /export/.
// It returns one row per log entry with its trip's fields repeated.
// Use ?format=csv to receive CSV; the default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		s.writeError(w, r, formatError())
		return
	}

	wantCSV := false
	if format != nil {
		switch *format {
		case "csv":
			wantCSV = true
		case "json":
		default:
			s.writeError(w, r, formatError())
			return
		}
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if wantCSV {
		writeCSV(w, rows)
		return
	}

	out := make([]exportRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, exportRowToResponse(row))
	}
	writeJSON(w, http.StatusOK, out)
}

func formatError() error {
	verr := domain.NewValidationError()
	verr.Add("format", `Must be "json" or "csv".`)
	return verr
}

// writeCSV buffers the whole export so the Content-Length is known up front.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck — bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, row := range rows {
		//nolint:errcheck
		cw.Write(exportRowToCSVRecord(row))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="driver-logs.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func exportRowToResponse(r domain.ExportRow) exportRowResponse {
	return exportRowResponse{
		TripID:           r.TripID,
		CurrentLocation:  r.CurrentLocation,
		PickupLocation:   r.PickupLocation,
		DropoffLocation:  r.DropoffLocation,
		CurrentCycleUsed: r.CurrentCycleUsed,
		TripCreatedAt:    r.TripCreatedAt,
		LogEntryID:       r.LogEntryID,
		StopLocation:     r.StopLocation,
		DrivingHours:     r.DrivingHours,
		RestHours:        r.RestHours,
		Timestamp:        r.LoggedAt,
	}
}

// exportRowToCSVRecord flattens a row; nil log fields become empty cells.
func exportRowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		strconv.FormatInt(r.TripID, 10),
		r.CurrentLocation,
		r.PickupLocation,
		r.DropoffLocation,
		strconv.Itoa(r.CurrentCycleUsed),
		r.TripCreatedAt.UTC().Format(time.RFC3339),
		formatOptionalInt(r.LogEntryID),
		r.StopLocation,
		formatOptionalFloat(r.DrivingHours),
		formatOptionalFloat(r.RestHours),
		formatOptionalTime(r.LoggedAt),
	}
}

func formatOptionalInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// formatOptionalTime returns the RFC3339 representation of t, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
