// Package handler implements the HTTP handlers for the Driver Logbook API.
// All handlers are methods on Server. Methods are split into resource files
// (trip.go, log_entry.go, export.go) but share the same Server struct.
package handler

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/driver-logbook/backend/internal/domain"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id int64) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Delete(ctx context.Context, id int64) error
}

// LogEntryServicer defines the business operations the log entry handlers depend on.
type LogEntryServicer interface {
	Create(ctx context.Context, entry domain.LogEntry) (domain.LogEntry, error)
	List(ctx context.Context) ([]domain.LogEntry, error)
	ListByTripID(ctx context.Context, tripID int64) ([]domain.LogEntry, error)
}

// ExportServicer defines the business operations the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies of every endpoint.
type Server struct {
	trips   TripServicer
	entries LogEntryServicer
	export  ExportServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(trips TripServicer, entries LogEntryServicer, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{trips: trips, entries: entries, export: export, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil)
}

// Register attaches every route to r. The resource routes live under prefix
// ("" or e.g. "/api"); /healthz and /openapi.yaml always sit at the root.
// Paths keep their trailing slash, so /trips and /trips/ are different routes.
func (s *Server) Register(r chi.Router, prefix string) {
	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.methodNotAllowed)

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	if prefix == "" {
		s.resourceRoutes(r)
		return
	}
	r.Route(prefix, s.resourceRoutes)
}

func (s *Server) resourceRoutes(r chi.Router) {
	r.Get("/trips/", s.ListTrips)
	r.Post("/trips/", s.CreateTrip)
	r.Get("/trips/{id}/", s.GetTrip)
	r.Delete("/trips/{id}/delete/", s.DeleteTrip)
	r.Get("/trips/{id}/logs/", s.ListTripLogEntries)
	r.Post("/trips/{id}/logs/", s.CreateTripLogEntry)

	r.Get("/log-entries/", s.ListLogEntries)
	r.Post("/log-entries/", s.CreateLogEntry)

	r.Get("/export/", s.GetExport)
}
