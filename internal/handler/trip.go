package handler

import (
	"net/http"
	"time"

	"github.com/pkordes/driver-logbook/backend/internal/domain"
)

// createTripRequest uses pointers so an absent field can be told apart from a zero value.
type createTripRequest struct {
	CurrentLocation  *string `json:"current_location"`
	PickupLocation   *string `json:"pickup_location"`
	DropoffLocation  *string `json:"dropoff_location"`
	CurrentCycleUsed *int    `json:"current_cycle_used"`
}

type tripResponse struct {
	ID               int64     `json:"id"`
	CurrentLocation  string    `json:"current_location"`
	PickupLocation   string    `json:"pickup_location"`
	DropoffLocation  string    `json:"dropoff_location"`
	CurrentCycleUsed int       `json:"current_cycle_used"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateTrip handles POST /trips/.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body createTripRequest
	if err := decodeJSON(r, &body); err != nil {
		s.writeError(w, r, err)
		return
	}

	trip, err := requestToTrip(body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips/.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, data)
}

// GetTrip handles GET /trips/{id}/.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// DeleteTrip handles DELETE /trips/{id}/delete/.
// The trip's log entries are removed with it.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a decoded body into a domain.Trip.
// Returns a *domain.ValidationError naming every absent field.
func requestToTrip(body createTripRequest) (domain.Trip, error) {
	verr := domain.NewValidationError()
	if body.CurrentLocation == nil {
		verr.Add("current_location", msgRequired)
	}
	if body.PickupLocation == nil {
		verr.Add("pickup_location", msgRequired)
	}
	if body.DropoffLocation == nil {
		verr.Add("dropoff_location", msgRequired)
	}
	if body.CurrentCycleUsed == nil {
		verr.Add("current_cycle_used", msgRequired)
	}
	if verr.HasErrors() {
		return domain.Trip{}, verr
	}

	return domain.Trip{
		CurrentLocation:  *body.CurrentLocation,
		PickupLocation:   *body.PickupLocation,
		DropoffLocation:  *body.DropoffLocation,
		CurrentCycleUsed: *body.CurrentCycleUsed,
	}, nil
}

func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:               t.ID,
		CurrentLocation:  t.CurrentLocation,
		PickupLocation:   t.PickupLocation,
		DropoffLocation:  t.DropoffLocation,
		CurrentCycleUsed: t.CurrentCycleUsed,
		CreatedAt:        t.CreatedAt,
	}
}
