package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/driver-logbook/backend/internal/domain"
	"github.com/pkordes/driver-logbook/backend/internal/handler"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	create  func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID func(ctx context.Context, id int64) (domain.Trip, error)
	list    func(ctx context.Context) ([]domain.Trip, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockTripServicer) Create(ctx context.Context, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id int64) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

// mockLogEntryServicer is a test double for handler.LogEntryServicer.
type mockLogEntryServicer struct {
	create       func(ctx context.Context, e domain.LogEntry) (domain.LogEntry, error)
	list         func(ctx context.Context) ([]domain.LogEntry, error)
	listByTripID func(ctx context.Context, tripID int64) ([]domain.LogEntry, error)
}

func (m *mockLogEntryServicer) Create(ctx context.Context, e domain.LogEntry) (domain.LogEntry, error) {
	return m.create(ctx, e)
}
func (m *mockLogEntryServicer) List(ctx context.Context) ([]domain.LogEntry, error) {
	return m.list(ctx)
}
func (m *mockLogEntryServicer) ListByTripID(ctx context.Context, tripID int64) ([]domain.LogEntry, error) {
	return m.listByTripID(ctx, tripID)
}

var _ handler.LogEntryServicer = (*mockLogEntryServicer)(nil)

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context) ([]domain.ExportRow, error) {
	return m.export(ctx)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

// ---- helpers ---------------------------------------------------------------

// newRouter registers srv on a fresh chi router, exactly as main.go does.
func newRouter(srv *handler.Server, prefix string) http.Handler {
	r := chi.NewRouter()
	srv.Register(r, prefix)
	return r
}

func newTripHTTPHandler(svc handler.TripServicer) http.Handler {
	return newRouter(handler.NewServer(svc, nil, nil, nil), "")
}

func newLogEntryHTTPHandler(svc handler.LogEntryServicer) http.Handler {
	return newRouter(handler.NewServer(nil, svc, nil, nil), "")
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// do sends a request through h and returns the recorder.
func do(h http.Handler, method, path string, body *bytes.Buffer) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// errorBody mirrors the handler's error JSON for decoding in tests.
type errorBody struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}
