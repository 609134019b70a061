package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/driver-logbook/backend/internal/domain"
)

// errMalformedBody marks a request body that is not a JSON object at all.
var errMalformedBody = errors.New("malformed JSON request body")

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a single JSON object from r into dst.
// A value of the wrong type for a field becomes a *domain.ValidationError on
// that field; syntax errors and empty bodies wrap errMalformedBody; a body over
// the size limit surfaces as *http.MaxBytesError.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var (
		typeErr *json.UnmarshalTypeError
		tooLong *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLong):
		return err
	case errors.As(err, &typeErr) && typeErr.Field != "":
		verr := domain.NewValidationError()
		verr.Add(typeErr.Field, typeMessage(typeErr.Type))
		return verr
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: body is empty", errMalformedBody)
	default:
		return fmt.Errorf("%w: %v", errMalformedBody, err)
	}
}

func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int32, reflect.Int64:
		return "A valid integer is required."
	case reflect.Float32, reflect.Float64:
		return "A valid number is required."
	case reflect.String:
		return "Not a valid string."
	default:
		return "Invalid value."
	}
}

// msgRequired is reported for a field absent from the request body.
const msgRequired = "This field is required."

// pathID binds the {id} URL parameter as an int64 the same way generated
// oapi-codegen servers bind path parameters. A non-integer id means the
// resource cannot exist, so callers treat a binding error as not found.
func pathID(r *http.Request) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, fmt.Errorf("bind id: %v: %w", err, domain.ErrNotFound)
	}
	return id, nil
}
