package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/evcraddock/hbnb/internal/api"
	"github.com/evcraddock/hbnb/internal/facade"
	"github.com/evcraddock/hbnb/internal/model"
)

const maxBodyBytes = 1 << 20

// apiError writes a JSON error response.
func apiError(w http.ResponseWriter, msg string, code int) {
	apiJSON(w, api.ErrorResponse{Error: msg}, code)
}

// apiJSON writes a JSON response with the given status code.
func apiJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

// snapshot projects e while the facade holds its read lock, so the
// response never observes a half-applied write.
func snapshot[E, R any](f *facade.Facade, e E, project func(E) R) R {
	var out R
	f.View(func() { out = project(e) })
	return out
}

func apiMessage(w http.ResponseWriter, msg string) {
	apiJSON(w, api.MessageResponse{Message: msg}, http.StatusOK)
}

// apiFailure maps a facade error to its status code.
func apiFailure(w http.ResponseWriter, err error) {
	switch model.KindOf(err) {
	case model.KindValidation, model.KindConflict, model.KindInvalidReference:
		apiError(w, model.Message(err), http.StatusBadRequest)
	case model.KindNotFound:
		apiError(w, model.Message(err), http.StatusNotFound)
	default:
		slog.Error("request failed", "error", err)
		apiError(w, "internal server error", http.StatusInternalServerError)
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	apiError(w, "method not allowed", http.StatusMethodNotAllowed)
}

// decodeJSON reads a request record from the body and checks its
// required fields. Unknown fields are rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Validation("request body is required")
		}
		return model.Validation("invalid JSON body")
	}
	return api.Validate(dst)
}
