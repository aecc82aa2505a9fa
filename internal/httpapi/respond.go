package httpapi

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"cropconnect-backend/internal/checkout"
	"cropconnect-backend/internal/farmer"
	"cropconnect-backend/internal/registration"
	"cropconnect-backend/internal/session"
	"cropconnect-backend/internal/validation"
)

// errNotFound is used by handlers for unknown path ids.
var errNotFound = errors.New("not found")

// writeJSON encodes v, gzip-compressed when the client accepts it.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
		return
	}
	w.Header().Set("Content-Encoding", "gzip")
	w.WriteHeader(status)
	gw := gzip.NewWriter(w)
	defer gw.Close()
	_ = json.NewEncoder(gw).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.Error
	var verrs validation.Errors
	switch {
	case errors.As(err, &verr):
		writeJSON(w, r, http.StatusBadRequest, verr)
	case errors.As(err, &verrs):
		writeJSON(w, r, http.StatusBadRequest, map[string]any{"errors": []*validation.Error(verrs)})
	case errors.Is(err, errNotFound),
		errors.Is(err, session.ErrOrderNotFound),
		errors.Is(err, farmer.ErrListingNotFound),
		errors.Is(err, farmer.ErrUnknownFarm):
		writeJSON(w, r, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, farmer.ErrInvalidCredentials):
		writeJSON(w, r, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	case errors.Is(err, session.ErrInsufficientBalance),
		errors.Is(err, session.ErrNotReviewable),
		errors.Is(err, session.ErrNoUser),
		errors.Is(err, checkout.ErrInvalidTransition),
		errors.Is(err, registration.ErrWrongStep):
		writeJSON(w, r, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		log.Printf("HTTP: %s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, r, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// decode reads a JSON body into v and runs its validate tags.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &validation.Error{Kind: validation.MalformedField, Message: "invalid JSON body"}
	}
	return validation.Struct(v)
}
