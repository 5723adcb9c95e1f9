package api

import (
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pizza-nz/backoffice-service/internal/logging"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// RespondJSON writes v as a JSON body with the given status
func RespondJSON(w http.ResponseWriter, status int, v any) {
	if v == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("failed to encode response")
	}
}

// Decode reads a JSON request body into v. Unknown fields are rejected.
func Decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		BadRequest(w, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// PathID returns the path segment after prefix; empty means the collection.
func PathID(r *http.Request, prefix string) string {
	return strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
}

// ParseID parses a record id, writing 400 when it is malformed
func ParseID(w http.ResponseWriter, raw string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		BadRequest(w, "invalid id")
		return primitive.NilObjectID, false
	}
	return id, true
}
