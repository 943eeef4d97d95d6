package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/saltyorg/duckapi/internal/database"
	"github.com/saltyorg/duckapi/internal/maintenance"
	"github.com/saltyorg/duckapi/internal/normalize"
)

// maxBodyBytes caps JSON request bodies
const maxBodyBytes = 1 << 20

// VersionInfo holds application version information
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Handlers contains all HTTP handlers
type Handlers struct {
	store       database.Store
	scheduler   *maintenance.Scheduler
	versionInfo VersionInfo
	now         func() time.Time
}

// New creates a new Handlers instance
func New(store database.Store) *Handlers {
	return &Handlers{
		store:       store,
		versionInfo: VersionInfo{Version: "dev", Commit: "none", Date: "unknown"},
		now:         time.Now,
	}
}

// SetVersionInfo sets the application version information
func (h *Handlers) SetVersionInfo(version, commit, date string) {
	h.versionInfo = VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// NotFound answers every unmatched method and path
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.jsonError(w, "Not found", http.StatusNotFound)
}

// timestamp returns the current time in the API's ISO-8601 form
func (h *Handlers) timestamp() string {
	return normalize.Timestamp(h.now())
}

// writeJSON sends v as a JSON response with the given status
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// jsonError sends a JSON error response
func (h *Handlers) jsonError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a JSON request body into v. On failure it writes a 400
// response and returns false.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Debug().Err(err).Msg("Failed to decode request body")
		h.jsonError(w, "Invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}
