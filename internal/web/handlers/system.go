package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/saltyorg/duckapi/internal/maintenance"
)

// Endpoint describes one route in the capability document
type Endpoint struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Endpoints is the fixed route table served by the API
var Endpoints = []Endpoint{
	{http.MethodGet, "/", "API capability document"},
	{http.MethodGet, "/health", "Engine health probe"},
	{http.MethodGet, "/stats", "Record counts and per-category price analytics"},
	{http.MethodGet, "/users", "List users, newest first"},
	{http.MethodPost, "/users", "Create a user (name, email)"},
	{http.MethodGet, "/users/:id", "Get a user by id"},
	{http.MethodGet, "/products", "List products, newest first"},
	{http.MethodPost, "/products", "Create a product (name, price, category)"},
	{http.MethodGet, "/products/category/:category", "List products in a category, cheapest first"},
}

// SetScheduler exposes checkpoint scheduler status on /health
func (h *Handlers) SetScheduler(s *maintenance.Scheduler) {
	h.scheduler = s
}

// Root serves the static capability document
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"name":      "DuckDB CRUD API",
		"version":   h.versionInfo.Version,
		"engine":    h.store.Engine(),
		"endpoints": Endpoints,
	})
}

// Health probes the engine with a stats query
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Health check failed")
		h.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status":    "unhealthy",
			"error":     err.Error(),
			"timestamp": h.timestamp(),
		})
		return
	}

	resp := map[string]any{
		"status":   "healthy",
		"engine":   h.store.Engine(),
		"database": "connected",
		"stats": map[string]int64{
			"users":    stats.TotalUsers,
			"products": stats.TotalProducts,
		},
		"timestamp": h.timestamp(),
	}
	if h.scheduler != nil {
		resp["checkpoint"] = h.scheduler.Status()
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// Stats returns aggregate counts and per-category analytics
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute stats")
		h.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}
