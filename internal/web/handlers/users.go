package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/saltyorg/duckapi/internal/database"
)

// CreateUserRequest is the POST /users body
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListUsers returns every user, newest first
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		h.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"data":  users,
		"count": len(users),
	})
}

// CreateUser inserts a user and returns the stored record
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	name, nameErr := ValidateRequired(req.Name, "name")
	email, emailErr := ValidateRequired(req.Email, "email")
	if nameErr != nil || emailErr != nil {
		h.jsonError(w, "Name and email are required", http.StatusBadRequest)
		return
	}

	user, err := h.store.CreateUser(r.Context(), name, email)
	if err != nil {
		if errors.Is(err, database.ErrConflict) {
			log.Debug().Err(err).Str("email", email).Msg("Rejected duplicate user")
			h.jsonError(w, "User with this email already exists", http.StatusConflict)
			return
		}
		log.Error().Err(err).Str("email", email).Msg("Failed to create user")
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Info().Int64("id", user.ID).Str("email", user.Email).Msg("User created")
	h.writeJSON(w, http.StatusCreated, map[string]any{
		"data":    user,
		"message": "User created successfully",
	})
}

// GetUser returns a single user by ID
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(chi.URLParam(r, "id"))
	if err != nil {
		h.jsonError(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.store.GetUser(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		h.jsonError(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("Failed to get user")
		h.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{"data": user})
}
