package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// CreateProductRequest is the POST /products body. Price accepts a JSON
// number or a numeric string.
type CreateProductRequest struct {
	Name     string `json:"name"`
	Price    any    `json:"price"`
	Category string `json:"category"`
}

// ListProducts returns every product, newest first
func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products")
		h.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"data":  products,
		"count": len(products),
	})
}

// CreateProduct validates and inserts a product
func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	name, err := ValidateRequired(req.Name, "name")
	if err != nil {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	category, err := ValidateRequired(req.Category, "category")
	if err != nil {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	price, err := ParsePrice(req.Price)
	if err != nil {
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	product, err := h.store.CreateProduct(r.Context(), name, price, category)
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("Failed to create product")
		h.jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Info().Int64("id", product.ID).Str("category", product.Category).Msg("Product created")
	h.writeJSON(w, http.StatusCreated, map[string]any{
		"data":    product,
		"message": "Product created successfully",
	})
}

// ProductsByCategory lists products in one category, cheapest first
func (h *Handlers) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := DecodeSegment(chi.URLParam(r, "category"))
	if category == "" {
		h.jsonError(w, "Category is required", http.StatusBadRequest)
		return
	}

	products, err := h.store.ListProductsByCategory(r.Context(), category)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("Failed to list products by category")
		h.jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"data":     products,
		"count":    len(products),
		"category": category,
	})
}
