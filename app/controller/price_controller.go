package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"soluciones-ferreteras/models"
	"soluciones-ferreteras/repository"
)

// PriceController handles the administrative price screen API
type PriceController struct {
	repository repository.PriceRepositoryInterface
}

// NewPriceController creates a new PriceController
func NewPriceController(repo repository.PriceRepositoryInterface) *PriceController {
	return &PriceController{repository: repo}
}

// writeSnapshot re-reads the full price list and returns it; every admin
// write is followed by this refresh so the client always sees the latest
// snapshot wholesale.
func (c *PriceController) writeSnapshot(w http.ResponseWriter, ctx context.Context) {
	entries, err := c.repository.List(ctx)
	if err != nil {
		log.Printf("❌ Prices: failed to refresh snapshot: %v", err)
		http.Error(w, "Failed to load prices", http.StatusInternalServerError)
		return
	}

	response := models.PriceListResponse{Prices: entries, Count: len(entries)}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// ListPrices handles GET /admin/prices
func (c *PriceController) ListPrices(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !authorizeAdmin(w, r) {
		return
	}

	c.writeSnapshot(w, r.Context())
}

// SetPrice handles PUT /admin/prices/:code
func (c *PriceController) SetPrice(w http.ResponseWriter, r *http.Request) {
	if !authorizeAdmin(w, r) {
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/admin/prices/")
	if code == "" {
		http.Error(w, "code parameter is required", http.StatusBadRequest)
		return
	}

	var req models.SetPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	// Whole COP only; zero or negative prices never reach the quote calculator
	if req.Price <= 0 {
		http.Error(w, "price must be a positive integer", http.StatusBadRequest)
		return
	}

	if err := c.repository.Upsert(r.Context(), code, req.Price); err != nil {
		log.Printf("❌ SetPrice: %v", err)
		http.Error(w, fmt.Sprintf("Failed to set price: %v", err), http.StatusInternalServerError)
		return
	}

	c.writeSnapshot(w, r.Context())
}

// DeletePrice handles DELETE /admin/prices/:code
func (c *PriceController) DeletePrice(w http.ResponseWriter, r *http.Request) {
	if !authorizeAdmin(w, r) {
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/admin/prices/")
	if code == "" {
		http.Error(w, "code parameter is required", http.StatusBadRequest)
		return
	}

	if err := c.repository.Delete(r.Context(), code); err != nil {
		log.Printf("❌ DeletePrice: %v", err)
		http.Error(w, fmt.Sprintf("Failed to delete price: %v", err), http.StatusInternalServerError)
		return
	}

	c.writeSnapshot(w, r.Context())
}
