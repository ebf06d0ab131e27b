package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"soluciones-ferreteras/cart"
	"soluciones-ferreteras/models"
	"soluciones-ferreteras/quote"
	"soluciones-ferreteras/repository"
	"soluciones-ferreteras/utils"
)

// QuoteController handles quote submission: WhatsApp links and PDF generation
type QuoteController struct {
	carts    *cart.Manager
	prices   repository.PriceRepositoryInterface
	renderer quote.Renderer
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(carts *cart.Manager, prices repository.PriceRepositoryInterface, renderer quote.Renderer) *QuoteController {
	return &QuoteController{
		carts:    carts,
		prices:   prices,
		renderer: renderer,
	}
}

// cartStore resolves the request's session cart without issuing a cookie:
// quote actions on a session that never had a cart just see it empty.
func (c *QuoteController) cartStore(r *http.Request) (*cart.Store, error) {
	cookie, err := r.Cookie(cartSessionCookie)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}
	store, err := c.carts.Get(cookie.Value)
	if err != nil {
		return nil, nil
	}
	return store, nil
}

// WhatsAppURL handles GET /cart/whatsapp-url
// Returns the wa.me link for the current cart; 409 for an empty cart so the
// storefront performs no navigation.
func (c *QuoteController) WhatsAppURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var items []models.CartLineItem
	if store, _ := c.cartStore(r); store != nil {
		items = store.Items()
	}

	url := utils.GenerateWhatsAppURL(items)
	if url == "" {
		http.Error(w, "Cart is empty", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"url":     url,
		"message": utils.GenerateWhatsAppMessage(items),
	})
}

// GeneratePDF handles POST /cart/quote-pdf
// Builds the quote document from the current cart snapshot plus the latest
// price snapshot and streams the rendered PDF as a download. A failed attempt
// leaves the cart untouched and can be retried immediately.
func (c *QuoteController) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Client fields are optional; an empty body means an anonymous quote
	var req models.GenerateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	var items []models.CartLineItem
	if store, _ := c.cartStore(r); store != nil {
		items = store.Items()
	}
	if len(items) == 0 {
		http.Error(w, "Cart is empty", http.StatusConflict)
		return
	}

	// One immutable price snapshot per generation call
	prices, err := c.prices.GetAll(r.Context())
	if err != nil {
		log.Printf("❌ GeneratePDF: failed to load price snapshot: %v", err)
		http.Error(w, "Failed to load prices", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	doc := quote.BuildDocument(items, prices, req.Client, now)

	pdf, err := c.renderer.RenderPDF(r.Context(), doc)
	if err != nil {
		log.Printf("❌ GeneratePDF: rendering failed: %v", err)
		http.Error(w, "Failed to generate quote PDF", http.StatusInternalServerError)
		return
	}

	filename := utils.QuoteFileName(now)
	log.Printf("✅ GeneratePDF: %s (%d lines, %d bytes)", filename, len(doc.Items), len(pdf))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Write(pdf)
}
