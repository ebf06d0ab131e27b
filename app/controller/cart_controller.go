package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"soluciones-ferreteras/cart"
	"soluciones-ferreteras/models"
)

// cartSessionCookie identifies one browsing session's quote cart
const cartSessionCookie = "sf_cart_session"

// CartController handles HTTP requests for the quote cart
type CartController struct {
	carts *cart.Manager
}

// NewCartController creates a new CartController
func NewCartController(carts *cart.Manager) *CartController {
	return &CartController{carts: carts}
}

// session returns the cart store for the request's session, issuing the
// session cookie on first contact.
func (c *CartController) session(w http.ResponseWriter, r *http.Request) (*cart.Store, error) {
	var sessionID string
	if cookie, err := r.Cookie(cartSessionCookie); err == nil && cookie.Value != "" {
		sessionID = cookie.Value
	} else {
		sessionID = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     cartSessionCookie,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 180,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	store, err := c.carts.Get(sessionID)
	if err != nil {
		// A tampered cookie gets a fresh session instead of an error
		sessionID = uuid.NewString()
		http.SetCookie(w, &http.Cookie{
			Name:     cartSessionCookie,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 180,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.carts.Get(sessionID)
	}
	return store, nil
}

func (c *CartController) writeCart(w http.ResponseWriter, store *cart.Store) {
	response := models.CartResponse{
		Items:     store.Items(),
		ItemCount: store.ItemCount(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("❌ Cart: error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// GetCart handles GET /cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	store, err := c.session(w, r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to open cart: %v", err), http.StatusInternalServerError)
		return
	}
	c.writeCart(w, store)
}

// AddItem handles POST /cart/items
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ AddItem: failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.ProductCode) == "" {
		http.Error(w, "productCode cannot be empty", http.StatusBadRequest)
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	store, err := c.session(w, r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to open cart: %v", err), http.StatusInternalServerError)
		return
	}

	store.Add(models.CartProduct{
		ProductCode: req.ProductCode,
		ProductName: req.ProductName,
		ImageRef:    req.ImageRef,
	}, quantity)

	log.Printf("🛒 AddItem: %s x%d (cart now %d items)", req.ProductCode, quantity, store.ItemCount())
	c.writeCart(w, store)
}

// UpdateItem handles PUT /cart/items/:code
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPatch {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	if code == "" {
		http.Error(w, "code parameter is required", http.StatusBadRequest)
		return
	}

	var req models.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	store, err := c.session(w, r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to open cart: %v", err), http.StatusInternalServerError)
		return
	}

	store.UpdateQuantity(code, req.Quantity)
	c.writeCart(w, store)
}

// RemoveItem handles DELETE /cart/items/:code
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	if code == "" {
		http.Error(w, "code parameter is required", http.StatusBadRequest)
		return
	}

	store, err := c.session(w, r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to open cart: %v", err), http.StatusInternalServerError)
		return
	}

	store.Remove(code)
	c.writeCart(w, store)
}

// ClearCart handles DELETE /cart
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	store, err := c.session(w, r)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to open cart: %v", err), http.StatusInternalServerError)
		return
	}

	store.Clear()
	c.writeCart(w, store)
}
