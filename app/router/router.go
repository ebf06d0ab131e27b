package router

import (
	"net/http"
	"strings"

	"soluciones-ferreteras/app/controller"
)

type Controllers struct {
	Catalog *controller.CatalogController
	Cart    *controller.CartController
	Quote   *controller.QuoteController
	Price   *controller.PriceController
	Photo   *controller.PhotoController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Catalog routes
	http.HandleFunc("/catalog/products", controllers.Catalog.ListProducts)

	// Product by code, plus optimized image variant
	http.HandleFunc("/catalog/products/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/image") {
			controllers.Catalog.GetProductImage(w, r)
			return
		}
		controllers.Catalog.GetProduct(w, r)
	})

	// Cart routes
	http.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Cart.GetCart(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Cart.ClearCart(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Add item to cart
	http.HandleFunc("/cart/items", controllers.Cart.AddItem)

	// Update or remove a specific cart item
	http.HandleFunc("/cart/items/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut || r.Method == http.MethodPatch {
			controllers.Cart.UpdateItem(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Cart.RemoveItem(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Quote routes
	http.HandleFunc("/cart/whatsapp-url", controllers.Quote.WhatsAppURL)
	http.HandleFunc("/cart/quote-pdf", controllers.Quote.GeneratePDF)

	// Price admin routes
	http.HandleFunc("/admin/prices", controllers.Price.ListPrices)

	http.HandleFunc("/admin/prices/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			controllers.Price.SetPrice(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Price.DeletePrice(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Photo sync route
	http.HandleFunc("/admin/photos/sync", controllers.Photo.SyncPhotos)
}
