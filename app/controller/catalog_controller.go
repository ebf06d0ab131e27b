package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"soluciones-ferreteras/catalog"
	"soluciones-ferreteras/service"
)

// CatalogController handles HTTP requests for catalog browsing
type CatalogController struct {
	catalog   *catalog.Catalog
	imagesDir string
}

// NewCatalogController creates a new CatalogController serving product
// images from imagesDir
func NewCatalogController(cat *catalog.Catalog, imagesDir string) *CatalogController {
	return &CatalogController{
		catalog:   cat,
		imagesDir: imagesDir,
	}
}

// ListProducts handles GET /catalog/products
func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(c.catalog.All()); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetProduct handles GET /catalog/products/:code
func (c *CatalogController) GetProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := strings.TrimPrefix(r.URL.Path, "/catalog/products/")
	if code == "" {
		http.Error(w, "code parameter is required", http.StatusBadRequest)
		return
	}

	product, ok := c.catalog.ByCode(code)
	if !ok {
		http.Error(w, fmt.Sprintf("Product not found: %s", code), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(product); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// GetProductImage handles GET /catalog/products/:code/image?n=1&size=thumb|medium
// Serves the n-th gallery image optimized for the requested size, with a disk cache.
func (c *CatalogController) GetProductImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/catalog/products/")
	code := strings.TrimSuffix(path, "/image")
	if code == "" || code == path {
		http.Error(w, "code parameter is required", http.StatusBadRequest)
		return
	}

	product, ok := c.catalog.ByCode(code)
	if !ok {
		http.Error(w, fmt.Sprintf("Product not found: %s", code), http.StatusNotFound)
		return
	}

	n := 1
	if nParam := r.URL.Query().Get("n"); nParam != "" {
		parsed, err := strconv.Atoi(nParam)
		if err != nil || parsed < 1 {
			http.Error(w, "n must be a positive integer", http.StatusBadRequest)
			return
		}
		n = parsed
	}
	if n > len(product.Images) {
		http.Error(w, fmt.Sprintf("Product %s has no image %d", code, n), http.StatusNotFound)
		return
	}

	// size feeds the cache file path; only known values pass
	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}
	validSizes := map[string]bool{"thumb": true, "medium": true}
	if !validSizes[size] {
		http.Error(w, "size must be 'thumb' or 'medium'", http.StatusBadRequest)
		return
	}

	// Serve from cache when possible
	cachePath := service.GetCachePath(code, n, size)
	if service.CacheExists(cachePath) {
		data, err := service.ReadFromCache(cachePath)
		if err == nil {
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write(data)
			return
		}
		log.Printf("⚠️  GetProductImage: cache read failed for %s: %v", cachePath, err)
	}

	// Image refs are public paths like /images/FT2011B-1.jpg
	imageRef := product.Images[n-1]
	imagePath := filepath.Join(c.imagesDir, filepath.Base(imageRef))
	data, err := os.ReadFile(imagePath)
	if err != nil {
		log.Printf("❌ GetProductImage: failed to read %s: %v", imagePath, err)
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}

	optimized, err := service.OptimizeImage(data, size)
	if err != nil {
		log.Printf("❌ GetProductImage: failed to optimize %s: %v", imagePath, err)
		http.Error(w, "Failed to process image", http.StatusInternalServerError)
		return
	}

	if err := service.SaveToCache(cachePath, optimized); err != nil {
		// Non-fatal: serve the optimized image anyway
		log.Printf("⚠️  GetProductImage: cache write failed for %s: %v", cachePath, err)
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(optimized)
}
