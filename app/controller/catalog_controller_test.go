package controller

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"soluciones-ferreteras/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	content := `[{"id":"1","code":"LE-002","name":"Llave de Empotrar Doble","description":"","images":["/images/LE-002-1.jpg"]}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write products file: %v", err)
	}
	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return cat
}

func TestGetProductImageRejectsUnknownSize(t *testing.T) {
	c := NewCatalogController(testCatalog(t), t.TempDir())

	for _, size := range []string{
		"../../../../tmp/evil",
		"..%2Fetc",
		"large",
	} {
		r := httptest.NewRequest(http.MethodGet, "/catalog/products/LE-002/image?size="+size, nil)
		w := httptest.NewRecorder()
		c.GetProductImage(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("size %q: expected status 400, got %d", size, w.Code)
		}
	}
}

func TestGetProductImageUnknownProduct(t *testing.T) {
	c := NewCatalogController(testCatalog(t), t.TempDir())

	r := httptest.NewRequest(http.MethodGet, "/catalog/products/NO-SUCH/image", nil)
	w := httptest.NewRecorder()
	c.GetProductImage(w, r)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
