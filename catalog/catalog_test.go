package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProductsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write products file: %v", err)
	}
	return path
}

func TestLoadCatalog(t *testing.T) {
	path := writeProductsFile(t, `[
		{"id":"1","code":"LE-002","name":"Llave de Empotrar Doble","description":"","images":["/images/LE-002-1.jpg"]},
		{"id":"2","code":"FT2011B","name":"Ducha Sencilla Cromada","description":"","images":["/images/FT2011B-1.jpg"]}
	]`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := len(cat.All()); got != 2 {
		t.Fatalf("expected 2 products, got %d", got)
	}

	p, ok := cat.ByCode("LE-002")
	if !ok {
		t.Fatal("expected LE-002 in catalog")
	}
	if p.Name != "Llave de Empotrar Doble" {
		t.Fatalf("unexpected product name %q", p.Name)
	}

	if _, ok := cat.ByCode("NO-SUCH"); ok {
		t.Fatal("unknown code must not resolve")
	}
}

func TestLoadCatalogPreservesFileOrder(t *testing.T) {
	path := writeProductsFile(t, `[
		{"id":"1","code":"B-1","name":"B","images":["/images/B-1-1.jpg"]},
		{"id":"2","code":"A-1","name":"A","images":["/images/A-1-1.jpg"]}
	]`)

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	all := cat.All()
	if all[0].Code != "B-1" || all[1].Code != "A-1" {
		t.Fatalf("expected file order preserved, got %q then %q", all[0].Code, all[1].Code)
	}
}

func TestLoadCatalogRejectsMissingCode(t *testing.T) {
	path := writeProductsFile(t, `[{"id":"1","code":"","name":"Sin código","images":[]}]`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for product without a code")
	}
}

func TestLoadCatalogRejectsDuplicateCodes(t *testing.T) {
	path := writeProductsFile(t, `[
		{"id":"1","code":"LE-002","name":"Primera","images":[]},
		{"id":"2","code":"LE-002","name":"Segunda","images":[]}
	]`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for duplicate product code")
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing products file")
	}
}
