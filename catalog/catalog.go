package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"soluciones-ferreteras/models"
)

// Catalog holds the product list loaded from the products data file. The
// file is the output of the photo/description pipeline; the catalog itself
// is read-only at runtime.
type Catalog struct {
	products []models.Product
	byCode   map[string]models.Product
}

// Load reads and validates the products JSON file
func Load(dataPath string) (*Catalog, error) {
	if !filepath.IsAbs(dataPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		dataPath = filepath.Join(wd, dataPath)
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read products file: %w", err)
	}

	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse products file: %w", err)
	}

	byCode := make(map[string]models.Product, len(products))
	for _, p := range products {
		if p.Code == "" {
			return nil, fmt.Errorf("invalid products file: product %q has no code", p.ID)
		}
		if _, dup := byCode[p.Code]; dup {
			return nil, fmt.Errorf("invalid products file: duplicate product code %s", p.Code)
		}
		if len(p.Images) == 0 {
			log.Printf("⚠️  Catalog: product %s has no images", p.Code)
		}
		byCode[p.Code] = p
	}

	log.Printf("✅ Catalog: loaded %d products from %s", len(products), dataPath)
	return &Catalog{products: products, byCode: byCode}, nil
}

// All returns every product in file order
func (c *Catalog) All() []models.Product {
	return c.products
}

// ByCode returns the product with the given code
func (c *Catalog) ByCode(code string) (models.Product, bool) {
	p, ok := c.byCode[code]
	return p, ok
}
