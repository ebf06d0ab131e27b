package quote

import (
	"testing"
	"time"

	"soluciones-ferreteras/models"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCalculateLineItemBackCalculatesIVA(t *testing.T) {
	line := CalculateLineItem("LE-002", "Llave de Empotrar Doble", 2, int64Ptr(119000))

	if line.UnitPriceBase != 100000 {
		t.Fatalf("expected base price 100000, got %d", line.UnitPriceBase)
	}
	if line.UnitPriceTax != 19000 {
		t.Fatalf("expected unit tax 19000, got %d", line.UnitPriceTax)
	}
	if line.LineTotalWithTax != 238000 {
		t.Fatalf("expected line total 238000, got %d", line.LineTotalWithTax)
	}
	if !line.HasPrice {
		t.Fatal("expected HasPrice true for a priced line")
	}
}

func TestCalculateLineItemBasePlusTaxEqualsPrice(t *testing.T) {
	// Prices that do not divide evenly by 1.19; the remainder must land in
	// the tax so the parts always reassemble the stored price exactly.
	prices := []int64{1, 99, 119, 1000, 35900, 47523, 119001, 999999}
	for _, p := range prices {
		line := CalculateLineItem("X", "X", 1, int64Ptr(p))
		if line.UnitPriceBase+line.UnitPriceTax != p {
			t.Fatalf("price %d: base %d + tax %d != %d", p, line.UnitPriceBase, line.UnitPriceTax, p)
		}
	}
}

func TestCalculateLineItemUnpriced(t *testing.T) {
	line := CalculateLineItem("LE-004", "Llave de Empotrar Individual", 3, nil)

	if line.HasPrice {
		t.Fatal("expected HasPrice false for a nil price")
	}
	if line.UnitPriceBase != 0 || line.UnitPriceTax != 0 || line.UnitPriceWithTax != 0 || line.LineTotalWithTax != 0 {
		t.Fatalf("expected zeroed monetary fields, got %+v", line)
	}
	if line.Quantity != 3 {
		t.Fatalf("expected quantity preserved, got %d", line.Quantity)
	}
}

func TestBuildDocumentTotals(t *testing.T) {
	items := []models.CartLineItem{
		{ProductCode: "LE-002", ProductName: "Llave de Empotrar Doble", Quantity: 2},
		{ProductCode: "LE-006", ProductName: "Mezclador de Cocina", Quantity: 1},
	}
	prices := map[string]int64{
		"LE-002": 119000,
		"LE-006": 238000,
	}

	doc := BuildDocument(items, prices, models.QuoteClient{}, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	if doc.TotalWithTax != 476000 {
		t.Fatalf("expected total with tax 476000, got %d", doc.TotalWithTax)
	}
	if doc.SubtotalBase != 400000 {
		t.Fatalf("expected subtotal 400000, got %d", doc.SubtotalBase)
	}
	if doc.TotalTax != 76000 {
		t.Fatalf("expected total tax 76000, got %d", doc.TotalTax)
	}
	if doc.SubtotalBase+doc.TotalTax != doc.TotalWithTax {
		t.Fatal("subtotal plus tax must equal the total")
	}
	if !doc.HasTotals {
		t.Fatal("expected HasTotals true")
	}
	if doc.HasUnpriced {
		t.Fatal("expected HasUnpriced false when every line is priced")
	}
}

func TestBuildDocumentExcludesUnpricedFromTotals(t *testing.T) {
	items := []models.CartLineItem{
		{ProductCode: "LE-002", ProductName: "Llave de Empotrar Doble", Quantity: 2},
		{ProductCode: "FT2011B", ProductName: "Ducha Sencilla Cromada", Quantity: 5},
	}
	prices := map[string]int64{"LE-002": 119000}

	doc := BuildDocument(items, prices, models.QuoteClient{}, time.Now())

	if len(doc.Items) != 2 {
		t.Fatalf("expected both lines in the document, got %d", len(doc.Items))
	}
	if doc.TotalWithTax != 238000 {
		t.Fatalf("expected unpriced line excluded from totals, got %d", doc.TotalWithTax)
	}
	if !doc.HasUnpriced {
		t.Fatal("expected HasUnpriced true")
	}
	if !doc.HasTotals {
		t.Fatal("expected HasTotals true while at least one line is priced")
	}
}

func TestBuildDocumentNoPricedLines(t *testing.T) {
	items := []models.CartLineItem{
		{ProductCode: "FT2011B", ProductName: "Ducha Sencilla Cromada", Quantity: 1},
	}

	doc := BuildDocument(items, map[string]int64{}, models.QuoteClient{}, time.Now())

	if doc.HasTotals {
		t.Fatal("expected HasTotals false when no line has a price")
	}
	if doc.SubtotalBase != 0 || doc.TotalTax != 0 || doc.TotalWithTax != 0 {
		t.Fatalf("expected zero totals, got %+v", doc)
	}
	if !doc.HasUnpriced {
		t.Fatal("expected HasUnpriced true")
	}
}
