package quote

import (
	"strings"
	"testing"
	"time"

	"soluciones-ferreteras/models"
)

func testRenderer() *ChromeRenderer {
	return NewChromeRenderer("../templates/quote.html", "../static/quote")
}

func pricedDocument() models.QuoteDocument {
	items := []models.CartLineItem{
		{ProductCode: "LE-002", ProductName: "Llave de Empotrar Doble", Quantity: 2},
	}
	prices := map[string]int64{"LE-002": 119000}
	return BuildDocument(items, prices, models.QuoteClient{}, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
}

func TestRenderHTMLDocumentStructure(t *testing.T) {
	html, err := testRenderer().RenderHTML(pricedDocument())
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	for _, want := range []string{
		"SOLUCIONES FERRETERAS",
		"Remisión",
		"NIT: 98592727",
		"<thead>",
		"15/03/2026",
		"LE-002",
		"Llave de Empotrar Doble",
		"$119.000",
		"$238.000",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected rendered HTML to contain %q", want)
		}
	}
}

func TestRenderHTMLTotalsBlock(t *testing.T) {
	html, err := testRenderer().RenderHTML(pricedDocument())
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	for _, want := range []string{
		"Subtotal (sin IVA)",
		"IVA (19%)",
		"TOTAL (con IVA)",
		"$200.000",
		"$38.000",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected totals block to contain %q", want)
		}
	}
	if strings.Contains(html, "Precio no disponible") {
		t.Fatal("fully priced document must not show the unavailable-price row")
	}
}

func TestRenderHTMLOmitsTotalsWhenNoLineIsPriced(t *testing.T) {
	items := []models.CartLineItem{
		{ProductCode: "FT2011B", ProductName: "Ducha Sencilla Cromada", Quantity: 1},
	}
	doc := BuildDocument(items, map[string]int64{}, models.QuoteClient{}, time.Now())

	html, err := testRenderer().RenderHTML(doc)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	if strings.Contains(html, "TOTAL (con IVA)") {
		t.Fatal("expected totals block omitted when no line has a price")
	}
	if !strings.Contains(html, "Precio no disponible") {
		t.Fatal("expected the unavailable-price row")
	}
	if !strings.Contains(html, "no están incluidos en los totales") {
		t.Fatal("expected the unpriced-items disclaimer")
	}
}

func TestRenderHTMLClientFieldsOnlyWhenFilled(t *testing.T) {
	doc := pricedDocument()
	doc.Client = models.QuoteClient{Name: "Carlos Mejía", Phone: "3001234567"}

	html, err := testRenderer().RenderHTML(doc)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	if !strings.Contains(html, "Carlos Mejía") {
		t.Fatal("expected client name rendered")
	}
	if !strings.Contains(html, "3001234567") {
		t.Fatal("expected client phone rendered")
	}
	if strings.Contains(html, "Empresa") {
		t.Fatal("empty client fields must not render placeholder rows")
	}
}

func TestRenderHTMLBankBlock(t *testing.T) {
	html, err := testRenderer().RenderHTML(pricedDocument())
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	for _, want := range []string{
		"Bancolombia",
		"54949800256",
		"Juan Diego Pérez Zapata",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected bank block to contain %q", want)
		}
	}
}

func TestClientFieldsStableOrder(t *testing.T) {
	fields := clientFields(models.QuoteClient{
		Name:  "Carlos",
		NIT:   "900123456",
		Email: "carlos@example.com",
	})

	if len(fields) != 3 {
		t.Fatalf("expected 3 filled fields, got %d", len(fields))
	}
	if fields[0].Label != "Cliente" || fields[1].Label != "NIT" || fields[2].Label != "Email" {
		t.Fatalf("unexpected field order: %+v", fields)
	}
}
