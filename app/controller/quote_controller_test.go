package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"soluciones-ferreteras/cart"
	"soluciones-ferreteras/models"
)

// fakePriceRepository serves a fixed price snapshot without a database.
type fakePriceRepository struct {
	prices map[string]int64
}

func (f *fakePriceRepository) EnsureSchema(ctx context.Context) error { return nil }

func (f *fakePriceRepository) GetAll(ctx context.Context) (map[string]int64, error) {
	return f.prices, nil
}

func (f *fakePriceRepository) List(ctx context.Context) ([]models.PriceEntry, error) {
	return nil, nil
}

func (f *fakePriceRepository) Upsert(ctx context.Context, code string, price int64) error {
	return nil
}

func (f *fakePriceRepository) Delete(ctx context.Context, code string) error { return nil }

// fakeRenderer returns a fixed payload instead of driving a browser.
type fakeRenderer struct {
	lastDoc models.QuoteDocument
}

func (f *fakeRenderer) RenderPDF(ctx context.Context, doc models.QuoteDocument) ([]byte, error) {
	f.lastDoc = doc
	return []byte("%PDF-1.4 fake"), nil
}

func testQuoteController(t *testing.T) (*QuoteController, string) {
	t.Helper()
	manager := cart.NewManager(t.TempDir())

	sessionID := "0f0f0f0f-0000-0000-0000-000000000001"
	store, err := manager.Get(sessionID)
	if err != nil {
		t.Fatalf("failed to open cart store: %v", err)
	}
	store.Add(models.CartProduct{
		ProductCode: "LE-002",
		ProductName: "Llave de Empotrar Doble",
		ImageRef:    "/images/LE-002-1.jpg",
	}, 2)

	c := NewQuoteController(manager, &fakePriceRepository{prices: map[string]int64{"LE-002": 119000}}, &fakeRenderer{})
	return c, sessionID
}

func TestGeneratePDFAcceptsEmptyBody(t *testing.T) {
	c, sessionID := testQuoteController(t)

	r := httptest.NewRequest(http.MethodPost, "/cart/quote-pdf", nil)
	r.AddCookie(&http.Cookie{Name: "sf_cart_session", Value: sessionID})
	w := httptest.NewRecorder()
	c.GeneratePDF(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 for an empty body, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", got)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "cotizacion-soluciones-ferreteras-") {
		t.Fatalf("unexpected Content-Disposition %q", got)
	}
}

func TestGeneratePDFRejectsMalformedBody(t *testing.T) {
	c, sessionID := testQuoteController(t)

	r := httptest.NewRequest(http.MethodPost, "/cart/quote-pdf", strings.NewReader(`{not json`))
	r.AddCookie(&http.Cookie{Name: "sf_cart_session", Value: sessionID})
	w := httptest.NewRecorder()
	c.GeneratePDF(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed JSON, got %d", w.Code)
	}
}

func TestGeneratePDFEmptyCart(t *testing.T) {
	manager := cart.NewManager(t.TempDir())
	c := NewQuoteController(manager, &fakePriceRepository{}, &fakeRenderer{})

	r := httptest.NewRequest(http.MethodPost, "/cart/quote-pdf", nil)
	w := httptest.NewRecorder()
	c.GeneratePDF(w, r)

	if w.Code != http.StatusConflict {
		t.Fatalf("expected status 409 for an empty cart, got %d", w.Code)
	}
}
