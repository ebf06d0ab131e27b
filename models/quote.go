package models

import "time"

// QuoteClient holds the optional client information printed on a quote.
// Only fields the caller supplied are rendered.
type QuoteClient struct {
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	NIT     string `json:"nit,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// QuoteLineItem is a cart line with its tax breakdown, computed fresh per
// quote generation. All monetary values are integer COP (tax-inclusive prices
// as stored, base price back-calculated from the 19% IVA).
type QuoteLineItem struct {
	ProductCode      string `json:"productCode"`
	ProductName      string `json:"productName"`
	Quantity         int    `json:"quantity"`
	UnitPriceWithTax int64  `json:"unitPriceWithTax"`
	UnitPriceBase    int64  `json:"unitPriceBase"`
	UnitPriceTax     int64  `json:"unitPriceTax"`
	LineTotalWithTax int64  `json:"lineTotalWithTax"`
	HasPrice         bool   `json:"hasPrice"`
}

// QuoteDocument is the structured document model handed to the renderer.
// It exists only for the duration of one generation call.
type QuoteDocument struct {
	Client       QuoteClient     `json:"client"`
	Items        []QuoteLineItem `json:"items"`
	Date         time.Time       `json:"date"`
	SubtotalBase int64           `json:"subtotalBase"`
	TotalTax     int64           `json:"totalTax"`
	TotalWithTax int64           `json:"totalWithTax"`
	// HasTotals is false when no line has a known price; the rendered
	// document then omits the totals block entirely.
	HasTotals bool `json:"hasTotals"`
	// HasUnpriced is true when at least one line was excluded from totals.
	HasUnpriced bool `json:"hasUnpriced"`
}

// GenerateQuoteRequest represents the request body for quote PDF generation
// Example: {"client": {"name": "Juan Pérez", "phone": "+573001234567"}}
type GenerateQuoteRequest struct {
	Client QuoteClient `json:"client"`
}
