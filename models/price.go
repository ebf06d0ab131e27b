package models

// PriceEntry represents one productCode -> tax-inclusive price row.
// Prices are whole COP, no fractional subunits.
type PriceEntry struct {
	Code  string `json:"code"`
	Price int64  `json:"price"`
}

// SetPriceRequest represents the request body for creating or updating a price
// Example: {"price": 119000}
type SetPriceRequest struct {
	Price int64 `json:"price"`
}

// PriceListResponse represents the full price snapshot returned after every
// read or write, sorted by product code.
type PriceListResponse struct {
	Prices []PriceEntry `json:"prices"`
	Count  int          `json:"count"`
}
