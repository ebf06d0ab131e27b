package models

// Product represents a catalog product loaded from the products data file
type Product struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}
