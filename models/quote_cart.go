package models

// CartProduct identifies a product added to the quote cart (quantity lives on the line item)
type CartProduct struct {
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	ImageRef    string `json:"imageRef"`
}

// CartLineItem represents one product/quantity pairing inside a quote cart.
// Quantity is always kept within [1, 99].
type CartLineItem struct {
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	ImageRef    string `json:"imageRef"`
	Quantity    int    `json:"quantity"`
}

// AddCartItemRequest represents the request body for adding an item to the cart
// Example: {"productCode": "LE-002", "productName": "Llave de Empotrar Doble", "imageRef": "/images/LE-002-1.jpg", "quantity": 2}
type AddCartItemRequest struct {
	ProductCode string `json:"productCode"`
	ProductName string `json:"productName"`
	ImageRef    string `json:"imageRef"`
	Quantity    int    `json:"quantity"`
}

// UpdateCartItemRequest represents the request body for changing a line quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse represents the cart returned to the storefront
type CartResponse struct {
	Items     []CartLineItem `json:"items"`
	ItemCount int            `json:"itemCount"`
}
