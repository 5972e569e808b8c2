package domain

// CartLine is one hydrated cart row: a live product snapshot plus the
// session's quantity and the computed line total.
type CartLine struct {
	ProductID   int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageBase64 *string `json:"image_base64"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// OrderSummary is computed at checkout time and returned in the response.
// It is never persisted.
type OrderSummary struct {
	OrderID string     `json:"order_id"`
	Items   []CartLine `json:"items"`
	Total   float64    `json:"total"`
	Status  string     `json:"status"`
	Payment string     `json:"payment"`
	Address string     `json:"address"`
}
