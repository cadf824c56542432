package order

import "time"

type Item struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type Address struct {
	Name    string `json:"name"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type Order struct {
	ID          int64     `json:"orderId"`
	UserID      string    `json:"userId"`
	ShipTo      Address   `json:"shipTo"`
	Items       []Item    `json:"items"`
	Status      Status    `json:"status"`
	TotalAmount float64   `json:"totalAmount"`
	OrderedAt   time.Time `json:"orderedAt"`
}
