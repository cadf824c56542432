package events

import (
	"time"

	"github.com/webshop/order-history-service/internal/order"
)

type CheckoutItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type CheckoutCompleted struct {
	EventType   string         `json:"eventType"`
	UserID      string         `json:"userId"`
	ShipTo      order.Address  `json:"shipTo"`
	Items       []CheckoutItem `json:"items"`
	TotalAmount float64        `json:"totalAmount"`
	Timestamp   time.Time      `json:"timestamp"`
}
