package history

import (
	"time"

	"github.com/webshop/order-history-service/internal/order"
)

// OrderSummary is one row in the user's order list.
type OrderSummary struct {
	OrderNumber int64     `json:"orderNumber"`
	OrderedAt   time.Time `json:"orderedAt"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"itemCount"`
	Total       float64   `json:"total"`
}

type OrderLine struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	ImageURL    string  `json:"imageUrl"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderDetail struct {
	OrderNumber int64         `json:"orderNumber"`
	OrderedAt   time.Time     `json:"orderedAt"`
	Status      string        `json:"status"`
	ShipTo      order.Address `json:"shipTo"`
	Lines       []OrderLine   `json:"lines"`
	Total       float64       `json:"total"`
}

// orderTotal is recomputed from the line items rather than read off the
// stored aggregate, so the view always equals unit price times quantity.
func orderTotal(o order.Order) float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func toSummary(o order.Order) OrderSummary {
	return OrderSummary{
		OrderNumber: o.ID,
		OrderedAt:   o.OrderedAt,
		Status:      o.Status.Label(),
		ItemCount:   len(o.Items),
		Total:       orderTotal(o),
	}
}

func toDetail(o order.Order) OrderDetail {
	lines := make([]OrderLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, OrderLine{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			ImageURL:    it.ImageURL,
			UnitPrice:   it.Price,
			Quantity:    it.Quantity,
			Subtotal:    it.Price * float64(it.Quantity),
		})
	}

	return OrderDetail{
		OrderNumber: o.ID,
		OrderedAt:   o.OrderedAt,
		Status:      o.Status.Label(),
		ShipTo:      o.ShipTo,
		Lines:       lines,
		Total:       orderTotal(o),
	}
}
