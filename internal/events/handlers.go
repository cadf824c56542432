package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/webshop/order-history-service/internal/order"
)

// HandlerFunc processes one message body.
type HandlerFunc func(ctx context.Context, body []byte) error

// CheckoutCompletedHandler returns a handler for checkout.completed events.
// The purchase workflow lives elsewhere; this service only records the
// resulting order so it shows up in the owner's history.
func CheckoutCompletedHandler(repo order.Repository, logger *log.Logger) HandlerFunc {
	return func(ctx context.Context, body []byte) error {
		var ev CheckoutCompleted
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("unmarshal CheckoutCompleted: %w", err)
		}

		o := &order.Order{
			UserID:      ev.UserID,
			ShipTo:      ev.ShipTo,
			Status:      order.StatusPending,
			TotalAmount: ev.TotalAmount,
			OrderedAt:   ev.Timestamp,
		}

		for _, it := range ev.Items {
			o.Items = append(o.Items, order.Item{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				ImageURL:    it.ImageURL,
				Quantity:    it.Quantity,
				Price:       it.Price,
			})
		}

		if err := repo.Create(ctx, o); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		logger.Printf("recorded order %d for user %s", o.ID, o.UserID)
		return nil
	}
}
