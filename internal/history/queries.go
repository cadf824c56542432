package history

import (
	"context"
	"errors"

	"github.com/webshop/order-history-service/internal/order"
)

// ErrNoSuchOrder is returned when the requested order is not in the current
// user's order list. An order owned by another user is indistinguishable
// from one that does not exist.
var ErrNoSuchOrder = errors.New("No such order found for this user.")

// Queries answers the read-only order history questions for one user.
// Repository failures are returned to the caller untouched.
type Queries struct {
	repo order.Repository
}

func NewQueries(repo order.Repository) *Queries {
	return &Queries{repo: repo}
}

// MyOrders lists the user's orders as summary rows. A user with no orders
// gets an empty, non-nil slice.
func (q *Queries) MyOrders(ctx context.Context, userID string) ([]OrderSummary, error) {
	orders, err := q.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, toSummary(o))
	}
	return summaries, nil
}

// Detail returns the detail view for one of the user's orders. The lookup
// goes through the same user-scoped list as MyOrders and filters locally,
// so ownership and existence collapse into a single ErrNoSuchOrder outcome.
func (q *Queries) Detail(ctx context.Context, userID string, orderID int64) (OrderDetail, error) {
	orders, err := q.repo.ListByUser(ctx, userID)
	if err != nil {
		return OrderDetail{}, err
	}

	for _, o := range orders {
		if o.ID == orderID {
			return toDetail(o), nil
		}
	}
	return OrderDetail{}, ErrNoSuchOrder
}
