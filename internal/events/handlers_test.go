package events

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webshop/order-history-service/internal/order"
)

type fakeEventRepo struct {
	createFunc   func(ctx context.Context, o *order.Order) error
	createdOrder *order.Order
}

func (f *fakeEventRepo) Create(ctx context.Context, o *order.Order) error {
	f.createdOrder = o
	if f.createFunc != nil {
		return f.createFunc(ctx, o)
	}
	return nil
}

func (f *fakeEventRepo) ListByUser(ctx context.Context, userID string) ([]order.Order, error) {
	return nil, nil
}

func TestHandleCheckoutCompleted_RecordsOrder(t *testing.T) {
	repo := &fakeEventRepo{}
	handler := CheckoutCompletedHandler(repo, log.New(io.Discard, "", 0))

	body := []byte(`{
		"eventType": "CheckoutCompleted",
		"userId": "alice@example.com",
		"shipTo": {"name": "Alice", "line1": "1 Main St", "city": "Springfield", "zip": "12345", "country": "US"},
		"items": [{"productId": "p1", "productName": "Mug", "imageUrl": "/img/mug.png", "quantity": 2, "price": 10.5}],
		"totalAmount": 21.0,
		"timestamp": "2024-03-01T12:00:00Z"
	}`)

	require.NoError(t, handler(context.Background(), body))

	require.NotNil(t, repo.createdOrder)
	assert.Equal(t, "alice@example.com", repo.createdOrder.UserID)
	assert.Equal(t, order.StatusPending, repo.createdOrder.Status)
	assert.Equal(t, "Alice", repo.createdOrder.ShipTo.Name)
	require.Len(t, repo.createdOrder.Items, 1)
	assert.Equal(t, "p1", repo.createdOrder.Items[0].ProductID)
	assert.Equal(t, 2, repo.createdOrder.Items[0].Quantity)
	assert.Equal(t, 21.0, repo.createdOrder.TotalAmount)
}

func TestHandleCheckoutCompleted_CreateError(t *testing.T) {
	repo := &fakeEventRepo{
		createFunc: func(ctx context.Context, o *order.Order) error {
			return errors.New("insert failed")
		},
	}
	handler := CheckoutCompletedHandler(repo, log.New(io.Discard, "", 0))

	body := []byte(`{"userId":"alice@example.com","items":[],"totalAmount":0,"timestamp":"2024-03-01T12:00:00Z"}`)

	err := handler(context.Background(), body)
	require.Error(t, err)
}

func TestHandleCheckoutCompleted_BadJSON(t *testing.T) {
	repo := &fakeEventRepo{}
	handler := CheckoutCompletedHandler(repo, log.New(io.Discard, "", 0))

	err := handler(context.Background(), []byte(`{not json`))
	require.Error(t, err)
	assert.Nil(t, repo.createdOrder)
}
