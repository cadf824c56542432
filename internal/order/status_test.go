package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Label())
	assert.Equal(t, "Payment failed", StatusPaymentFailed.Label())
	assert.Equal(t, "Completed", StatusCompleted.Label())
	assert.Equal(t, "Cancelled", StatusCancelled.Label())
	assert.Equal(t, "weird", Status("weird").Label())
}
