package order

type Status string

const (
	StatusPending       Status = "pending"
	StatusPaymentFailed Status = "payment_failed"
	StatusCompleted     Status = "completed"
	StatusCancelled     Status = "cancelled"
)

// Label returns the display form used in order history views.
// Freshly recorded orders are pending, so they render as "Pending".
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusPaymentFailed:
		return "Payment failed"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}
