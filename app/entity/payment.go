package entity

import "time"

const (
	PaymentStatusPending   = "pending"
	PaymentStatusSuccess   = "success"
	PaymentStatusFailed    = "failed"
	PaymentStatusCancelled = "cancelled"
)

// Payment correlates a gateway initiation with its eventual callback via
// PaymentID. Rows are kept as an audit trail; the only transition allowed
// is pending to one of the terminal states.
type Payment struct {
	ID uint64

	PaymentID string
	FoodID    *string
	Email     string
	Price     float64

	Status string

	// VerifyToken is a 6-digit code handed to the customer at initiation.
	VerifyToken int32

	CheckoutURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func TerminalPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusSuccess, PaymentStatusFailed, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}
