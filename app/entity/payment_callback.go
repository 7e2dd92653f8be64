package entity

import "time"

const (
	PaymentCallbackStatusProcessed int32 = 10
	PaymentCallbackStatusRejected  int32 = 20
)

// PaymentCallback logs every inbound gateway notification, including the
// ones that were rejected, keyed by the transaction id the gateway sent.
type PaymentCallback struct {
	ID uint64

	PaymentID *uint64

	Endpoint    string
	TranID      string
	PayloadJSON string
	Status      int32
	Error       *string

	CreatedAt time.Time
}
