package gateway

import (
	"context"
	"net/url"
)

type InitiateInput struct {
	TranID   string
	Amount   float64
	Currency string

	Items []string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	SuccessURL string
	FailURL    string
	CancelURL  string
}

type InitiateOutput struct {
	// PaymentURL is the hosted page the customer is redirected to.
	PaymentURL string
	SessionKey string
}

type Gateway interface {
	Name() string
	CreateSession(ctx context.Context, input *InitiateInput) (*InitiateOutput, error)
	// VerifyCallback checks the authenticity of an inbound callback payload.
	VerifyCallback(values url.Values) error
}
