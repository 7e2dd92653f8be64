package types

import (
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// InitiatePaymentRequest mirrors the SPA's envelope: the order payload rides
// under a "data" key.
type InitiatePaymentRequest struct {
	Data InitiatePaymentData `json:"data"`
}

type InitiatePaymentData struct {
	Price  float64  `json:"price"`
	Items  []string `json:"items"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Phone  string   `json:"phone"`
	FoodID string   `json:"foodId"`
}

func NewInitiatePaymentRequestFromContext(ctx echo.Context) (*InitiatePaymentRequest, error) {
	var body InitiatePaymentRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.Data.Email = strings.TrimSpace(body.Data.Email)
	body.Data.Name = strings.TrimSpace(body.Data.Name)
	body.Data.Phone = strings.TrimSpace(body.Data.Phone)
	body.Data.FoodID = strings.TrimSpace(body.Data.FoodID)

	items := make([]string, 0, len(body.Data.Items))
	for _, item := range body.Data.Items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	body.Data.Items = items

	return &body, nil
}

func (r *InitiatePaymentRequest) Validate() error {
	if r.Data.Price <= 0 {
		return errors.New("price must be > 0")
	}
	if len(r.Data.Items) == 0 {
		return errors.New("items must not be empty")
	}
	if r.Data.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

type InitiatePaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

// GatewayCallbackRequest carries an inbound gateway notification. The
// gateway posts form-encoded fields; Values keeps all of them so the
// signature can be verified over exactly what was sent.
type GatewayCallbackRequest struct {
	TranID string
	Status string
	ValID  string

	Values url.Values
}

func NewGatewayCallbackRequestFromContext(ctx echo.Context) (*GatewayCallbackRequest, error) {
	values, err := ctx.FormParams()
	if err != nil {
		return nil, err
	}

	return &GatewayCallbackRequest{
		TranID: strings.TrimSpace(values.Get("tran_id")),
		Status: strings.TrimSpace(values.Get("status")),
		ValID:  strings.TrimSpace(values.Get("val_id")),
		Values: values,
	}, nil
}

func (r *GatewayCallbackRequest) Validate() error {
	if r.TranID == "" {
		return errors.New("tran_id is required")
	}
	return nil
}

// PayloadJSON renders the callback fields for the audit log.
func (r *GatewayCallbackRequest) PayloadJSON() string {
	fields := make(map[string]string, len(r.Values))
	for key := range r.Values {
		fields[key] = r.Values.Get(key)
	}
	encoded, _ := json.Marshal(fields)
	return string(encoded)
}

type PaymentRecordResponse struct {
	PaymentID   string  `json:"paymentId"`
	FoodID      string  `json:"foodId,omitempty"`
	Email       string  `json:"email"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	VerifyToken int32   `json:"token"`
	CreatedAt   string  `json:"createdAt"`
}

// PaymentHistoryResponse keeps the SPA's field names for order history.
type PaymentHistoryResponse struct {
	Success  bool                     `json:"success"`
	FoodData []*PaymentRecordResponse `json:"foodData"`
}
