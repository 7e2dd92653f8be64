package types

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestNewInitiatePaymentRequestFromContextTrimsFields(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("POST", "/sslCommerce", bytes.NewBufferString(`{"data":{"price":500,"items":[" meal-plan-A ","",""],"email":" resident@hall.example ","name":" Resident One ","foodId":" food-1 "}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	parsed, err := NewInitiatePaymentRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Data.Email != "resident@hall.example" {
		t.Fatalf("expected trimmed email, got %q", parsed.Data.Email)
	}
	if len(parsed.Data.Items) != 1 || parsed.Data.Items[0] != "meal-plan-A" {
		t.Fatalf("expected empty items dropped, got %+v", parsed.Data.Items)
	}
	if parsed.Data.FoodID != "food-1" {
		t.Fatalf("expected trimmed foodId, got %q", parsed.Data.FoodID)
	}
}

func TestInitiatePaymentValidate(t *testing.T) {
	req := &InitiatePaymentRequest{}
	if err := req.Validate(); err == nil {
		t.Fatal("expected price validation error")
	}

	req.Data.Price = 500
	if err := req.Validate(); err == nil {
		t.Fatal("expected items validation error")
	}

	req.Data.Items = []string{"meal-plan-A"}
	if err := req.Validate(); err == nil {
		t.Fatal("expected email validation error")
	}

	req.Data.Email = "resident@hall.example"
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestNewGatewayCallbackRequestFromContext(t *testing.T) {
	e := echo.New()
	body := "tran_id=tran-1&status=VALID&val_id=val-1&amount=500.00"
	req := httptest.NewRequest("POST", "/success-payment", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	parsed, err := NewGatewayCallbackRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.TranID != "tran-1" || parsed.Status != "VALID" || parsed.ValID != "val-1" {
		t.Fatalf("unexpected parse: %+v", parsed)
	}
	if parsed.Values.Get("amount") != "500.00" {
		t.Fatal("expected raw form values to be retained")
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("expected valid callback, got %v", err)
	}
}

func TestGatewayCallbackValidateRequiresTranID(t *testing.T) {
	req := &GatewayCallbackRequest{}
	if err := req.Validate(); err == nil {
		t.Fatal("expected tran_id validation error")
	}
}

func TestGatewayCallbackPayloadJSON(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("POST", "/success-payment", strings.NewReader("tran_id=tran-1&status=VALID"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	parsed, err := NewGatewayCallbackRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(parsed.PayloadJSON()), &fields); err != nil {
		t.Fatalf("payload is not valid json: %v", err)
	}
	if fields["tran_id"] != "tran-1" || fields["status"] != "VALID" {
		t.Fatalf("unexpected payload fields: %+v", fields)
	}
}
