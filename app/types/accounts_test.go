package types

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestNewCreateAccountRequestFromContextNormalizes(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("POST", "/users", bytes.NewBufferString(`{"email":" Resident@Hall.Example ","name":" Resident One ","role":"USER"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	parsed, err := NewCreateAccountRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Email != "resident@hall.example" {
		t.Fatalf("expected lowercased email, got %q", parsed.Email)
	}
	if parsed.Role != "user" {
		t.Fatalf("expected lowercased role, got %q", parsed.Role)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestCreateAccountValidate(t *testing.T) {
	req := &CreateAccountRequest{}
	if err := req.Validate(); err == nil {
		t.Fatal("expected email validation error")
	}

	req.Email = "not-an-email"
	if err := req.Validate(); err == nil {
		t.Fatal("expected invalid email error")
	}

	req.Email = "resident@hall.example"
	if err := req.Validate(); err == nil {
		t.Fatal("expected name validation error")
	}

	req.Name = "Resident One"
	req.Role = "superadmin"
	if err := req.Validate(); err == nil {
		t.Fatal("expected role validation error")
	}
}

func TestNewUpdateAccountRoleRequestFromContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("PATCH", "/users/7/role", bytes.NewBufferString(`{"role":"Manager"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("id")
	ctx.SetParamValues("7")

	parsed, err := NewUpdateAccountRoleRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.ID != 7 || parsed.Role != "manager" {
		t.Fatalf("unexpected parse: %+v", parsed)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestUpdateAccountRoleValidateRejectsUnknownRole(t *testing.T) {
	req := &UpdateAccountRoleRequest{ID: 7, Role: "owner"}
	if err := req.Validate(); err == nil {
		t.Fatal("expected role validation error")
	}
}

func TestCreateNoticeValidate(t *testing.T) {
	req := &CreateNoticeRequest{}
	if err := req.Validate(); err == nil {
		t.Fatal("expected validation error")
	}

	req.Notice = "Water supply off on Friday"
	req.Date = "2025-06-06"
	if err := req.Validate(); err != nil {
		t.Fatalf("expected valid notice, got %v", err)
	}
}
