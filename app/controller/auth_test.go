package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hallworks/ms-go-hall/app/auth"
	"github.com/hallworks/ms-go-hall/app/types"
	"github.com/hallworks/ms-go-hall/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret: "test-secret",
		Issuer: "ms-go-hall",
		TTL:    time.Hour,
	}
}

func TestIssueTokenSetsCookie(t *testing.T) {
	e := echo.New()
	c := NewAuthController(testJWTConfig())

	req, rec := jsonRequest(http.MethodPost, "/jwt", `{"email":"resident@hall.example","name":"Resident One","role":"user"}`)

	if err := c.IssueToken(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp types.TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token in the response body")
	}

	claims, err := auth.ParseAccessToken(testJWTConfig(), resp.Token)
	if err != nil {
		t.Fatalf("issued token failed to parse: %v", err)
	}
	if claims.Email != "resident@hall.example" {
		t.Fatalf("unexpected email claim: %s", claims.Email)
	}

	cookie := findCookie(rec, "token")
	if cookie == nil {
		t.Fatal("expected a token cookie")
	}
	if !cookie.HttpOnly {
		t.Fatal("expected the token cookie to be httpOnly")
	}
	if cookie.Value != resp.Token {
		t.Fatal("expected cookie to carry the issued token")
	}
}

func TestIssueTokenRequiresEmail(t *testing.T) {
	e := echo.New()
	c := NewAuthController(testJWTConfig())

	req, rec := jsonRequest(http.MethodPost, "/jwt", `{"name":"Resident One"}`)

	if err := c.IssueToken(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	e := echo.New()
	c := NewAuthController(testJWTConfig())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()

	if err := c.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := findCookie(rec, "token")
	if cookie == nil {
		t.Fatal("expected a token cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected an expired empty cookie, got value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}

	var resp types.LogoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	if !resp.Success {
		t.Fatal("expected success=true")
	}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
