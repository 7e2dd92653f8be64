//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hallworks/ms-go-hall/app/types"
)

const defaultHallHTTPBase = "http://localhost:48080"

func hallHTTPBase() string {
	if value := strings.TrimSpace(os.Getenv("HALL_E2E_HTTP_BASE")); value != "" {
		return value
	}
	return defaultHallHTTPBase
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

func newHTTPClient(baseURL string) *httpClient {
	return &httpClient{
		baseURL: baseURL,
		client:  noFollowClient(),
	}
}

// noFollowClient keeps gateway callback redirects observable instead of
// chasing them into the frontend.
func noFollowClient() *http.Client {
	return &http.Client{
		Timeout: 10 * time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (c *httpClient) doJSON(t *testing.T, method, path string, body any, token string) (*http.Response, []byte) {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal failed: %v", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		t.Fatalf("new request failed: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		t.Fatalf("http request failed: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response failed: %v", err)
	}

	return resp, bodyBytes
}

func (c *httpClient) doForm(t *testing.T, path string, values url.Values) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, strings.NewReader(values.Encode()))
	if err != nil {
		t.Fatalf("new request failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		t.Fatalf("http request failed: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response failed: %v", err)
	}

	return resp, bodyBytes
}

func waitForHTTP(baseURL string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 2 * time.Second}
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("http service not ready at %s", baseURL)
}

func TestMain(m *testing.M) {
	if err := waitForHTTP(hallHTTPBase(), 30*time.Second); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func uniqueEmail() string {
	return fmt.Sprintf("e2e-%d@hall.example", time.Now().UnixNano())
}

func TestHealthAndRoot(t *testing.T) {
	client := newHTTPClient(hallHTTPBase())

	resp, _ := client.doJSON(t, http.MethodGet, "/health", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", resp.StatusCode)
	}

	resp, body := client.doJSON(t, http.MethodGet, "/", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestAccountLifecycle(t *testing.T) {
	client := newHTTPClient(hallHTTPBase())
	email := uniqueEmail()

	resp, body := client.doJSON(t, http.MethodPost, "/users", map[string]string{
		"email": email,
		"name":  "E2E Resident",
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 creating account, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = client.doJSON(t, http.MethodPost, "/users", map[string]string{
		"email": email,
		"name":  "E2E Resident",
	}, "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate account, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestJWTAndProtectedRoutes(t *testing.T) {
	client := newHTTPClient(hallHTTPBase())

	resp, body := client.doJSON(t, http.MethodGet, "/users", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = client.doJSON(t, http.MethodPost, "/jwt", map[string]string{
		"email": uniqueEmail(),
		"role":  "user",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 minting token, got %d: %s", resp.StatusCode, string(body))
	}
	var tokenResp types.TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		t.Fatalf("decode token response failed: %v", err)
	}

	resp, body = client.doJSON(t, http.MethodGet, "/users", nil, tokenResp.Token)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for user role, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = client.doJSON(t, http.MethodPost, "/jwt", map[string]string{
		"email": uniqueEmail(),
		"role":  "manager",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 minting manager token, got %d: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		t.Fatalf("decode token response failed: %v", err)
	}

	resp, body = client.doJSON(t, http.MethodGet, "/users", nil, tokenResp.Token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for manager role, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestPaymentHistoryForUnknownEmail(t *testing.T) {
	client := newHTTPClient(hallHTTPBase())

	resp, body := client.doJSON(t, http.MethodGet, "/find-food-id?email="+url.QueryEscape(uniqueEmail()), nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown email, got %d: %s", resp.StatusCode, string(body))
	}

	var history types.PaymentHistoryResponse
	if err := json.Unmarshal(body, &history); err != nil {
		t.Fatalf("decode history failed: %v", err)
	}
	if history.Success {
		t.Fatal("expected success=false for unknown email")
	}
}

func TestGatewayCallbackForUnknownTransaction(t *testing.T) {
	client := newHTTPClient(hallHTTPBase())

	values := url.Values{}
	values.Set("tran_id", fmt.Sprintf("e2e-missing-%d", time.Now().UnixNano()))
	values.Set("status", "VALID")

	resp, body := client.doForm(t, "/success-payment", values)
	// 400 when callback verification is enabled, 404 when it is off and the
	// record is simply missing.
	if resp.StatusCode != http.StatusNotFound && resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 404 or 400, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestComplaintsAndNotices(t *testing.T) {
	client := newHTTPClient(hallHTTPBase())

	resp, body := client.doJSON(t, http.MethodPost, "/complaints", map[string]string{
		"email":   uniqueEmail(),
		"subject": "Broken fan",
		"details": "The ceiling fan in room 204 stopped working.",
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 creating complaint, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = client.doJSON(t, http.MethodGet, "/complaints", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 listing complaints, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = client.doJSON(t, http.MethodGet, "/notice", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 listing notices, got %d: %s", resp.StatusCode, string(body))
	}
}
