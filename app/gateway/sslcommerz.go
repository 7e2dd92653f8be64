package gateway

import (
	"context"
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const sslcommerzSessionPath = "/gwprocess/v4/api.php"

// Gateway status tokens reported on callbacks.
const (
	SSLCommerzStatusValid     = "VALID"
	SSLCommerzStatusValidated = "VALIDATED"
	SSLCommerzStatusFailed    = "FAILED"
	SSLCommerzStatusCancelled = "CANCELLED"
)

// Placeholder contact/shipping values sent when the caller leaves the
// optional customer fields empty. The hosted page requires them; the store
// does not use them.
const (
	defaultCustomerName  = "Customer Name"
	defaultCustomerEmail = "customer@example.com"
	defaultCustomerPhone = "01711111111"
	defaultCustomerCity  = "Dhaka"
)

type SSLCommerzConfig struct {
	StoreID         string
	StorePasswd     string
	BaseURL         string
	HTTPTimeout     time.Duration
	RetryAttempts   int
	VerifyCallbacks bool
}

type SSLCommerzGateway struct {
	cfg    SSLCommerzConfig
	client *http.Client
}

func NewSSLCommerzGateway(cfg SSLCommerzConfig) *SSLCommerzGateway {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 1
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	return &SSLCommerzGateway{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

func (g *SSLCommerzGateway) Name() string {
	return "sslcommerz"
}

func (g *SSLCommerzGateway) CreateSession(ctx context.Context, input *InitiateInput) (*InitiateOutput, error) {
	if strings.TrimSpace(g.cfg.StoreID) == "" || strings.TrimSpace(g.cfg.StorePasswd) == "" {
		return nil, errors.New("sslcommerz store credentials are not configured")
	}
	if g.cfg.BaseURL == "" {
		return nil, errors.New("sslcommerz base url is not configured")
	}

	values := url.Values{}
	values.Set("store_id", g.cfg.StoreID)
	values.Set("store_passwd", g.cfg.StorePasswd)
	values.Set("total_amount", strconv.FormatFloat(input.Amount, 'f', 2, 64))
	values.Set("currency", input.Currency)
	values.Set("tran_id", input.TranID)
	values.Set("num_of_item", strconv.Itoa(len(input.Items)))
	values.Set("success_url", input.SuccessURL)
	values.Set("fail_url", input.FailURL)
	values.Set("cancel_url", input.CancelURL)
	values.Set("cus_name", defaultIfEmpty(input.CustomerName, defaultCustomerName))
	values.Set("cus_email", defaultIfEmpty(input.CustomerEmail, defaultCustomerEmail))
	values.Set("cus_phone", defaultIfEmpty(input.CustomerPhone, defaultCustomerPhone))
	values.Set("cus_add1", defaultCustomerCity)
	values.Set("cus_city", defaultCustomerCity)
	values.Set("cus_postcode", "1000")
	values.Set("cus_country", "Bangladesh")
	values.Set("shipping_method", "NO")
	values.Set("product_name", defaultIfEmpty(strings.Join(input.Items, ", "), "payment"))
	values.Set("product_category", "General")
	values.Set("product_profile", "general")

	body, err := g.postFormWithRetry(ctx, sslcommerzSessionPath, values)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Status         string `json:"status"`
		FailedReason   string `json:"failedreason"`
		SessionKey     string `json:"sessionkey"`
		GatewayPageURL string `json:"GatewayPageURL"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("sslcommerz session response decode failed: %w", err)
	}

	if !strings.EqualFold(strings.TrimSpace(payload.Status), "SUCCESS") {
		reason := strings.TrimSpace(payload.FailedReason)
		if reason == "" {
			reason = "gateway rejected the session"
		}
		return nil, fmt.Errorf("sslcommerz session rejected: %s", reason)
	}
	pageURL := strings.TrimSpace(payload.GatewayPageURL)
	if pageURL == "" {
		return nil, errors.New("sslcommerz session response is missing GatewayPageURL")
	}

	return &InitiateOutput{
		PaymentURL: pageURL,
		SessionKey: strings.TrimSpace(payload.SessionKey),
	}, nil
}

// VerifyCallback checks the gateway's verify_sign: an MD5 over the callback
// fields named in verify_key, in order, with md5(store_passwd) appended.
func (g *SSLCommerzGateway) VerifyCallback(values url.Values) error {
	if !g.cfg.VerifyCallbacks {
		return nil
	}

	verifySign := strings.ToLower(strings.TrimSpace(values.Get("verify_sign")))
	verifyKey := strings.TrimSpace(values.Get("verify_key"))
	if verifySign == "" || verifyKey == "" {
		return errors.New("callback is missing verify_sign or verify_key")
	}

	passwdSum := md5.Sum([]byte(g.cfg.StorePasswd))

	var signed strings.Builder
	for _, field := range strings.Split(verifyKey, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		signed.WriteString(field)
		signed.WriteByte('=')
		signed.WriteString(values.Get(field))
		signed.WriteByte('&')
	}
	signed.WriteString("store_passwd=")
	signed.WriteString(hex.EncodeToString(passwdSum[:]))

	sum := md5.Sum([]byte(signed.String()))
	expected := hex.EncodeToString(sum[:])

	if subtle.ConstantTimeCompare([]byte(expected), []byte(verifySign)) != 1 {
		return errors.New("callback verify_sign mismatch")
	}
	return nil
}

func (g *SSLCommerzGateway) postFormWithRetry(ctx context.Context, path string, values url.Values) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.RetryAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt-1) * 500 * time.Millisecond):
			}
		}

		body, retryable, err := g.postForm(ctx, path, values)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}
	return nil, lastErr
}

func (g *SSLCommerzGateway) postForm(ctx context.Context, path string, values url.Values) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+path, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		// Transport errors and timeouts are worth another attempt.
		return nil, ctx.Err() == nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, err
	}
	if resp.StatusCode >= 500 {
		return nil, true, fmt.Errorf("sslcommerz request failed: path=%s status=%d body=%s", path, resp.StatusCode, string(body))
	}
	if resp.StatusCode >= 400 {
		return nil, false, fmt.Errorf("sslcommerz request failed: path=%s status=%d body=%s", path, resp.StatusCode, string(body))
	}

	return body, false, nil
}

func defaultIfEmpty(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
