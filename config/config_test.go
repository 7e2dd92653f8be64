package config

import (
	"os"
	"testing"
	"time"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("setenv %s failed: %v", key, err)
	}
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	old, had := os.LookupEnv(key)
	_ = os.Unsetenv(key)
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, old)
		}
	})
}

func TestLoadRequiresMySQLDSN(t *testing.T) {
	unsetEnv(t, "MYSQL_DSN")
	setEnv(t, "JWT_SECRET", "secret")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing MYSQL_DSN")
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	setEnv(t, "MYSQL_DSN", "root:root@tcp(localhost:3306)/hall?parseTime=true")
	unsetEnv(t, "JWT_SECRET")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing JWT_SECRET")
	}
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	setEnv(t, "MYSQL_DSN", "root:root@tcp(localhost:3306)/hall?parseTime=true")
	setEnv(t, "JWT_SECRET", "secret")
	setEnv(t, "APP_SERVICE_NAME", "hall-test")
	setEnv(t, "HTTP_PORT", "8181")
	setEnv(t, "MYSQL_MAX_OPEN_CONNS", "20")
	setEnv(t, "SSLCOMMERZ_STORE_ID", "teststore")
	setEnv(t, "SSLCOMMERZ_HTTP_TIMEOUT_SECONDS", "5")
	setEnv(t, "SSLCOMMERZ_VERIFY_CALLBACKS", "false")
	setEnv(t, "PAYMENTS_PENDING_TIMEOUT_MINUTES", "30")
	setEnv(t, "JWT_TTL_HOURS", "24")
	setEnv(t, "APP_CORS_ORIGINS", "http://localhost:5173, https://hall.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.App.ServiceName != "hall-test" {
		t.Errorf("service name = %q", cfg.App.ServiceName)
	}
	if cfg.HTTP.Port != "8181" {
		t.Errorf("http port = %q", cfg.HTTP.Port)
	}
	if cfg.HTTP.Host != "0.0.0.0" {
		t.Errorf("http host default = %q", cfg.HTTP.Host)
	}
	if cfg.MySQL.MaxOpenConns != 20 {
		t.Errorf("max open conns = %d", cfg.MySQL.MaxOpenConns)
	}
	if cfg.MySQL.MaxIdleConns != 5 {
		t.Errorf("max idle conns default = %d", cfg.MySQL.MaxIdleConns)
	}
	if cfg.SSLCommerz.StoreID != "teststore" {
		t.Errorf("store id = %q", cfg.SSLCommerz.StoreID)
	}
	if cfg.SSLCommerz.BaseURL != "https://sandbox.sslcommerz.com" {
		t.Errorf("gateway base url default = %q", cfg.SSLCommerz.BaseURL)
	}
	if cfg.SSLCommerz.HTTPTimeout != 5*time.Second {
		t.Errorf("gateway timeout = %v", cfg.SSLCommerz.HTTPTimeout)
	}
	if cfg.SSLCommerz.VerifyCallbacks {
		t.Error("verify callbacks should be disabled")
	}
	if cfg.Payments.PendingTimeout != 30*time.Minute {
		t.Errorf("pending timeout = %v", cfg.Payments.PendingTimeout)
	}
	if cfg.Payments.Currency != "BDT" {
		t.Errorf("currency default = %q", cfg.Payments.Currency)
	}
	if cfg.JWT.TTL != 24*time.Hour {
		t.Errorf("jwt ttl = %v", cfg.JWT.TTL)
	}
	if len(cfg.App.CORSOrigins) != 2 || cfg.App.CORSOrigins[1] != "https://hall.example.com" {
		t.Errorf("cors origins = %v", cfg.App.CORSOrigins)
	}
}
