package auth

import (
	"testing"
	"time"

	"github.com/hallworks/ms-go-hall/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret: "test-secret",
		Issuer: "ms-go-hall",
		TTL:    time.Hour,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{
		Email: "resident@hall.example",
		Name:  "Resident One",
		Role:  "manager",
	})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Email != "resident@hall.example" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Role != "manager" {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.Subject != "resident@hall.example" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if claims.ID == "" {
		t.Fatal("expected a token id")
	}
}

func TestMintAccessTokenRequiresEmail(t *testing.T) {
	if _, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{}); err == nil {
		t.Fatal("expected error for missing email")
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	token, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{Email: "resident@hall.example"})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	other := testJWTConfig()
	other.Secret = "other-secret"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("expected parse to fail with wrong secret")
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	token, err := MintAccessToken(testJWTConfig(), time.Now().Add(-2*time.Hour), AccessTokenPayload{Email: "resident@hall.example"})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if _, err := ParseAccessToken(testJWTConfig(), token); err == nil {
		t.Fatal("expected parse to fail for expired token")
	}
}

func TestParseAccessTokenRejectsWrongIssuer(t *testing.T) {
	mintCfg := testJWTConfig()
	mintCfg.Issuer = "someone-else"
	token, err := MintAccessToken(mintCfg, time.Now(), AccessTokenPayload{Email: "resident@hall.example"})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if _, err := ParseAccessToken(testJWTConfig(), token); err == nil {
		t.Fatal("expected parse to fail for wrong issuer")
	}
}
