package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/lokoloapp/lokolo-backend/pkg/config"
	"github.com/lokoloapp/lokolo-backend/pkg/enums"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{Secret: "test-secret", Issuer: "lokolo"}
}

func TestMintAndParseIdentityToken(t *testing.T) {
	cfg := testAuthConfig()
	now := time.Now()

	signed, err := MintIdentityToken(cfg, now, time.Hour, IdentityPayload{
		FirebaseUID: "firebase-uid-1",
		Email:       "owner@example.com",
		Role:        enums.UserRoleSupplier,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	claims, err := ParseIdentityToken(cfg, signed)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.FirebaseUID() != "firebase-uid-1" {
		t.Fatalf("unexpected uid %q", claims.FirebaseUID())
	}
	if claims.Email != "owner@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if claims.Role != enums.UserRoleSupplier {
		t.Fatalf("unexpected role %q", claims.Role)
	}
	if claims.Issuer != "lokolo" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
}

func TestMintIdentityTokenValidation(t *testing.T) {
	now := time.Now()

	if _, err := MintIdentityToken(config.AuthConfig{Issuer: "lokolo"}, now, time.Hour, IdentityPayload{FirebaseUID: "u"}); err == nil {
		t.Fatal("expected error for missing secret")
	}
	if _, err := MintIdentityToken(testAuthConfig(), now, time.Hour, IdentityPayload{}); err == nil {
		t.Fatal("expected error for missing uid")
	}
	if _, err := MintIdentityToken(testAuthConfig(), now, 0, IdentityPayload{FirebaseUID: "u"}); err == nil {
		t.Fatal("expected error for non-positive ttl")
	}
	if _, err := MintIdentityToken(testAuthConfig(), now, time.Hour, IdentityPayload{FirebaseUID: "u", Role: "ghost"}); err == nil {
		t.Fatal("expected error for invalid role")
	}
}

func TestParseIdentityTokenRejectsWrongSecret(t *testing.T) {
	signed, err := MintIdentityToken(testAuthConfig(), time.Now(), time.Hour, IdentityPayload{FirebaseUID: "u"})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	other := config.AuthConfig{Secret: "different", Issuer: "lokolo"}
	if _, err := ParseIdentityToken(other, signed); err == nil {
		t.Fatal("expected signature verification failure")
	}
}

func TestParseIdentityTokenRejectsExpired(t *testing.T) {
	past := time.Now().Add(-2 * time.Hour)
	signed, err := MintIdentityToken(testAuthConfig(), past, time.Hour, IdentityPayload{FirebaseUID: "u"})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	if _, err := ParseIdentityToken(testAuthConfig(), signed); err == nil || !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected expiry error, got %v", err)
	}
}

func TestParseIdentityTokenRejectsWrongIssuer(t *testing.T) {
	minted := config.AuthConfig{Secret: "test-secret", Issuer: "someone-else"}
	signed, err := MintIdentityToken(minted, time.Now(), time.Hour, IdentityPayload{FirebaseUID: "u"})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	if _, err := ParseIdentityToken(testAuthConfig(), signed); err == nil {
		t.Fatal("expected issuer validation failure")
	}
}
