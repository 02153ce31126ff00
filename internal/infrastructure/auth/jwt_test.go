package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testIssuer(t *testing.T) *TokenIssuer {
	t.Helper()
	key, err := GenerateEphemeralKey()
	if err != nil {
		t.Fatalf("key generation failed: %v", err)
	}
	return NewTokenIssuer(key, "hotel-del-luna", "hotel-del-luna")
}

func TestIssueAndValidate(t *testing.T) {
	issuer := testIssuer(t)
	userID := uuid.NewString()

	token, err := issuer.IssueAccessToken(userID, 3600)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}
	gotID, expiresAt, err := issuer.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if gotID != userID {
		t.Errorf("user id = %s, want %s", gotID, userID)
	}
	remaining := time.Until(expiresAt)
	if remaining < 59*time.Minute || remaining > time.Hour {
		t.Errorf("expiry %v from now, want about an hour", remaining)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	issuer := testIssuer(t)
	token, err := issuer.IssueAccessToken(uuid.NewString(), -60)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}
	if _, _, err := issuer.ValidateAccessToken(token); err == nil {
		t.Error("expired token must not validate")
	}
}

func TestValidateRejectsForeignKey(t *testing.T) {
	a := testIssuer(t)
	b := testIssuer(t)
	token, err := a.IssueAccessToken(uuid.NewString(), 3600)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}
	if _, _, err := b.ValidateAccessToken(token); err == nil {
		t.Error("token signed with another key must not validate")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	issuer := testIssuer(t)
	for _, token := range []string{"", "not.a.jwt", "aaaa.bbbb.cccc"} {
		if _, _, err := issuer.ValidateAccessToken(token); err == nil {
			t.Errorf("token %q must not validate", token)
		}
	}
}

func TestLoadRSAPrivateKeyFromPEM(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("key generation failed: %v", err)
	}

	pkcs1 := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	if _, err := LoadRSAPrivateKeyFromPEM(pkcs1); err != nil {
		t.Errorf("PKCS#1 PEM rejected: %v", err)
	}

	pkcs8Bytes, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("PKCS#8 marshal failed: %v", err)
	}
	pkcs8 := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: pkcs8Bytes})
	if _, err := LoadRSAPrivateKeyFromPEM(pkcs8); err != nil {
		t.Errorf("PKCS#8 PEM rejected: %v", err)
	}

	if _, err := LoadRSAPrivateKeyFromPEM([]byte("not pem at all")); err == nil {
		t.Error("non-PEM input must be rejected")
	}
}
