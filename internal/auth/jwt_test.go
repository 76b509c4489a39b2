package auth

import (
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestGenerateAndValidate(t *testing.T) {
	mgr := NewJWTManager(testSecret, 30*time.Minute)

	token, err := mgr.GenerateAccessToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := mgr.ParseAndValidate(token)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}
	if claims.Subject != "admin" {
		t.Fatalf("subject = %q, esperado admin", claims.Subject)
	}
	if claims.Role != "admin" {
		t.Fatalf("role = %q, esperado admin", claims.Role)
	}
	if claims.ID == "" {
		t.Fatal("jti vazio")
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	mgr := NewJWTManager(testSecret, -time.Minute)

	token, err := mgr.GenerateAccessToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := mgr.ParseAndValidate(token); err == nil {
		t.Fatal("token expirado deveria ser rejeitado")
	}
}

func TestWrongSecretIsRejected(t *testing.T) {
	mgr := NewJWTManager(testSecret, 30*time.Minute)
	other := NewJWTManager("ffffffffffffffffffffffffffffffff", 30*time.Minute)

	token, err := mgr.GenerateAccessToken("admin", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := other.ParseAndValidate(token); err == nil {
		t.Fatal("assinatura inválida deveria ser rejeitada")
	}
}

func TestMalformedTokenIsRejected(t *testing.T) {
	mgr := NewJWTManager(testSecret, 30*time.Minute)

	for _, token := range []string{"", "abc", "a.b.c"} {
		if _, err := mgr.ParseAndValidate(token); err == nil {
			t.Fatalf("token malformado %q deveria ser rejeitado", token)
		}
	}
}
