package service

import (
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestLogin(t *testing.T) {
	svc, err := NewAuthService("letmein", "test-secret")
	if err != nil {
		t.Fatalf("NewAuthService() error: %v", err)
	}

	if _, err := svc.Login("wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(wrong) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(""); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(empty) error = %v, want ErrInvalidCredentials", err)
	}

	token, err := svc.Login("letmein")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	claims := &AdminClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return svc.Secret(), nil
	})
	if err != nil {
		t.Fatalf("token does not parse: %v", err)
	}
	if !parsed.Valid {
		t.Error("token must be valid")
	}
	if !claims.Admin {
		t.Error("session token must carry the admin flag")
	}
	if claims.ExpiresAt == nil {
		t.Error("session token must expire")
	}
}

func TestLoginTokenRejectsWrongSecret(t *testing.T) {
	svc, err := NewAuthService("letmein", "test-secret")
	if err != nil {
		t.Fatalf("NewAuthService() error: %v", err)
	}
	token, err := svc.Login("letmein")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	_, err = jwt.ParseWithClaims(token, &AdminClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	if err == nil {
		t.Error("token must not verify under a different secret")
	}
}
