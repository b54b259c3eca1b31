package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// ErrInvalidCredentials is returned for any failed login; the reason is not
// distinguished to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminClaims is the session payload: one boolean admin flag.
type AdminClaims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// AuthService checks the single env-configured admin credential and issues
// the signed session token the admin guard verifies.
type AuthService struct {
	passwordHash []byte
	secret       []byte
}

func NewAuthService(adminPassword, secret string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		passwordHash: hash,
		secret:       []byte(secret),
	}, nil
}

// Login verifies the credential and returns a signed HS256 token carrying
// the admin flag, valid for 24 hours.
func (s *AuthService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := &AdminClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Secret exposes the signing key for the route-level guard middleware.
func (s *AuthService) Secret() []byte {
	return s.secret
}
