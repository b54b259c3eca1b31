package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/brentsteel/lunchmenu/internal/service"
)

const sessionCookie = "admin_token"

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login checks the admin credential --> POST /admin/login
func (h *AuthHandler) Login(c echo.Context) error {
	login := struct {
		Password string `json:"password"`
	}{}
	if err := c.Bind(&login); err != nil {
		return c.JSON(400, map[string]string{"error": "Invalid request payload"})
	}

	token, err := h.authService.Login(login.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(401, map[string]string{"error": "invalid credentials"})
		}
		return c.JSON(500, map[string]string{"error": err.Error()})
	}

	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
	})
	return c.JSON(200, map[string]string{"token": token})
}

// Logout clears the session cookie --> POST /admin/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.JSON(200, map[string]string{"message": "Logged out"})
}

// AdminGuard verifies the session token from the cookie or the bearer
// header. Failures answer a uniform 401 before any business logic runs.
func AdminGuard(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  secret,
		TokenLookup: "header:Authorization:Bearer ,cookie:" + sessionCookie,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.AdminClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(401, map[string]string{"error": "Unauthorized"})
		},
	})
}

// RequireAdmin checks the admin flag on the verified claims.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := c.Get("user").(*jwt.Token)
		if !ok {
			return c.JSON(401, map[string]string{"error": "Unauthorized"})
		}
		claims, ok := token.Claims.(*service.AdminClaims)
		if !ok || !claims.Admin {
			return c.JSON(401, map[string]string{"error": "Unauthorized"})
		}
		return next(c)
	}
}
