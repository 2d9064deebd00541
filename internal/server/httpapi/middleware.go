package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/server/auth"
)

const claimsKey = "claims"

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// authenticate returns the caller's claims, or the 401 message to send.
func (s *Server) authenticate(c echo.Context) (*auth.Claims, string) {
	token := bearerToken(c)
	if token == "" {
		return nil, "Authorization token is required"
	}
	claims, err := s.users.Authenticate(token)
	if err != nil {
		return nil, "Invalid or expired token"
	}
	return claims, ""
}

func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, msg := s.authenticate(c)
		if claims == nil {
			return message(c, http.StatusUnauthorized, msg)
		}
		c.Set(claimsKey, claims)
		return next(c)
	}
}

func claimsFrom(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsKey).(*auth.Claims)
	return claims
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"success": false, "message": msg})
}
