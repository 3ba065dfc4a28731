// Package middleware contains the request-level guards applied to the API
// group: the auth gate, the Redis response cache and the rate limiter.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/samurun/portfolio-api/internal/api"
	"github.com/samurun/portfolio-api/internal/auth"
)

// authPathPrefix is the public sub-path exempt from the token check.
const authPathPrefix = "/api/v1/auth"

// AuthGate decides ALLOW or CHALLENGE for every request under the API group.
// Read-only requests (GET) and the signup/login routes pass through; anything
// else must carry a valid bearer token or is rejected with a 401 envelope
// before the route handler runs. On success the token's claims are stored in
// the context under "user_id" and "email".
func AuthGate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			r := c.Request()
			if r.Method == http.MethodGet || strings.HasPrefix(r.URL.Path, authPathPrefix) {
				return next(c)
			}

			header := r.Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
			}
			claims, err := auth.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.Fail("Unauthorized"))
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			return next(c)
		}
	}
}
