package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/resumeforge/resumeforge/pkg/kernel"
)

const authContextKey = "auth_context"

// AuthContext holds the authenticated identity for a request
type AuthContext struct {
	UserID kernel.UserID
	Email  kernel.Email
	Role   string
}

// TokenMiddleware guards routes behind bearer-token verification
type TokenMiddleware struct {
	tokenService *TokenService
}

// NewTokenMiddleware creates the middleware around a token verifier
func NewTokenMiddleware(tokenService *TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokenService: tokenService}
}

// Authenticate validates the Authorization header and stores the AuthContext
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrMissingToken()
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrInvalidToken().WithDetail("reason", "expected Bearer token")
		}

		claims, err := m.tokenService.ValidateAccessToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(authContextKey, AuthContext{
			UserID: kernel.UserID(claims.Subject),
			Email:  kernel.Email(claims.Email),
			Role:   claims.Role,
		})

		return c.Next()
	}
}

// RequireRole rejects requests whose authenticated role does not match
func (m *TokenMiddleware) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}
		if authCtx.Role != role {
			return ErrForbidden().WithDetail("required_role", role)
		}
		return c.Next()
	}
}

// GetAuthContext extracts the authenticated identity from the request context
func GetAuthContext(c *fiber.Ctx) (AuthContext, bool) {
	authCtx, ok := c.Locals(authContextKey).(AuthContext)
	return authCtx, ok
}
