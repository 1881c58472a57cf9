// Package middleware provides HTTP middleware for the fiber app,
// primarily JWT authentication.
package middleware

import (
	"log"
	"strings"

	"vimo/internal/models"
	"vimo/internal/services/auth"
	"vimo/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware validates JWT tokens and resolves the caller identity
// once per request. Downstream handlers read the owner ID from locals
// and pass it explicitly into every service call.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Handler checks the Authorization header, validates the token
// signature, expiry and version, and stores the claims in the context.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "Unauthorized")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "Unauthorized")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("token validation error: %v", err)
		return utils.Unauthorized(c, "Unauthorized")
	}

	currentVersion, err := m.authService.GetUserTokenVersion(claims.UserID)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	if claims.TokenVersion != currentVersion {
		return utils.Unauthorized(c, "Phiên đăng nhập đã hết hạn")
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)
	return c.Next()
}

// OwnerID extracts the authenticated user ID set by Handler.
func OwnerID(c *fiber.Ctx) (uint, bool) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return 0, false
	}
	return claims.UserID, true
}
