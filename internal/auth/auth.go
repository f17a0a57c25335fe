// Package auth resolves the acting user for protected endpoints. Three
// sources are consulted in order: a bearer JWT already verified by the jwt
// middleware, a server-side session referenced by cookie, and — outside
// production — a configured mock user id.
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/kagisom/localconnect-backend/internal/session"
)

const userIDKey = "userID"

// SessionResolver is the subset of the session repository the middleware
// needs.
type SessionResolver interface {
	Get(sid string) (session.Session, error)
}

// CurrentUser stores the acting user id in the request locals, or responds
// 401 when no source can identify one.
func CurrentUser(sessions SessionResolver, mockUserID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, err := userIDFromToken(c); err == nil {
			c.Locals(userIDKey, id)
			return c.Next()
		}

		if sid := c.Cookies(session.CookieName); sid != "" {
			if s, err := sessions.Get(sid); err == nil {
				c.Locals(userIDKey, s.UserID)
				return c.Next()
			}
		}

		if mockUserID != "" {
			c.Locals(userIDKey, mockUserID)
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
	}
}

// UserID returns the acting user id set by CurrentUser.
func UserID(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(userIDKey).(string)
	if !ok || id == "" {
		return "", fiber.ErrUnauthorized
	}
	return id, nil
}

func userIDFromToken(c *fiber.Ctx) (string, error) {
	u := c.Locals("user")
	if u == nil {
		return "", fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.ErrUnauthorized
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fiber.ErrUnauthorized
	}
	return sub, nil
}
