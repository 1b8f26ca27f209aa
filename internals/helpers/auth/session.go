package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const LocSession = "session"

// Session is the authenticated identity of one request. It exists only
// after the session resolver verified the access token; sign-out blacklists
// the token so later requests resolve none.
type Session struct {
	UserID    uuid.UUID
	Email     string
	Token     string
	ExpiresAt time.Time
}

func WithSession(c *fiber.Ctx, s *Session) {
	c.Locals(LocSession, s)
}

// SessionFrom returns the request session, or nil when anonymous.
func SessionFrom(c *fiber.Ctx) *Session {
	if s, ok := c.Locals(LocSession).(*Session); ok && s != nil {
		return s
	}
	return nil
}

// RawAccessToken reads "Authorization: Bearer ..." or the access_token cookie.
func RawAccessToken(c *fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}
