// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	helperAuth "altroway_backend/internals/helpers/auth"
	"altroway_backend/internals/helpers/logger"
)

type SessionVerifier interface {
	ResolveSession(ctx context.Context, raw string) (*helperAuth.Session, error)
}

// SessionResolver attaches the request's Session when a valid access token
// is present (bearer header or access_token cookie). Anonymous requests
// pass through untouched; gates further down decide what that means.
// Errors matching invalid (bad, expired, revoked token) are silent; any
// other verifier error is logged and the request continues anonymous.
func SessionResolver(v SessionVerifier, invalid error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helperAuth.RawAccessToken(c)
		if raw == "" {
			return c.Next()
		}
		sess, err := v.ResolveSession(c.UserContext(), raw)
		switch {
		case err == nil:
			helperAuth.WithSession(c, sess)
		case invalid != nil && errors.Is(err, invalid):
			// stale cookie or signed-out token: anonymous
		default:
			logger.L().Warn("session resolution failed", "path", c.Path(), "err", err)
		}
		return c.Next()
	}
}
