package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "altroway_backend/internals/helpers"
	helperAuth "altroway_backend/internals/helpers/auth"
	"altroway_backend/internals/helpers/logger"
)

type AdminChecker interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AdminPageGate guards server-rendered admin pages:
// no session -> 302 /login, not an admin -> 302 /, otherwise render.
// The flag is read from the store on every request.
func AdminPageGate(admins AdminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := helperAuth.SessionFrom(c)
		if sess == nil {
			return c.Redirect("/login", fiber.StatusFound)
		}
		ok, err := admins.IsAdmin(c.UserContext(), sess.UserID)
		if err != nil {
			logger.L().Error("admin lookup failed", "user_id", sess.UserID, "err", err)
			return c.Redirect("/", fiber.StatusFound)
		}
		if !ok {
			return c.Redirect("/", fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireAdminAPI is the JSON counterpart used when ADMIN_API_GUARD is on:
// 401 without a session, 403 for non-admins.
func RequireAdminAPI(admins AdminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := helperAuth.SessionFrom(c)
		if sess == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authenticated")
		}
		ok, err := admins.IsAdmin(c.UserContext(), sess.UserID)
		if err != nil {
			return helper.JsonFail(c, helper.Internal(err))
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "Admin access required")
		}
		return c.Next()
	}
}

// Passthrough stands in for a disabled guard.
func Passthrough(c *fiber.Ctx) error { return c.Next() }
