package seeds

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "altroway_backend/internals/features/users/auth/service"
	helper "altroway_backend/internals/helpers"
	"altroway_backend/internals/middlewares"
)

// SetupTestAccountsRoutes mounts POST /setup-test-accounts on api.
func SetupTestAccountsRoutes(api fiber.Router, db *gorm.DB, auth *authService.AuthService) {
	api.Post("/setup-test-accounts", middlewares.SeedRateLimiter(), SetupTestAccounts(db, auth))
}

func SetupTestAccounts(db *gorm.DB, auth *authService.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := SeedTestAccounts(c.UserContext(), db, auth)
		if err != nil {
			return helper.JsonFail(c, err)
		}
		return c.JSON(fiber.Map{
			"success":  true,
			"message":  "Test accounts created successfully",
			"accounts": accounts,
		})
	}
}
