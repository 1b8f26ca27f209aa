package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "altroway_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// GlobalRateLimiter: every /api endpoint.
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(100, time.Minute, "Too many requests, please try again later")
}

// LoginRateLimiter: sign-in, stricter.
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, "Too many sign-in attempts, please wait a moment")
}

func RegisterRateLimiter() fiber.Handler {
	return newLimiter(3, 5*time.Minute, "Too many sign-up attempts, please wait a few minutes")
}

// SeedRateLimiter guards the test-account seeding endpoint.
func SeedRateLimiter() fiber.Handler {
	return newLimiter(2, 10*time.Minute, "Too many seeding requests, please try again in 10 minutes")
}
