// file: internals/features/users/auth/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"altroway_backend/internals/configs"
	controller "altroway_backend/internals/features/users/auth/controller"
	authService "altroway_backend/internals/features/users/auth/service"
	profileService "altroway_backend/internals/features/users/profiles/service"
	rateLimiter "altroway_backend/internals/middlewares"
)

// AuthRoutes mounts /api/auth. The session resolver must already run on api.
func AuthRoutes(api fiber.Router, db *gorm.DB, auth *authService.AuthService) {
	ctrl := controller.NewAuthController(auth, profileService.NewProfileService(db, nil), configs.AppEnv == "production")

	g := api.Group("/auth")
	g.Post("/signup", rateLimiter.RegisterRateLimiter(), ctrl.SignUp)
	g.Post("/signin", rateLimiter.LoginRateLimiter(), ctrl.SignIn)
	g.Post("/signout", ctrl.SignOut)
	g.Get("/me", ctrl.Me)
	g.Post("/change-password", rateLimiter.LoginRateLimiter(), ctrl.ChangePassword)
}
