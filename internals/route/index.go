package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"altroway_backend/internals/configs"
	authService "altroway_backend/internals/features/users/auth/service"
	profileService "altroway_backend/internals/features/users/profiles/service"
	"altroway_backend/internals/helpers/logger"
	helperStorage "altroway_backend/internals/helpers/storage"
	"altroway_backend/internals/middlewares"
	authMiddleware "altroway_backend/internals/middlewares/auth"
	routeDetails "altroway_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts every route on app. The app must carry the admin
// views engine.
func SetupRoutes(app *fiber.App, db *gorm.DB, blobs helperStorage.BlobStore, auth *authService.AuthService) {
	startTime = time.Now()
	log := logger.L()

	BaseRoutes(app, db)

	// sessions are optional everywhere; gates decide what a missing one means
	app.Use(authMiddleware.SessionResolver(auth, authService.ErrInvalidToken))

	profiles := profileService.NewProfileService(db, blobs)
	adminOnly := fiber.Handler(authMiddleware.Passthrough)
	if configs.AdminAPIGuard {
		adminOnly = authMiddleware.RequireAdminAPI(profiles)
	}
	log.Info("admin API guard", "enabled", configs.AdminAPIGuard)

	// ===================== PAGES =====================
	log.Info("mounting admin pages")
	routeDetails.AdminPageRoutes(app, db, authMiddleware.AdminPageGate(profiles))

	// ===================== API =====================
	api := app.Group("/api", middlewares.GlobalRateLimiter())

	log.Info("mounting user routes")
	routeDetails.UserRoutes(api, db, blobs, auth)

	log.Info("mounting document routes")
	routeDetails.DocumentsRoutes(api, db, blobs, adminOnly)

	log.Info("mounting job routes")
	routeDetails.JobsRoutes(api, db, adminOnly)

	log.Info("mounting home routes")
	routeDetails.HomeRoutes(api, db, adminOnly)

	log.Info("mounting admin API routes")
	admin := api.Group("/admin", adminOnly)
	routeDetails.AdminRoutes(admin, db, blobs)
}
