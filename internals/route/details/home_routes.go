package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cmsRoutes "altroway_backend/internals/features/cms/content/route"
	dashboardRoutes "altroway_backend/internals/features/home/dashboard/route"
	notificationRoutes "altroway_backend/internals/features/home/notifications/route"
)

// /api/notifications, /api/cms/content and /api/dashboard
func HomeRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	notificationRoutes.NotificationRoutes(api, db, adminOnly)
	cmsRoutes.ContentRoutes(api, db, adminOnly)
	dashboardRoutes.DashboardRoutes(api, db)
}
