package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"altroway_backend/internals/features/home/notifications/controller"
	"altroway_backend/internals/features/home/notifications/service"
)

// NotificationRoutes mounts /api/notifications.
func NotificationRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewNotificationController(service.NewNotificationService(db))

	g := api.Group("/notifications")
	g.Get("/", ctrl.GetUserNotifications)
	g.Put("/read-all", ctrl.MarkAllAsRead)
	g.Put("/:id/read", ctrl.MarkAsRead)
	notificationAdminRoutes(g, ctrl, adminOnly)
}
