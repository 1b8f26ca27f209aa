package route

import (
	"github.com/gofiber/fiber/v2"

	"altroway_backend/internals/features/home/notifications/controller"
)

func notificationAdminRoutes(g fiber.Router, ctrl *controller.NotificationController, adminOnly fiber.Handler) {
	g.Post("/", adminOnly, ctrl.CreateNotification)
}
