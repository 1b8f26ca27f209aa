package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"altroway_backend/internals/features/jobs/applications/controller"
	"altroway_backend/internals/features/jobs/applications/service"
)

func ApplicationRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewApplicationController(service.NewApplicationService(db))

	g := api.Group("/applications")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Apply)
	g.Put("/:id/status", adminOnly, ctrl.UpdateStatus)
}
