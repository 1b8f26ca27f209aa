package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"altroway_backend/internals/features/jobs/jobs/controller"
	"altroway_backend/internals/features/jobs/jobs/service"
)

func JobRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewJobController(service.NewJobService(db))

	g := api.Group("/jobs")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Get("/category/:industry", ctrl.ListByCategory)
	g.Get("/:id", ctrl.Get)
	g.Put("/:id", adminOnly, ctrl.Update)
	g.Delete("/:id", adminOnly, ctrl.Deactivate)
}
