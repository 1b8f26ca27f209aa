package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"altroway_backend/internals/features/cms/content/controller"
	"altroway_backend/internals/features/cms/content/service"
)

// ContentRoutes mounts /api/cms/content; writes go through adminOnly.
func ContentRoutes(api fiber.Router, db *gorm.DB, adminOnly fiber.Handler) {
	ctrl := controller.NewContentController(service.NewContentService(db))

	g := api.Group("/cms/content")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Get)
	g.Post("/", adminOnly, ctrl.Create)
	g.Put("/:id", adminOnly, ctrl.Update)
	g.Delete("/:id", adminOnly, ctrl.Delete)
}
