package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"altroway_backend/internals/features/documents/controller"
	"altroway_backend/internals/features/documents/service"
	helperStorage "altroway_backend/internals/helpers/storage"
)

// DocumentRoutes mounts /api/documents. adminOnly guards the review endpoint.
func DocumentRoutes(api fiber.Router, db *gorm.DB, blobs helperStorage.BlobStore, adminOnly fiber.Handler) {
	ctrl := controller.NewDocumentController(service.NewDocumentService(db, blobs))

	g := api.Group("/documents")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Upload)
	g.Get("/:id/url", ctrl.URL)
	g.Put("/:id/status", adminOnly, ctrl.UpdateStatus)
	g.Delete("/:id", ctrl.Delete)
}
