package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentRoutes "altroway_backend/internals/features/documents/route"
	helperStorage "altroway_backend/internals/helpers/storage"
)

// /api/documents
func DocumentsRoutes(api fiber.Router, db *gorm.DB, blobs helperStorage.BlobStore, adminOnly fiber.Handler) {
	documentRoutes.DocumentRoutes(api, db, blobs, adminOnly)
}
