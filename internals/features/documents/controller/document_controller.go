package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"altroway_backend/internals/features/documents/dto"
	"altroway_backend/internals/features/documents/model"
	"altroway_backend/internals/features/documents/service"
	helper "altroway_backend/internals/helpers"
)

type DocumentController struct {
	Docs *service.DocumentService
}

func NewDocumentController(docs *service.DocumentService) *DocumentController {
	return &DocumentController{Docs: docs}
}

// GET /api/documents?userId=&category=
func (ctrl *DocumentController) List(c *fiber.Ctx) error {
	userID, err := parseUserID(c.Query("userId"))
	if err != nil {
		return helper.JsonFail(c, err)
	}
	docs, err := ctrl.Docs.GetUserDocuments(c.UserContext(), userID, model.DocumentCategory(strings.TrimSpace(c.Query("category"))))
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", docs)
}

// POST /api/documents (multipart: userId, file, type, category, expiry_date?)
// New documents always start pending; only the status route moves them on.
func (ctrl *DocumentController) Upload(c *fiber.Ctx) error {
	var form dto.UploadDocumentForm
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonFail(c, missingFields())
	}
	fh, err := c.FormFile("file")
	if err != nil || strings.TrimSpace(form.UserID) == "" || strings.TrimSpace(form.Type) == "" || strings.TrimSpace(form.Category) == "" {
		return helper.JsonFail(c, missingFields())
	}
	userID, err := uuid.Parse(strings.TrimSpace(form.UserID))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("userId must be a valid UUID"))
	}
	expiry, err := form.ParseExpiry()
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("expiry_date must be YYYY-MM-DD"))
	}

	f, err := fh.Open()
	if err != nil {
		return helper.JsonFail(c, helper.Internal(err))
	}
	defer f.Close()

	doc, err := ctrl.Docs.UploadDocument(c.UserContext(), userID,
		service.UploadFile{
			Name:        fh.Filename,
			Size:        fh.Size,
			ContentType: fh.Header.Get("Content-Type"),
			Body:        f,
		},
		service.UploadMeta{
			Type:       form.Type,
			Category:   model.DocumentCategory(strings.TrimSpace(form.Category)),
			Status:     model.DocumentPending,
			ExpiryDate: expiry,
		})
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonCreated(c, "Document uploaded successfully", doc)
}

// PUT /api/documents/:id/status
func (ctrl *DocumentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid document id"))
	}
	var req dto.UpdateDocumentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonFail(c, err)
	}
	doc, err := ctrl.Docs.UpdateDocumentStatus(c.UserContext(), id, model.DocumentStatus(req.Status))
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "Document status updated successfully", doc)
}

// DELETE /api/documents/:id
func (ctrl *DocumentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid document id"))
	}
	if err := ctrl.Docs.DeleteDocument(c.UserContext(), id); err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "Document deleted successfully", nil)
}

// GET /api/documents/:id/url
func (ctrl *DocumentController) URL(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid document id"))
	}
	doc, err := ctrl.Docs.GetDocument(c.UserContext(), id)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", dto.NewDocumentResponse(*doc, ctrl.Docs.GetDocumentURL(doc.FilePath)))
}

func parseUserID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, helper.Required("User ID")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, helper.Invalid("User ID must be a valid UUID")
	}
	return id, nil
}

func missingFields() error {
	return &helper.ValidationError{Message: service.ErrMissingFields.Error()}
}
