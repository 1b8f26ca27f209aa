package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"altroway_backend/internals/features/cms/content/dto"
	"altroway_backend/internals/features/cms/content/model"
	"altroway_backend/internals/features/cms/content/service"
	helper "altroway_backend/internals/helpers"
)

type ContentController struct {
	Content *service.ContentService
}

func NewContentController(svc *service.ContentService) *ContentController {
	return &ContentController{Content: svc}
}

// GET /api/cms/content?type=&status=
func (ctrl *ContentController) List(c *fiber.Ctx) error {
	var q dto.ListContentQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid query"))
	}
	if err := helper.ValidateStruct(q); err != nil {
		return helper.JsonFail(c, err)
	}
	rows, err := ctrl.Content.List(c.UserContext(), model.ContentType(q.Type), model.ContentStatus(q.Status))
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/cms/content/:id
func (ctrl *ContentController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid content id"))
	}
	row, err := ctrl.Content.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", row)
}

// POST /api/cms/content
func (ctrl *ContentController) Create(c *fiber.Ctx) error {
	var req dto.CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonFail(c, err)
	}
	row, err := ctrl.Content.Create(c.UserContext(), service.ContentInput{
		Type:     model.ContentType(req.Type),
		Title:    req.Title,
		Content:  req.Content,
		Status:   model.ContentStatus(req.Status),
		Metadata: req.Metadata,
	})
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonCreated(c, "Content created successfully", row)
}

// PUT /api/cms/content/:id
func (ctrl *ContentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid content id"))
	}
	var req dto.UpdateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonFail(c, err)
	}
	row, err := ctrl.Content.Update(c.UserContext(), id, ToPatch(req))
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "Content updated successfully", row)
}

// DELETE /api/cms/content/:id
func (ctrl *ContentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid content id"))
	}
	if err := ctrl.Content.Delete(c.UserContext(), id); err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "Content deleted successfully", nil)
}

func ToPatch(req dto.UpdateContentRequest) service.ContentPatch {
	p := service.ContentPatch{Title: req.Title, Content: req.Content, Metadata: req.Metadata}
	if req.Type != nil {
		t := model.ContentType(*req.Type)
		p.Type = &t
	}
	if req.Status != nil {
		st := model.ContentStatus(*req.Status)
		p.Status = &st
	}
	return p
}
