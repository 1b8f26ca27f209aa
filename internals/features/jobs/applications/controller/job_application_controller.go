package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"altroway_backend/internals/features/jobs/applications/dto"
	"altroway_backend/internals/features/jobs/applications/service"
	profileModel "altroway_backend/internals/features/users/profiles/model"
	helper "altroway_backend/internals/helpers"
)

type ApplicationController struct {
	Applications *service.ApplicationService
}

func NewApplicationController(svc *service.ApplicationService) *ApplicationController {
	return &ApplicationController{Applications: svc}
}

// GET /api/applications?userId=  (all applications when userId is absent and all=true)
func (ctrl *ApplicationController) List(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("userId"))
	if raw == "" {
		if c.QueryBool("all") {
			list, err := ctrl.Applications.GetAllApplications(c.UserContext())
			if err != nil {
				return helper.JsonFail(c, err)
			}
			return helper.JsonOK(c, "", list)
		}
		return helper.JsonFail(c, helper.Required("User ID"))
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("User ID must be a valid UUID"))
	}
	list, err := ctrl.Applications.GetUserApplications(c.UserContext(), userID)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", list)
}

// POST /api/applications
func (ctrl *ApplicationController) Apply(c *fiber.Ctx) error {
	var req dto.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonFail(c, err)
	}
	app, err := ctrl.Applications.ApplyForJob(c.UserContext(),
		uuid.MustParse(req.UserID), uuid.MustParse(req.JobID),
		service.ApplyInput{CoverLetter: req.CoverLetter, ResumePath: req.ResumePath})
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonCreated(c, "Application submitted successfully", app)
}

// PUT /api/applications/:id/status
func (ctrl *ApplicationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid application id"))
	}
	var req dto.UpdateApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonFail(c, err)
	}
	app, err := ctrl.Applications.UpdateApplicationStatus(c.UserContext(), id, profileModel.ApplicationStatus(req.Status))
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "Application status updated successfully", app)
}
