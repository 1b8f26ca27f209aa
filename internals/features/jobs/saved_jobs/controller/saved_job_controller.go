package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"altroway_backend/internals/features/jobs/saved_jobs/dto"
	"altroway_backend/internals/features/jobs/saved_jobs/service"
	helper "altroway_backend/internals/helpers"
)

type SavedJobController struct {
	Saved *service.SavedJobService
}

func NewSavedJobController(svc *service.SavedJobService) *SavedJobController {
	return &SavedJobController{Saved: svc}
}

// GET /api/saved-jobs?userId=  (?ids=true returns only job ids)
func (ctrl *SavedJobController) List(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("userId"))
	if raw == "" {
		return helper.JsonFail(c, helper.Required("User ID"))
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("User ID must be a valid UUID"))
	}
	if c.QueryBool("ids") {
		ids, err := ctrl.Saved.GetSavedJobIDs(c.UserContext(), userID)
		if err != nil {
			return helper.JsonFail(c, err)
		}
		return helper.JsonOK(c, "", ids)
	}
	rows, err := ctrl.Saved.GetSavedJobs(c.UserContext(), userID)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

// GET /api/saved-jobs/check?userId=&jobId=
func (ctrl *SavedJobController) Check(c *fiber.Ctx) error {
	var q dto.SavedJobRequest
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid query"))
	}
	userID, jobID, err := parsePair(q)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	saved, err := ctrl.Saved.IsJobSaved(c.UserContext(), userID, jobID)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", dto.CheckResponse{Saved: saved})
}

// POST /api/saved-jobs
func (ctrl *SavedJobController) Save(c *fiber.Ctx) error {
	userID, jobID, err := ctrl.bodyPair(c)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	row, err := ctrl.Saved.SaveJob(c.UserContext(), userID, jobID)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonCreated(c, "Job saved successfully", row)
}

// DELETE /api/saved-jobs
func (ctrl *SavedJobController) Unsave(c *fiber.Ctx) error {
	userID, jobID, err := ctrl.bodyPair(c)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	if err := ctrl.Saved.UnsaveJob(c.UserContext(), userID, jobID); err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "Job removed from saved jobs", nil)
}

// POST /api/saved-jobs/toggle
func (ctrl *SavedJobController) Toggle(c *fiber.Ctx) error {
	userID, jobID, err := ctrl.bodyPair(c)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	saved, err := ctrl.Saved.ToggleSavedJob(c.UserContext(), userID, jobID)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", dto.ToggleResponse{Saved: saved})
}

func (ctrl *SavedJobController) bodyPair(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	var req dto.SavedJobRequest
	if err := c.BodyParser(&req); err != nil {
		return uuid.Nil, uuid.Nil, helper.Invalid("Invalid request body")
	}
	return parsePair(req)
}

func parsePair(req dto.SavedJobRequest) (uuid.UUID, uuid.UUID, error) {
	if err := helper.ValidateStruct(req); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return uuid.MustParse(req.UserID), uuid.MustParse(req.JobID), nil
}
