package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"altroway_backend/internals/features/jobs/jobs/dto"
	"altroway_backend/internals/features/jobs/jobs/service"
	helper "altroway_backend/internals/helpers"
)

type JobController struct {
	Jobs *service.JobService
}

func NewJobController(jobs *service.JobService) *JobController {
	return &JobController{Jobs: jobs}
}

// GET /api/jobs?country=&industry=&search=&urgent=true
func (ctrl *JobController) List(c *fiber.Ctx) error {
	var f dto.JobFilter
	if err := c.QueryParser(&f); err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid query"))
	}
	jobs, err := ctrl.Jobs.GetAllJobs(c.UserContext(), f)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", jobs)
}

// GET /api/jobs/category/:industry
func (ctrl *JobController) ListByCategory(c *fiber.Ctx) error {
	jobs, err := ctrl.Jobs.GetJobsByCategory(c.UserContext(), c.Params("industry"))
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", jobs)
}

// GET /api/jobs/:id
func (ctrl *JobController) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid job id"))
	}
	job, err := ctrl.Jobs.GetJob(c.UserContext(), id)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", job)
}

// POST /api/jobs
func (ctrl *JobController) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonFail(c, err)
	}
	job, err := ctrl.Jobs.CreateJob(c.UserContext(), req.ToModel())
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonCreated(c, "Job created successfully", job)
}

// PUT /api/jobs/:id
func (ctrl *JobController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid job id"))
	}
	var req dto.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonFail(c, err)
	}
	job, err := ctrl.Jobs.UpdateJob(c.UserContext(), id, req.ToUpdateMap())
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "Job updated successfully", job)
}

// DELETE /api/jobs/:id (soft)
func (ctrl *JobController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid job id"))
	}
	if err := ctrl.Jobs.DeactivateJob(c.UserContext(), id); err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "Job deactivated successfully", nil)
}
