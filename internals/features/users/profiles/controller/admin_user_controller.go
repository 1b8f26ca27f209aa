package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"altroway_backend/internals/features/users/profiles/dto"
	"altroway_backend/internals/features/users/profiles/model"
	helper "altroway_backend/internals/helpers"
)

// GET /api/admin/users?page=&per_page=
// Without paging params every profile is returned, newest first.
func (ctrl *ProfileController) ListUsers(c *fiber.Ctx) error {
	if !helper.PagingRequested(c) {
		rows, total, err := ctrl.Profiles.GetAllUsers(c.UserContext(), helper.Paging{})
		if err != nil {
			return helper.JsonFail(c, err)
		}
		return helper.JsonList(c, rows, helper.SinglePage(total))
	}
	paging := helper.ResolvePaging(c, 20, 0)
	rows, total, err := ctrl.Profiles.GetAllUsers(c.UserContext(), paging)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonList(c, rows, helper.BuildPagination(total, paging))
}

// DELETE /api/admin/users  body: {userId}
func (ctrl *ProfileController) DeleteUser(c *fiber.Ctx) error {
	var req dto.DeleteUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	id, err := parseUserID(req.UserID)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	if err := ctrl.Profiles.DeleteUser(c.UserContext(), id); err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "User deleted successfully", nil)
}

// PUT /api/admin/users/:id/status
func (ctrl *ProfileController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("User ID must be a valid UUID"))
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonFail(c, err)
	}
	p, err := ctrl.Profiles.UpdateApplicationStatus(c.UserContext(), id, model.ApplicationStatus(req.Status))
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "Application status updated successfully", p)
}
