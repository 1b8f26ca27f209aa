package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"altroway_backend/internals/features/users/profiles/dto"
	"altroway_backend/internals/features/users/profiles/service"
	helper "altroway_backend/internals/helpers"
)

type ProfileController struct {
	Profiles *service.ProfileService
}

func NewProfileController(svc *service.ProfileService) *ProfileController {
	return &ProfileController{Profiles: svc}
}

// GET /api/profile?userId=
func (ctrl *ProfileController) GetProfile(c *fiber.Ctx) error {
	id, err := parseUserID(c.Query("userId"))
	if err != nil {
		return helper.JsonFail(c, err)
	}
	p, err := ctrl.Profiles.GetProfile(c.UserContext(), id)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", p)
}

// PUT /api/profile  body: {userId, ...fields}
func (ctrl *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	id, err := parseUserID(req.UserID)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonFail(c, err)
	}
	p, err := ctrl.Profiles.UpdateProfile(c.UserContext(), id, req.ToUpdateMap())
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "Profile updated successfully", p)
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
