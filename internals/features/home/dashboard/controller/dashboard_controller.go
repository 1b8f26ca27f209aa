package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"altroway_backend/internals/features/home/dashboard/service"
	helper "altroway_backend/internals/helpers"
)

type DashboardController struct {
	Dashboard *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: svc}
}

// GET /api/dashboard?userId=
func (ctrl *DashboardController) UserDashboard(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("userId"))
	if raw == "" {
		return helper.JsonFail(c, helper.Required("User ID"))
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("User ID must be a valid UUID"))
	}
	d, err := ctrl.Dashboard.ForUser(c.UserContext(), id)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", d)
}

// GET /api/admin/stats
func (ctrl *DashboardController) AdminStats(c *fiber.Ctx) error {
	st, err := ctrl.Dashboard.AdminStats(c.UserContext())
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", st)
}
