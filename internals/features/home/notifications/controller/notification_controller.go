package controller

import (
	"github.com/gofiber/fiber/v2"

	"altroway_backend/internals/features/home/notifications/dto"
	"altroway_backend/internals/features/home/notifications/service"
	helper "altroway_backend/internals/helpers"
)

type NotificationController struct {
	Notifications *service.NotificationService
}

func NewNotificationController(svc *service.NotificationService) *NotificationController {
	return &NotificationController{Notifications: svc}
}

// POST /api/notifications
func (ctrl *NotificationController) CreateNotification(c *fiber.Ctx) error {
	var req dto.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	if err := helper.ValidateStruct(req); err != nil {
		return helper.JsonFail(c, err)
	}
	n, err := ctrl.Notifications.CreateNotification(c.UserContext(), req.ToModel())
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonCreated(c, "Notification created successfully", n)
}
