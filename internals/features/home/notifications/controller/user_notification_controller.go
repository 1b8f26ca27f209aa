package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"altroway_backend/internals/features/home/notifications/dto"
	helper "altroway_backend/internals/helpers"
)

// GET /api/notifications?userId=&unreadOnly=true
func (ctrl *NotificationController) GetUserNotifications(c *fiber.Ctx) error {
	var q dto.ListNotificationsQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid query"))
	}
	userID, err := userIDFrom(q.UserID)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	list, err := ctrl.Notifications.GetUserNotifications(c.UserContext(), userID, q.UnreadOnly)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", list)
}

// PUT /api/notifications/:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonFail(c, helper.Invalid("invalid notification id"))
	}
	n, err := ctrl.Notifications.MarkAsRead(c.UserContext(), id)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", n)
}

// PUT /api/notifications/read-all
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	var req dto.MarkAllReadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonFail(c, helper.Invalid("Invalid request body"))
	}
	userID, err := userIDFrom(req.UserID)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	n, err := ctrl.Notifications.MarkAllAsRead(c.UserContext(), userID)
	if err != nil {
		return helper.JsonFail(c, err)
	}
	return helper.JsonOK(c, "", dto.MarkAllReadResponse{Updated: n})
}

func userIDFrom(raw string) (uuid.UUID, error) {
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
