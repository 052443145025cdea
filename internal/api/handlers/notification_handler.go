package handlers

import (
	"errors"
	"frescoguard/domain"
	"frescoguard/internal/api/presenters"
	"frescoguard/pkg/notification"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetPending(c *fiber.Ctx) error
		ProcessDue(c *fiber.Ctx) error
		MarkRead(c *fiber.Ctx) error
		SendTest(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
	}
}

func (h *notificationHandler) GetPending(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	notifications, err := h.notificationService.GetPending(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetNotifications, err)
	}
	return c.JSON(notifications)
}

func (h *notificationHandler) ProcessDue(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.notificationService.ProcessDue(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedProcessNotifications, err)
	}

	if res.Total == 0 {
		return presenters.SuccessResponse(c, fiber.Map{"processed": 0}, fiber.StatusOK, domain.MessageNoPendingNotifications)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"processed": res.Processed,
		"errors":    res.Errors,
		"total":     res.Total,
	}, fiber.StatusOK, "")
}

func (h *notificationHandler) MarkRead(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.notificationService.MarkRead(c.Context(), c.Params("id"), userID); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageNotificationNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedMarkRead, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, "")
}

// SendTest takes an optional body; an empty one uses the default texts.
func (h *notificationHandler) SendTest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.TestNotificationRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}

	res, err := h.notificationService.SendTest(c.Context(), userID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedTestNotification, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"title":   res.Title,
		"message": res.Message,
	}, fiber.StatusOK, "")
}
