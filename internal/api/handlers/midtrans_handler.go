package handlers

import (
	"errors"
	"frescoguard/domain"
	"frescoguard/internal/api/presenters"
	"frescoguard/internal/utils"
	"frescoguard/pkg/midtrans"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MidtransHandler interface {
		CreateCheckout(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	midtransHandler struct {
		midtransService midtrans.MidtransService
		validator       *validator.Validate
	}
)

func NewMidtransHandler(midtransService midtrans.MidtransService, validator *validator.Validate) MidtransHandler {
	return &midtransHandler{
		midtransService: midtransService,
		validator:       validator,
	}
}

func (h *midtransHandler) CreateCheckout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CheckoutRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, utils.ValidationMessage(err, req, domain.MessageInvalidPlan), err)
	}

	res, err := h.midtransService.CreateCheckout(c.Context(), *req, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPlan):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidPlan, err)
		case errors.Is(err, domain.ErrPaymentsDisabled):
			return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessagePaymentsDisabled, err)
		case errors.Is(err, domain.ErrPaymentGateway):
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedCheckout, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCheckout, err)
		}
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"url":     res.URL,
		"token":   res.Token,
		"orderId": res.OrderID,
	}, fiber.StatusOK, "")
}

func (h *midtransHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	notification := new(domain.MidtransNotification)
	if err := c.BodyParser(notification); err != nil || notification.OrderID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.midtransService.HandleNotification(c.Context(), *notification); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageOrderNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, "")
}
