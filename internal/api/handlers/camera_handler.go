package handlers

import (
	"errors"
	"frescoguard/domain"
	"frescoguard/internal/api/presenters"
	"frescoguard/pkg/camera"

	"github.com/gofiber/fiber/v2"
)

type (
	CameraHandler interface {
		GetPhotoCount(c *fiber.Ctx) error
		RegisterPhoto(c *fiber.Ctx) error
		ResetPhotos(c *fiber.Ctx) error
	}

	cameraHandler struct {
		cameraService camera.CameraService
	}
)

func NewCameraHandler(cameraService camera.CameraService) CameraHandler {
	return &cameraHandler{
		cameraService: cameraService,
	}
}

func (h *cameraHandler) GetPhotoCount(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(domain.NewCameraUsage(domain.PlanFree, 0))
	}

	usage, err := h.cameraService.GetUsage(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetPhotoCount, err)
	}
	return c.JSON(usage)
}

func (h *cameraHandler) RegisterPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	usage, err := h.cameraService.RegisterPhoto(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrPhotoLimitReached) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessagePhotoLimitReached, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdatePhotos, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"photosTaken":  usage.PhotosTaken,
		"limit":        usage.Limit,
		"remaining":    usage.Remaining,
		"canTakePhoto": usage.CanTakePhoto,
	}, fiber.StatusOK, "")
}

func (h *cameraHandler) ResetPhotos(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.cameraService.ResetPhotos(c.Context(), userID); err != nil {
		if errors.Is(err, domain.ErrDevelopmentOnly) {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageDevelopmentOnly, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdatePhotos, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessResetPhotos)
}
