package handlers

import (
	"errors"
	"frescoguard/domain"
	"frescoguard/internal/api/presenters"
	"frescoguard/internal/utils"
	"frescoguard/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	FoodHandler interface {
		AddFood(c *fiber.Ctx) error
		GetFoods(c *fiber.Ctx) error
		GetFood(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
		UploadFoodImage(c *fiber.Ctx) error
		GetDashboard(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func foodError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrFoodNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFoodNotFound, err)
	case errors.Is(err, domain.ErrFoodNameRequired):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFoodNameRequired, err)
	case errors.Is(err, domain.ErrInvalidExpiryDate):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidExpiryDate, err)
	case errors.Is(err, domain.ErrFoodLimitReached):
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFoodLimitReached, err)
	case errors.Is(err, domain.ErrInvalidImageFormat):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidImageFormat, err)
	case errors.Is(err, domain.ErrStorageNotAvailable):
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageStorageNotAvailable, err)
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrParseUUID):
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, utils.MessageReferenceError, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, utils.PgErrorMessage(err, domain.MessageDuplicateFood, fallback), err)
	}
}

func (h *foodHandler) parseFoodRequest(c *fiber.Ctx) (*domain.FoodRequest, error) {
	req := new(domain.FoodRequest)
	if err := c.BodyParser(req); err != nil {
		return nil, presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return nil, presenters.ErrorResponse(c, fiber.StatusBadRequest, utils.ValidationMessage(err, req, domain.MessageInvalidData), err)
	}
	return req, nil
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req, errResp := h.parseFoodRequest(c)
	if req == nil {
		return errResp
	}

	res, err := h.foodService.AddFood(c.Context(), *req, userID)
	if err != nil {
		return foodError(c, err, domain.MessageFailedAddFood)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food": res}, fiber.StatusCreated, "")
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	foods, err := h.foodService.GetFoods(c.Context(), userID, c.Query("filter"))
	if err != nil {
		return foodError(c, err, domain.MessageFailedGetFoods)
	}

	return presenters.SuccessResponse(c, fiber.Map{"foods": foods}, fiber.StatusOK, "")
}

func (h *foodHandler) GetFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.foodService.GetFood(c.Context(), c.Params("id"), userID)
	if err != nil {
		return foodError(c, err, domain.MessageFailedGetFood)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food": res}, fiber.StatusOK, "")
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req, errResp := h.parseFoodRequest(c)
	if req == nil {
		return errResp
	}

	res, err := h.foodService.UpdateFood(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return foodError(c, err, domain.MessageFailedUpdateFood)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food": res}, fiber.StatusOK, "")
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.foodService.DeleteFood(c.Context(), c.Params("id"), userID); err != nil {
		return foodError(c, err, domain.MessageFailedDeleteFood)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFood)
}

func (h *foodHandler) UploadFoodImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageImageRequired, err)
	}

	res, err := h.foodService.UploadFoodImage(c.Context(), c.Params("id"), image, userID)
	if err != nil {
		return foodError(c, err, domain.MessageFailedUploadImage)
	}

	return presenters.SuccessResponse(c, fiber.Map{"food": res}, fiber.StatusOK, "")
}

// GetDashboard never fails: anonymous callers and storage errors get the
// zeroed dashboard.
func (h *foodHandler) GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return c.JSON(domain.EmptyDashboard())
	}

	res, err := h.foodService.GetDashboard(c.Context(), userID)
	if err != nil {
		log.Warnf("error building dashboard for user %s: %v", userID, err)
		return c.JSON(domain.EmptyDashboard())
	}
	return c.JSON(res)
}
