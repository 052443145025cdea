package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// SuccessResponse writes data with success set to true. message is added
// only when non-empty.
func SuccessResponse(c *fiber.Ctx, data fiber.Map, statusCode int, message string) error {
	res := fiber.Map{"success": true}
	for k, v := range data {
		res[k] = v
	}
	if message != "" {
		res["message"] = message
	}
	return c.Status(statusCode).JSON(res)
}

// ErrorResponse writes {"error": message}. err is logged, never sent.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	if err != nil && statusCode >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
	} else if err != nil {
		log.Warnf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(statusCode).JSON(fiber.Map{"error": message})
}
