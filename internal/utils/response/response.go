// Package response renders the result-or-error envelope every operation is
// exposed through: data present iff success, error present iff not.
package response

import (
	"github.com/gofiber/fiber/v2"

	"paisa/internal/errors"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ValidationError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnprocessableEntity, message)
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized")
}

// Domain maps a service error to the envelope: injected network failures
// surface as 503 so callers show a retry prompt, business rejections as 400.
func Domain(c *fiber.Ctx, err error) error {
	if de, ok := errors.AsDomain(err); ok {
		status := fiber.StatusBadRequest
		switch de.Code {
		case errors.CodeNetworkFailure:
			status = fiber.StatusServiceUnavailable
		case errors.ErrInvalidOTP.Code, errors.ErrInvalidToken.Code:
			status = fiber.StatusUnauthorized
		case errors.ErrRequestNotFound.Code:
			status = fiber.StatusNotFound
		}
		return Error(c, status, de.Message)
	}
	return Error(c, fiber.StatusInternalServerError, "Something went wrong. Please try again.")
}
