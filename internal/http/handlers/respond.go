package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"grocerhub/internal/services"
)

// fail maps service errors onto HTTP statuses. Domain-rule violations are
// normal reported outcomes; anything unmapped is a server-side failure.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrBadCreds):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrDuplicateName),
		errors.Is(err, services.ErrDuplicatePhone),
		errors.Is(err, services.ErrInsufficientStock):
		status = fiber.StatusConflict
	case errors.Is(err, services.ErrAdminImmutable):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidPurchase),
		errors.Is(err, services.ErrEmptyCart):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
