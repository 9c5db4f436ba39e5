package handlers

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"portfolio/internal/storage"
)

// storageErrorResponse maps a storage-layer error onto an HTTP response:
// ValidationError 400, NotFoundError 404, ConflictError 409, everything else
// (including TransportError) 500.
func storageErrorResponse(c *fiber.Ctx, err error, action string) error {
	log.Printf("Error %s: %v", action, err)
	switch {
	case storage.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	case storage.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": err.Error(),
		})
	case storage.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": err.Error(),
		})
	default:
		// Transport failures carry driver detail (DSNs, hosts); only the log
		// gets that, the client gets a generic message.
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not " + action,
		})
	}
}

// validationErrorResponse renders validator.ValidationErrors as a field map.
func validationErrorResponse(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// authenticatedUserID returns the identity set by the auth middleware, or ""
// on an unauthenticated request.
func authenticatedUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
