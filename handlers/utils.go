package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"notes-api/middleware"
	"notes-api/services"
	"notes-api/validator"
)

func success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func unprocessable(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":      message,
		"request_id": middleware.RequestID(c),
	})
}

func validationError(c *fiber.Ctx, err error) error {
	var details validator.ValidationErrors
	if !errors.As(err, &details) {
		return unprocessable(c, err.Error())
	}
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":      "Validation failed",
		"details":    details,
		"request_id": middleware.RequestID(c),
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":      message,
		"request_id": middleware.RequestID(c),
	})
}

func serverErrorWithDetails(c *fiber.Ctx, message string, err error) error {
	slog.Error("server error",
		"request_id", middleware.RequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"message", message,
		"error", err,
	)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":      message,
		"request_id": middleware.RequestID(c),
	})
}

// serviceError maps a NoteService error onto a response.
func serviceError(c *fiber.Ctx, message string, err error) error {
	if errors.Is(err, services.ErrNoteNotFound) {
		return notFound(c, "Note not found")
	}
	return serverErrorWithDetails(c, message, err)
}
