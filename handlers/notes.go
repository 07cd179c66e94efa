package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"notes-api/app"
	"notes-api/database"
	"notes-api/models"
	"notes-api/validator"
)

// parseBody decodes a JSON body with the app's decoder regardless of the
// Content-Type header.
func parseBody(c *fiber.Ctx, out interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return fiber.ErrUnprocessableEntity
	}
	return c.App().Config().JSONDecoder(body, out)
}

// parseNoteID reads and validates the :id route parameter.
func parseNoteID(c *fiber.Ctx, a *app.App) (int64, error) {
	var path models.NotePath
	if err := c.ParamsParser(&path); err != nil {
		return 0, validator.Field("id", "int", "id must be an integer", c.Params("id"))
	}
	if err := a.Validator.Validate(&path); err != nil {
		return 0, err
	}
	return path.ID, nil
}

// CreateNote stores a new note and returns it with its id and created_date
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := parseBody(c, &req); err != nil {
			return unprocessable(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.Notes.Create(c.UserContext(), req)
		if err != nil {
			return serviceError(c, "Failed to create note", err)
		}

		return created(c, note)
	}
}

// GetNote retrieves a single note by id
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseNoteID(c, a)
		if err != nil {
			return validationError(c, err)
		}

		note, err := a.Notes.Get(c.UserContext(), id)
		if err != nil {
			return serviceError(c, "Failed to fetch note", err)
		}

		return success(c, note)
	}
}

// ListNotes returns one page of notes, optionally filtered by search term
// and completion. The total number of matches is sent in X-Total-Count.
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := models.ListNotesQuery{Limit: database.DefaultListLimit}
		if err := c.QueryParser(&query); err != nil {
			return unprocessable(c, "Invalid query parameters")
		}

		if err := a.Validator.Validate(&query); err != nil {
			return validationError(c, err)
		}

		notes, total, err := a.Notes.List(c.UserContext(), query.Params())
		if err != nil {
			return serviceError(c, "Failed to fetch notes", err)
		}

		c.Set("X-Total-Count", strconv.FormatInt(total, 10))
		return success(c, notes)
	}
}

// UpdateNote overwrites title, description and completed of a note
func UpdateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseNoteID(c, a)
		if err != nil {
			return validationError(c, err)
		}

		var req models.UpdateNoteRequest
		if err := parseBody(c, &req); err != nil {
			return unprocessable(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		note, err := a.Notes.Update(c.UserContext(), id, req)
		if err != nil {
			return serviceError(c, "Failed to update note", err)
		}

		return success(c, note)
	}
}

// DeleteNote removes a note and returns it as it was
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseNoteID(c, a)
		if err != nil {
			return validationError(c, err)
		}

		note, err := a.Notes.Delete(c.UserContext(), id)
		if err != nil {
			return serviceError(c, "Failed to delete note", err)
		}

		return success(c, note)
	}
}
