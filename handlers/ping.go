package handlers

import (
	"github.com/gofiber/fiber/v2"

	"notes-api/app"
)

// Ping reports API and database status. It always answers 200 so monitoring
// can tell a degraded service from a dead one.
func Ping(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return success(c, a.Health.Check(c.UserContext()))
	}
}
