package api

import (
	"calsync-lab/errors"

	"github.com/gofiber/fiber/v2"
)

// Every REST response carries a success flag, like the surface the
// desktop clients already parse.

func success(c *fiber.Ctx, status int, body fiber.Map) error {
	body["success"] = true
	return c.Status(status).JSON(body)
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// failFromErr picks the status from the service error taxonomy.
func failFromErr(c *fiber.Ctx, err error, message string) error {
	return fail(c, errors.HTTPStatus(err), message)
}
