package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse writes the `{error, details?}` shape the browser clients
// match on. The message string is the contract; details carry diagnostics.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	body := fiber.Map{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	return c.Status(code).JSON(body)
}

func SuccessResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}
