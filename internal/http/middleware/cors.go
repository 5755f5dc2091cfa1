package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS wraps the stock cors middleware. The stock preflight answer is
// 204 No Content; it is rewritten to 200 OK with a small JSON body so both
// transports report the same preflight status.
func CORS() fiber.Handler {
	handler := cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization",
	})
	return func(c *fiber.Ctx) error {
		if err := handler(c); err != nil {
			return err
		}
		if c.Method() == fiber.MethodOptions && c.Response().StatusCode() == fiber.StatusNoContent {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "CORS preflight"})
		}
		return nil
	}
}
