package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
)

// IDENTITY_KEY is where the verified token is stored in the request locals.
const IDENTITY_KEY string = "identity"

func Authorize(signKey string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(signKey),
		ErrorHandler: jwtError,
		ContextKey:   IDENTITY_KEY,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"status": "error", "message": "Missing or malformed JWT", "data": nil})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"status": "error", "message": "Invalid or expired JWT", "data": nil})
}
