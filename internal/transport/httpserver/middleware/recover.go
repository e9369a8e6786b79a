package middleware

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"intranet-portal/internal/transport/httpserver/dto"
)

// Recover returns a middleware that recovers from panics. A recovered panic
// surfaces as a generic 500 without leaking internals.
func Recover(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("error", r),
					zap.String("stack", string(debug.Stack())),
					zap.String("path", c.Path()),
				)

				err = c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Internal server error", dto.CodeInternalError))
			}
		}()

		return c.Next()
	}
}
