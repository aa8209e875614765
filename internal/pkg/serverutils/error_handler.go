package serverutils

import (
	"errors"
	"fmt"

	"ai-tireshop-be/internal/pkg/logger"
	"ai-tireshop-be/pkg/chat/chaterr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates pipeline errors into the HTTP contract.
// Validation failures are 400 with the first failed rule; rate limiting is
// 429 with a Retry-After header; everything unexpected is a generic 500 so
// internals never leak to the client.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var ce *chaterr.Error
		if errors.As(err, &ce) {
			switch ce.Kind {
			case chaterr.KindMalformedRequest,
				chaterr.KindInvalidMessage,
				chaterr.KindInvalidSession,
				chaterr.KindInvalidChannel:
				return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": ce.Message,
				})
			case chaterr.KindRateLimited:
				ctx.Set("Retry-After", fmt.Sprintf("%d", ce.RetryAfter))
				return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error":      "Rate limit exceeded",
					"message":    "You're sending messages too quickly. Please wait a moment and try again.",
					"retryAfter": ce.RetryAfter,
				})
			case chaterr.KindMisconfiguredServer:
				log.Error("HTTP", "server misconfiguration", map[string]interface{}{"error": ce.Error()})
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Server is not configured correctly",
				})
			}
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		log.Error("HTTP", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
