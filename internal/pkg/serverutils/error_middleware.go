package serverutils

import (
	"errors"

	"migratemate-retention-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps errors escaping the controllers onto the JSON
// envelope. NotFound-class sentinels become 404 and are final; everything
// else is a 500 the client may retry, since all mutating operations are
// idempotent.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		switch {
		case errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrNoSubscription),
			errors.Is(err, service.ErrNoEligibleSub),
			errors.Is(err, service.ErrNoCancellationRecord):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(fiber.StatusNotFound, err.Error()))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
		}
	}
}
