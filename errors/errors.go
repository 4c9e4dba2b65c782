package errors

import (
	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"

	"flight-booking-system/model"
)

func RaiseError(context *fiber.Ctx, status int, message string, data string) error {
	return context.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"data":    data})
}

func RaisePermissionsError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusUnauthorized, "lack of permissions", data)
}

func RaiseInternalServerError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusInternalServerError, "internal error", data)
}

func RaiseBadRequestError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusBadRequest, "bad request", data)
}

func RaiseNotFoundError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusNotFound, "resource not found", data)
}

func RaiseConflictError(context *fiber.Ctx, data string) error {
	return RaiseError(context, fiber.StatusConflict, "conflict", data)
}

// RaiseSystemError picks the response status from the kind of a domain error.
func RaiseSystemError(context *fiber.Ctx, err error) error {
	switch {
	case pkgerrors.Is(err, model.ErrNotFound):
		return RaiseNotFoundError(context, err.Error())
	case pkgerrors.Is(err, model.ErrDuplicateID), pkgerrors.Is(err, model.ErrDuplicateSchedule):
		return RaiseConflictError(context, err.Error())
	case pkgerrors.Is(err, model.ErrInvalidInput),
		pkgerrors.Is(err, model.ErrFlightFull),
		pkgerrors.Is(err, model.ErrDeparted),
		pkgerrors.Is(err, model.ErrCancelled),
		pkgerrors.Is(err, model.ErrNoSeatsAvailable):
		return RaiseBadRequestError(context, err.Error())
	default:
		return RaiseInternalServerError(context, err.Error())
	}
}
