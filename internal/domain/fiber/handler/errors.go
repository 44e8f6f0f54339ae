package handler

import (
	"errors"

	e "github.com/fadilmartias/job-board/internal/errors"
	"github.com/fadilmartias/job-board/internal/util"
	"github.com/gofiber/fiber/v2"
)

// respondError converts a usecase error into the HTTP taxonomy: 404 for
// missing entities, 409 for uniqueness conflicts, 403 for identity
// mismatches, 400 for invalid input and business-rule violations, 500
// with a generic message otherwise.
func respondError(c *fiber.Ctx, err error) error {
	var code int
	message := err.Error()
	switch {
	case errors.Is(err, e.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, e.ErrConflict):
		code = fiber.StatusConflict
	case errors.Is(err, e.ErrForbidden):
		code = fiber.StatusForbidden
	case errors.Is(err, e.ErrInvalidInput),
		errors.Is(err, e.ErrNotOpen),
		errors.Is(err, e.ErrMessagingClosed),
		errors.Is(err, e.ErrInvalidTransition):
		code = fiber.StatusBadRequest
	default:
		code = fiber.StatusInternalServerError
		message = "Internal server error"
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    code,
		Message: message,
	}, err)
}

func validationError(c *fiber.Ctx, fields map[string]string) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "Validation failed",
		Details: fields,
	})
}

func invalidJSON(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "Invalid JSON",
	}, err)
}
