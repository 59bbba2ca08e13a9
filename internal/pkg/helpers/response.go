package helpers

import (
	"net/http"

	"tour-backoffice/internal/pkg/errors"
	"tour-backoffice/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
)

type errorResponse struct {
	Message string `json:"message"`
}

// RespSuccess writes data as the whole response body with status 200.
func RespSuccess(ctx *fiber.Ctx, log log.Logger, data any, message string) error {
	log.Debug(ctx.UserContext(), message)
	return ctx.Status(http.StatusOK).JSON(data)
}

func RespCreated(ctx *fiber.Ctx, log log.Logger, data any, message string) error {
	log.Debug(ctx.UserContext(), message)
	return ctx.Status(http.StatusCreated).JSON(data)
}

// RespError writes {"message": ...}. Errors that carry no status are
// logged and reported as a generic 500.
func RespError(ctx *fiber.Ctx, log log.Logger, err error) error {
	var ce *errors.CustomError
	if !errors.As(err, &ce) {
		log.Error(ctx.UserContext(), "unhandled error", err)
		return ctx.Status(http.StatusInternalServerError).JSON(errorResponse{Message: "internal server error"})
	}
	return ctx.Status(ce.Code).JSON(errorResponse{Message: ce.Message})
}
