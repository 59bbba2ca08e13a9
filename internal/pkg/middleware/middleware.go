package middleware

import (
	"strconv"
	"time"

	"tour-backoffice/internal/pkg/errors"
	"tour-backoffice/internal/pkg/helpers"
	"tour-backoffice/internal/pkg/log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = fiber.HeaderXRequestID
	LocalRequestID  = "requestid"
	LocalID         = "id"
)

type Middleware struct {
	Log log.Logger
}

// RequestID reuses an incoming X-Request-ID or generates one, echoes it in
// the response and stores it in locals under LocalRequestID.
func (m *Middleware) RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     HeaderRequestID,
		ContextKey: LocalRequestID,
		Generator:  uuid.NewString,
	})
}

// RequestLogger copies the request id into the request context and logs
// one line per request once the handler chain returns. It runs after
// RequestID.
func (m *Middleware) RequestLogger(ctx *fiber.Ctx) error {
	start := time.Now()

	if requestID, ok := ctx.Locals(LocalRequestID).(string); ok {
		ctx.SetUserContext(log.WithRequestID(ctx.UserContext(), requestID))
	}

	err := ctx.Next()

	m.Log.Info(ctx.UserContext(), "request",
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.Path()),
		zap.Int("status", ctx.Response().StatusCode()),
		zap.Duration("latency", time.Since(start)),
	)
	return err
}

// ParseID accepts only a positive integer :id and stores it in locals
// under LocalID.
func (m *Middleware) ParseID(ctx *fiber.Ctx) error {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		m.Log.Warn(ctx.UserContext(), "invalid id param", zap.String("id", ctx.Params("id")))
		return helpers.RespError(ctx, m.Log, errors.BadRequest("invalid id"))
	}

	ctx.Locals(LocalID, id)
	return ctx.Next()
}
