package http

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	"tour-backoffice/config"
	"tour-backoffice/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupHttpEngine builds the fiber app with the goccy codec, panic recovery
// and permissive CORS for the admin UI.
func SetupHttpEngine(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New())

	return app
}

// ErrorHandler renders errors that escape a handler as {"message": ...}.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	if stderrors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.GetLogger().Error(ctx.UserContext(), "unhandled error", err)
	}

	return ctx.Status(code).JSON(fiber.Map{"message": message})
}

// StartHttpServer serves until SIGINT or SIGTERM, then drains in-flight
// requests for at most cfg.ShutdownTimeout.
func StartHttpServer(app *fiber.App, cfg *config.HttpServerConfig, logger log.Logger) {
	ctx := context.Background()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error(ctx, "error start http server", err)
		}
	}()
	logger.Info(ctx, "http server started on port "+cfg.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down http server")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		logger.Error(ctx, "error shutdown http server", err)
	}
}
