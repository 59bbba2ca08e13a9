package main

import (
	"context"
	"log"

	"tour-backoffice/config"
	"tour-backoffice/internal/module/booking/handler"
	"tour-backoffice/internal/module/booking/models/request"
	"tour-backoffice/internal/module/booking/repositories"
	"tour-backoffice/internal/module/booking/usecases"
	"tour-backoffice/internal/pkg/http"
	"tour-backoffice/internal/pkg/httpclient"
	log_internal "tour-backoffice/internal/pkg/log"
	"tour-backoffice/internal/pkg/messagestream"
	"tour-backoffice/internal/pkg/middleware"
	"tour-backoffice/internal/pkg/paymob"
	"tour-backoffice/internal/pkg/paypal"
	router "tour-backoffice/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/gofiber/fiber/v2"
)

type service struct {
	app       *fiber.App
	routers   []*message.Router
	repo      repositories.Repositories
	publisher message.Publisher
	logger    log_internal.Logger
}

func main() {
	cfg := config.InitConfig()

	svc := initService(cfg)
	defer svc.repo.Close()

	for _, r := range svc.routers {
		go func(r *message.Router) {
			if err := r.Run(context.Background()); err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	// start http server
	http.StartHttpServer(svc.app, &cfg.HttpServer, svc.logger)

	for _, r := range svc.routers {
		if err := r.Close(); err != nil {
			svc.logger.Error(context.Background(), "Failed to close message router", err)
		}
	}
	if svc.publisher != nil {
		if err := svc.publisher.Close(); err != nil {
			svc.logger.Error(context.Background(), "Failed to close publisher", err)
		}
	}
}

func initService(cfg *config.Config) *service {
	ctx := context.Background()

	// init logger
	logZap := log_internal.SetupLogger(cfg.App.LogLevel)
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()

	// init storage
	repo := repositories.New(cfg, logger)

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// init message stream
	watermillLogger := messagestream.NewZapLoggerAdapter(logZap)
	amqp := messagestream.NewAmpq(&cfg.MessageStream, watermillLogger)

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
		publisher = nil
	}

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
		subscriber = nil
	}

	// init gateways
	paymobClient := paymob.New(&cfg.Paymob, httpClient, logger)
	paypalClient := paypal.New(&cfg.Paypal, httpClient, logger)

	bookingUsecase := usecases.New(repo, logger, publisher, paymobClient, paypalClient)
	bookingHandler := handler.BookingHandler{
		Log:       logger,
		Validator: request.NewValidator(),
		Usecase:   bookingUsecase,
	}
	m := middleware.Middleware{
		Log: logger,
	}

	var messageRouters []*message.Router
	if publisher != nil && subscriber != nil {
		for _, topic := range []string{usecases.TopicBookingCreated, usecases.TopicBookingUpdated, usecases.TopicPaymentRecorded} {
			r, err := messagestream.NewRouter(publisher, usecases.TopicPoisonedQueue, topic+"_handler", topic, subscriber, bookingHandler.ConsumeBookingEvent, watermillLogger)
			if err != nil {
				logger.Error(ctx, "Failed to create "+topic+" router", err)
				continue
			}
			messageRouters = append(messageRouters, r)
		}
	}

	serverHttp := http.SetupHttpEngine(cfg.App.Name)
	app := router.Initialize(serverHttp, &bookingHandler, &m)

	return &service{
		app:       app,
		routers:   messageRouters,
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}
