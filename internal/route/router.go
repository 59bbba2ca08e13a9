package router

import (
	"tour-backoffice/internal/module/booking/handler"
	"tour-backoffice/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *handler.BookingHandler, m *middleware.Middleware) *fiber.App {
	app.Use(m.RequestID(), m.RequestLogger)

	// health check
	app.Get("/health", handlerBooking.Health)

	Api := app.Group("/api")

	Api.Get("/tours", handlerBooking.GetTours)
	Api.Get("/tours/:id", m.ParseID, handlerBooking.GetTour)
	Api.Post("/tours", handlerBooking.CreateTour)
	Api.Put("/tours/:id", m.ParseID, handlerBooking.UpdateTour)

	Api.Get("/customers", handlerBooking.GetCustomers)
	Api.Get("/customers/:id", m.ParseID, handlerBooking.GetCustomer)
	Api.Post("/customers", handlerBooking.CreateCustomer)

	// export is registered before :id so it is not parsed as an id
	Api.Get("/bookings", handlerBooking.GetBookings)
	Api.Get("/bookings/export", handlerBooking.ExportBookings)
	Api.Get("/bookings/:id", m.ParseID, handlerBooking.GetBooking)
	Api.Post("/bookings", handlerBooking.CreateBooking)
	Api.Put("/bookings/:id", m.ParseID, handlerBooking.UpdateBooking)

	Api.Get("/payments", handlerBooking.GetPayments)
	Api.Post("/payments", handlerBooking.CreatePayment)

	Api.Post("/users", handlerBooking.CreateUser)
	Api.Get("/users/:id", m.ParseID, handlerBooking.GetUser)
	Api.Post("/auth/login", handlerBooking.Login)

	Api.Post("/seed", handlerBooking.Seed)

	// payment gateways
	Api.Post("/paymob/setup", handlerBooking.PaymobSetup)

	paypal := app.Group("/paypal")
	paypal.Get("/setup", handlerBooking.PaypalSetup)
	paypal.Post("/order", handlerBooking.PaypalCreateOrder)
	paypal.Post("/order/:orderID/capture", handlerBooking.PaypalCaptureOrder)

	return app
}
