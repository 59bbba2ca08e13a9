package handler

import (
	"tour-backoffice/internal/module/booking/models/request"
	"tour-backoffice/internal/module/booking/models/response"
	"tour-backoffice/internal/module/booking/usecases"
	"tour-backoffice/internal/pkg/errors"
	"tour-backoffice/internal/pkg/helpers"
	"tour-backoffice/internal/pkg/log"
	"tour-backoffice/internal/pkg/middleware"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *BookingHandler) parse(ctx *fiber.Ctx, req any) error {
	if err := ctx.BodyParser(req); err != nil {
		h.Log.Error(ctx.UserContext(), "error parse request", err)
		return errors.BadRequest("invalid request body")
	}
	return nil
}

// bind parses the body into req and validates its struct tags.
func (h *BookingHandler) bind(ctx *fiber.Ctx, req any) error {
	if err := h.parse(ctx, req); err != nil {
		return err
	}
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Warn(ctx.UserContext(), "error validate request", err)
		return errors.BadRequest(request.ValidationMessage(err))
	}
	return nil
}

func id(ctx *fiber.Ctx) int64 {
	return ctx.Locals(middleware.LocalID).(int64)
}

func (h *BookingHandler) Health(ctx *fiber.Ctx) error {
	if err := h.Usecase.Health(ctx.UserContext()); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, response.Health{Status: "ok"}, "success health check")
}

func (h *BookingHandler) GetTours(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetTours(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get tours")
}

func (h *BookingHandler) GetTour(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetTour(ctx.UserContext(), id(ctx))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get tour")
}

func (h *BookingHandler) CreateTour(ctx *fiber.Ctx) error {
	var req request.CreateTour
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateTour(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "success create tour")
}

func (h *BookingHandler) UpdateTour(ctx *fiber.Ctx) error {
	var req request.UpdateTour
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	if err := req.Validate(h.Validator); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(request.ValidationMessage(err)))
	}

	resp, err := h.Usecase.UpdateTour(ctx.UserContext(), id(ctx), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success update tour")
}

func (h *BookingHandler) GetCustomers(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetCustomers(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get customers")
}

func (h *BookingHandler) GetCustomer(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetCustomer(ctx.UserContext(), id(ctx))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get customer")
}

func (h *BookingHandler) CreateCustomer(ctx *fiber.Ctx) error {
	var req request.CreateCustomer
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateCustomer(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "success create customer")
}

func (h *BookingHandler) GetBookings(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetBookings(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get bookings")
}

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetBooking(ctx.UserContext(), id(ctx))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking")
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "success create booking")
}

func (h *BookingHandler) UpdateBooking(ctx *fiber.Ctx) error {
	var req request.UpdateBooking
	if err := h.parse(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	if err := req.Validate(h.Validator); err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest(request.ValidationMessage(err)))
	}

	resp, err := h.Usecase.UpdateBooking(ctx.UserContext(), id(ctx), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success update booking")
}

func (h *BookingHandler) ExportBookings(ctx *fiber.Ctx) error {
	csv, err := h.Usecase.ExportBookings(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename=bookings_report.csv")
	return ctx.SendString(csv)
}

func (h *BookingHandler) GetPayments(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetPayments(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get payments")
}

func (h *BookingHandler) CreatePayment(ctx *fiber.Ctx) error {
	var req request.CreatePayment
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreatePayment(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "success create payment")
}

func (h *BookingHandler) CreateUser(ctx *fiber.Ctx) error {
	var req request.CreateUser
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreateUser(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespCreated(ctx, h.Log, resp, "success create user")
}

func (h *BookingHandler) GetUser(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.GetUser(ctx.UserContext(), id(ctx))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success get user")
}

func (h *BookingHandler) Login(ctx *fiber.Ctx) error {
	var req request.Login
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.Login(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success login")
}

func (h *BookingHandler) Seed(ctx *fiber.Ctx) error {
	if err := h.Usecase.Seed(ctx.UserContext()); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, response.Message{Message: "Database seeded successfully"}, "success seed")
}

func (h *BookingHandler) PaymobSetup(ctx *fiber.Ctx) error {
	var req request.PaymobSetup
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.SetupPaymob(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success setup paymob")
}

func (h *BookingHandler) PaypalSetup(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.SetupPaypal(ctx.UserContext())
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success setup paypal")
}

func (h *BookingHandler) PaypalCreateOrder(ctx *fiber.Ctx) error {
	var req request.PaypalOrder
	if err := h.bind(ctx, &req); err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.CreatePaypalOrder(ctx.UserContext(), &req)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success create paypal order")
}

func (h *BookingHandler) PaypalCaptureOrder(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.CapturePaypalOrder(ctx.UserContext(), ctx.Params("orderID"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}
	return helpers.RespSuccess(ctx, h.Log, resp, "success capture paypal order")
}

// ConsumeBookingEvent handles one message from the booking topics. A
// returned error sends the message to the poison queue.
func (h *BookingHandler) ConsumeBookingEvent(msg *message.Message) error {
	var req request.BookingEvent
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Error(msg.Context(), "error unmarshal message", err)
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(msg.Context(), "error validate message", err)
		return err
	}

	if err := h.Usecase.ConsumeBookingEvent(msg.Context(), &req); err != nil {
		h.Log.Error(msg.Context(), "error consume booking event", err)
		return err
	}

	return nil
}
