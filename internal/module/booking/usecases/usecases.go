package usecases

import (
	"context"
	"strings"

	"tour-backoffice/internal/module/booking/models/entity"
	"tour-backoffice/internal/module/booking/models/request"
	"tour-backoffice/internal/module/booking/models/response"
	"tour-backoffice/internal/module/booking/repositories"
	"tour-backoffice/internal/pkg/errors"
	"tour-backoffice/internal/pkg/log"
	"tour-backoffice/internal/pkg/paymob"
	"tour-backoffice/internal/pkg/paypal"

	"github.com/ThreeDotsLabs/watermill/message"
	"golang.org/x/crypto/bcrypt"
)

type PaymobGateway interface {
	Setup(ctx context.Context, amountCents int64, currency string, customer paymob.Customer) (string, error)
}

type PaypalGateway interface {
	ClientToken(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, intent, amount, currency string) (paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (paypal.Order, error)
}

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	paymob  PaymobGateway
	paypal  PaypalGateway
}

type Usecase interface {
	// tours
	GetTours(ctx context.Context) ([]entity.Tour, error)
	GetTour(ctx context.Context, id int64) (entity.Tour, error)
	CreateTour(ctx context.Context, payload *request.CreateTour) (entity.Tour, error)
	UpdateTour(ctx context.Context, id int64, payload *request.UpdateTour) (entity.Tour, error)
	// customers
	GetCustomers(ctx context.Context) ([]entity.Customer, error)
	GetCustomer(ctx context.Context, id int64) (entity.Customer, error)
	CreateCustomer(ctx context.Context, payload *request.CreateCustomer) (entity.Customer, error)
	// bookings
	GetBookings(ctx context.Context) ([]entity.Booking, error)
	GetBooking(ctx context.Context, id int64) (entity.Booking, error)
	CreateBooking(ctx context.Context, payload *request.CreateBooking) (entity.Booking, error)
	UpdateBooking(ctx context.Context, id int64, payload *request.UpdateBooking) (entity.Booking, error)
	ExportBookings(ctx context.Context) (string, error)
	// payments
	GetPayments(ctx context.Context) ([]entity.Payment, error)
	CreatePayment(ctx context.Context, payload *request.CreatePayment) (entity.Payment, error)
	// users
	CreateUser(ctx context.Context, payload *request.CreateUser) (entity.User, error)
	GetUser(ctx context.Context, id int64) (entity.User, error)
	Login(ctx context.Context, payload *request.Login) (entity.User, error)
	// maintenance
	Seed(ctx context.Context) error
	Health(ctx context.Context) error
	// gateways
	SetupPaymob(ctx context.Context, payload *request.PaymobSetup) (response.PaymobSetup, error)
	SetupPaypal(ctx context.Context) (response.PaypalSetup, error)
	CreatePaypalOrder(ctx context.Context, payload *request.PaypalOrder) (response.PaypalOrder, error)
	CapturePaypalOrder(ctx context.Context, orderID string) (response.PaypalOrder, error)
	// message stream
	ConsumeBookingEvent(ctx context.Context, event *request.BookingEvent) error
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, paymob PaymobGateway, paypal PaypalGateway) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		paymob:  paymob,
		paypal:  paypal,
	}
}

// storeError logs a storage failure and turns it into a response error.
// Unique violations become 409, everything else 500.
func (u *usecase) storeError(ctx context.Context, msg string, err error) error {
	u.log.Error(ctx, msg, err)
	if errors.Is(err, repositories.ErrDuplicate) {
		return errors.Conflict("record already exists")
	}
	return errors.InternalServerError(msg)
}

func (u *usecase) GetTours(ctx context.Context) ([]entity.Tour, error) {
	tours, err := u.repo.GetTours(ctx)
	if err != nil {
		return nil, u.storeError(ctx, "error find tours", err)
	}
	return tours, nil
}

func (u *usecase) GetTour(ctx context.Context, id int64) (entity.Tour, error) {
	tour, err := u.repo.GetTour(ctx, id)
	if err != nil {
		return entity.Tour{}, u.storeError(ctx, "error find tour by id", err)
	}
	if tour == nil {
		return entity.Tour{}, errors.NotFound("Tour not found")
	}
	return *tour, nil
}

func (u *usecase) CreateTour(ctx context.Context, payload *request.CreateTour) (entity.Tour, error) {
	tour, err := u.repo.CreateTour(ctx, payload.ToEntity())
	if err != nil {
		return entity.Tour{}, u.storeError(ctx, "error create tour", err)
	}
	return tour, nil
}

func (u *usecase) UpdateTour(ctx context.Context, id int64, payload *request.UpdateTour) (entity.Tour, error) {
	tour, err := u.repo.UpdateTour(ctx, id, payload.ToPatch())
	if err != nil {
		return entity.Tour{}, u.storeError(ctx, "error update tour", err)
	}
	if tour == nil {
		return entity.Tour{}, errors.NotFound("Tour not found")
	}
	return *tour, nil
}

func (u *usecase) GetCustomers(ctx context.Context) ([]entity.Customer, error) {
	customers, err := u.repo.GetCustomers(ctx)
	if err != nil {
		return nil, u.storeError(ctx, "error find customers", err)
	}
	return customers, nil
}

func (u *usecase) GetCustomer(ctx context.Context, id int64) (entity.Customer, error) {
	customer, err := u.repo.GetCustomer(ctx, id)
	if err != nil {
		return entity.Customer{}, u.storeError(ctx, "error find customer by id", err)
	}
	if customer == nil {
		return entity.Customer{}, errors.NotFound("Customer not found")
	}
	return *customer, nil
}

func (u *usecase) CreateCustomer(ctx context.Context, payload *request.CreateCustomer) (entity.Customer, error) {
	customers, err := u.repo.GetCustomers(ctx)
	if err != nil {
		return entity.Customer{}, u.storeError(ctx, "error find customers", err)
	}
	for _, c := range customers {
		if strings.EqualFold(c.Email, payload.Email) {
			return entity.Customer{}, errors.Conflict("Customer email already exists")
		}
	}

	customer, err := u.repo.CreateCustomer(ctx, payload.ToEntity())
	if err != nil {
		return entity.Customer{}, u.storeError(ctx, "error create customer", err)
	}
	return customer, nil
}

func (u *usecase) GetBookings(ctx context.Context) ([]entity.Booking, error) {
	bookings, err := u.repo.GetBookings(ctx)
	if err != nil {
		return nil, u.storeError(ctx, "error find bookings", err)
	}
	return bookings, nil
}

func (u *usecase) GetBooking(ctx context.Context, id int64) (entity.Booking, error) {
	booking, err := u.repo.GetBooking(ctx, id)
	if err != nil {
		return entity.Booking{}, u.storeError(ctx, "error find booking by id", err)
	}
	if booking == nil {
		return entity.Booking{}, errors.NotFound("Booking not found")
	}
	return *booking, nil
}

func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking) (entity.Booking, error) {
	booking, err := u.repo.CreateBooking(ctx, payload.ToEntity())
	if err != nil {
		return entity.Booking{}, u.storeError(ctx, "error create booking", err)
	}
	u.publishEvent(ctx, TopicBookingCreated, booking)
	return booking, nil
}

func (u *usecase) UpdateBooking(ctx context.Context, id int64, payload *request.UpdateBooking) (entity.Booking, error) {
	booking, err := u.repo.UpdateBooking(ctx, id, payload.ToPatch())
	if err != nil {
		return entity.Booking{}, u.storeError(ctx, "error update booking", err)
	}
	if booking == nil {
		return entity.Booking{}, errors.NotFound("Booking not found")
	}
	u.publishEvent(ctx, TopicBookingUpdated, *booking)
	return *booking, nil
}

// ExportBookings renders every booking as CSV, resolving customer names and
// tour titles. Unresolved references render as Unknown.
func (u *usecase) ExportBookings(ctx context.Context) (string, error) {
	bookings, err := u.repo.GetBookings(ctx)
	if err != nil {
		return "", u.storeError(ctx, "error find bookings", err)
	}
	tours, err := u.repo.GetTours(ctx)
	if err != nil {
		return "", u.storeError(ctx, "error find tours", err)
	}
	customers, err := u.repo.GetCustomers(ctx)
	if err != nil {
		return "", u.storeError(ctx, "error find customers", err)
	}
	return bookingsCSV(bookings, customers, tours), nil
}

func (u *usecase) GetPayments(ctx context.Context) ([]entity.Payment, error) {
	payments, err := u.repo.GetPayments(ctx)
	if err != nil {
		return nil, u.storeError(ctx, "error find payments", err)
	}
	return payments, nil
}

func (u *usecase) CreatePayment(ctx context.Context, payload *request.CreatePayment) (entity.Payment, error) {
	payment, err := u.repo.CreatePayment(ctx, payload.ToEntity())
	if err != nil {
		return entity.Payment{}, u.storeError(ctx, "error create payment", err)
	}
	u.publishEvent(ctx, TopicPaymentRecorded, payment)
	return payment, nil
}

func (u *usecase) CreateUser(ctx context.Context, payload *request.CreateUser) (entity.User, error) {
	existing, err := u.repo.GetUserByUsername(ctx, payload.Username)
	if err != nil {
		return entity.User{}, u.storeError(ctx, "error find user by username", err)
	}
	if existing != nil {
		return entity.User{}, errors.Conflict("Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Error(ctx, "error hash password", err)
		return entity.User{}, errors.InternalServerError("error hash password")
	}

	user, err := u.repo.CreateUser(ctx, entity.User{
		Username: payload.Username,
		Password: string(hash),
		FullName: payload.FullName,
		Role:     entity.UserRole(payload.Role),
		Email:    payload.Email,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return entity.User{}, errors.Conflict("Username already exists")
		}
		return entity.User{}, u.storeError(ctx, "error create user", err)
	}
	return user, nil
}

func (u *usecase) GetUser(ctx context.Context, id int64) (entity.User, error) {
	user, err := u.repo.GetUser(ctx, id)
	if err != nil {
		return entity.User{}, u.storeError(ctx, "error find user by id", err)
	}
	if user == nil {
		return entity.User{}, errors.NotFound("User not found")
	}
	return *user, nil
}

func (u *usecase) Login(ctx context.Context, payload *request.Login) (entity.User, error) {
	user, err := u.repo.GetUserByUsername(ctx, payload.Username)
	if err != nil {
		return entity.User{}, u.storeError(ctx, "error find user by username", err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		return entity.User{}, errors.UnauthorizedError("Invalid username or password")
	}
	return *user, nil
}

// Seed loads the demo fixture only into a store without tours, so calling
// it repeatedly leaves a single copy.
func (u *usecase) Seed(ctx context.Context) error {
	tours, err := u.repo.GetTours(ctx)
	if err != nil {
		u.log.Error(ctx, "error find tours", err)
		return errors.InternalServerError("Failed to seed database")
	}
	if len(tours) > 0 {
		u.log.Info(ctx, "tours already present, skipping seed")
		return nil
	}

	if err := repositories.Seed(ctx, u.repo); err != nil {
		u.log.Error(ctx, "error seed database", err)
		return errors.InternalServerError("Failed to seed database")
	}
	u.log.Info(ctx, "database seeded")
	return nil
}

func (u *usecase) Health(ctx context.Context) error {
	if err := u.repo.Ping(ctx); err != nil {
		u.log.Error(ctx, "storage ping failed", err)
		return errors.InternalServerError("storage unavailable")
	}
	return nil
}
