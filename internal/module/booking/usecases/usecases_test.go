package usecases_test

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"tour-backoffice/config"
	"tour-backoffice/internal/module/booking/mocks"
	"tour-backoffice/internal/module/booking/models/entity"
	"tour-backoffice/internal/module/booking/models/request"
	"tour-backoffice/internal/module/booking/models/response"
	"tour-backoffice/internal/module/booking/repositories"
	"tour-backoffice/internal/module/booking/usecases"
	"tour-backoffice/internal/pkg/errors"
	"tour-backoffice/internal/pkg/log"
	"tour-backoffice/internal/pkg/paymob"
	"tour-backoffice/internal/pkg/paypal"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
	p        *mockPublisher
	ctx      = context.Background()
)

type mockPublisher struct {
	mu       sync.Mutex
	err      error
	topics   []string
	messages []*message.Message
}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, msg := range messages {
		m.topics = append(m.topics, topic)
		m.messages = append(m.messages, msg)
	}
	return nil
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = &mockPublisher{}
	logMock = log.Setup()
	uc = usecases.New(repoMock, logMock, p,
		paymob.New(&config.PaymobConfig{BaseURL: "https://egypt.paymob.com/api"}, http.DefaultClient, logMock),
		paypal.New(&config.PaypalConfig{}, http.DefaultClient, logMock),
	)
}

func teardown() {
	repoMock = nil
	p = nil
	uc = nil
}

func flex(n int64) *request.FlexInt {
	f := request.FlexInt(n)
	return &f
}

func TestGetTour(t *testing.T) {
	testCases := []struct {
		name         string
		repoTour     *entity.Tour
		repoErr      error
		expectedCode int
	}{
		{name: "found", repoTour: &entity.Tour{ID: 1, Title: "Pyramids of Giza & Sphinx"}},
		{name: "not found", expectedCode: http.StatusNotFound},
		{name: "store failure", repoErr: stderrors.New("connection reset"), expectedCode: http.StatusInternalServerError},
		{name: "store not initialized", repoErr: repositories.ErrNotInitialized, expectedCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup()
			defer teardown()

			repoMock.On("GetTour", ctx, int64(1)).Return(tc.repoTour, tc.repoErr)

			tour, err := uc.GetTour(ctx, 1)

			if tc.expectedCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, *tc.repoTour, tour)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.expectedCode, errors.StatusCode(err))
			if tc.expectedCode == http.StatusNotFound {
				assert.EqualError(t, err, "Tour not found")
			}
		})
	}
}

func TestNotFoundMessages(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("GetCustomer", ctx, int64(9)).Return(nil, nil)
	repoMock.On("GetBooking", ctx, int64(9)).Return(nil, nil)
	repoMock.On("GetUser", ctx, int64(9)).Return(nil, nil)

	_, err := uc.GetCustomer(ctx, 9)
	assert.EqualError(t, err, "Customer not found")
	_, err = uc.GetBooking(ctx, 9)
	assert.EqualError(t, err, "Booking not found")
	_, err = uc.GetUser(ctx, 9)
	assert.EqualError(t, err, "User not found")
}

func TestUpdateTour(t *testing.T) {
	setup()
	defer teardown()

	patch := entity.TourPatch{BasePrice: entity.Some[int64](47500)}
	updated := &entity.Tour{ID: 1, Title: "Pyramids of Giza & Sphinx", BasePrice: 47500}
	repoMock.On("UpdateTour", ctx, int64(1), patch).Return(updated, nil)
	repoMock.On("UpdateTour", ctx, int64(99), patch).Return(nil, nil)

	payload := &request.UpdateTour{BasePrice: entity.Some(request.FlexInt(47500))}

	tour, err := uc.UpdateTour(ctx, 1, payload)
	require.NoError(t, err)
	assert.Equal(t, int64(47500), tour.BasePrice)

	_, err = uc.UpdateTour(ctx, 99, payload)
	assert.Equal(t, http.StatusNotFound, errors.StatusCode(err))
}

func TestCreateCustomerRejectsDuplicateEmail(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("GetCustomers", ctx).Return([]entity.Customer{{ID: 1, FullName: "Alice Smith", Email: "alice@example.com"}}, nil)

	_, err := uc.CreateCustomer(ctx, &request.CreateCustomer{FullName: "Alice S.", Email: "Alice@Example.com"})

	assert.Equal(t, http.StatusConflict, errors.StatusCode(err))
	repoMock.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything)
}

func TestCreateBookingPublishesEvent(t *testing.T) {
	setup()
	defer teardown()

	travel := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	input := entity.Booking{CustomerID: 1, TourID: 2, TravelDate: travel, HeadCount: 2, TotalAmount: 30000}
	created := input
	created.ID = 5
	created.Status = entity.BookingPending
	repoMock.On("CreateBooking", ctx, input).Return(created, nil)

	booking, err := uc.CreateBooking(ctx, &request.CreateBooking{
		CustomerID:  flex(1),
		TourID:      flex(2),
		TravelDate:  &request.Date{Time: travel},
		HeadCount:   flex(2),
		TotalAmount: flex(30000),
	})

	require.NoError(t, err)
	assert.Equal(t, created, booking)
	require.Equal(t, []string{usecases.TopicBookingCreated}, p.topics)

	var event struct {
		EventID   string         `json:"event_id"`
		EventType string         `json:"event_type"`
		Payload   entity.Booking `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(p.messages[0].Payload, &event))
	assert.Equal(t, p.messages[0].UUID, event.EventID)
	assert.Equal(t, "booking_created", event.EventType)
	assert.Equal(t, int64(5), event.Payload.ID)
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	setup()
	defer teardown()
	p.err = stderrors.New("broker unreachable")

	created := entity.Payment{ID: 1, BookingID: 5, Amount: 30000, Currency: "USD", Method: entity.MethodCash, Status: entity.PaymentPending}
	repoMock.On("CreatePayment", ctx, mock.AnythingOfType("entity.Payment")).Return(created, nil)

	payment, err := uc.CreatePayment(ctx, &request.CreatePayment{BookingID: flex(5), Amount: flex(30000), Method: "cash"})

	require.NoError(t, err)
	assert.Equal(t, created, payment)
}

func TestUpdateBookingUnknownDoesNotPublish(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("UpdateBooking", ctx, int64(42), mock.AnythingOfType("entity.BookingPatch")).Return(nil, nil)

	_, err := uc.UpdateBooking(ctx, 42, &request.UpdateBooking{Status: entity.Some("confirmed")})

	assert.Equal(t, http.StatusNotFound, errors.StatusCode(err))
	assert.Empty(t, p.topics)
}

func TestUpdateBookingPublishesEvent(t *testing.T) {
	setup()
	defer teardown()

	patch := entity.BookingPatch{Status: entity.Some(entity.BookingConfirmed)}
	repoMock.On("UpdateBooking", ctx, int64(1), patch).Return(&entity.Booking{ID: 1, Status: entity.BookingConfirmed}, nil)

	booking, err := uc.UpdateBooking(ctx, 1, &request.UpdateBooking{Status: entity.Some("confirmed")})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, booking.Status)
	assert.Equal(t, []string{usecases.TopicBookingUpdated}, p.topics)
}

func TestExportBookings(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("GetBookings", ctx).Return([]entity.Booking{
		{ID: 1, CustomerID: 1, TourID: 1, TravelDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), HeadCount: 2, TotalAmount: 30000, Status: entity.BookingConfirmed},
		{ID: 2, CustomerID: 7, TourID: 2, TravelDate: time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), HeadCount: 1, TotalAmount: 80005, Status: entity.BookingPending},
		{ID: 3, CustomerID: 2, TourID: 9, TravelDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), HeadCount: 3, TotalAmount: 7, Status: entity.BookingCancelled},
	}, nil)
	repoMock.On("GetTours", ctx).Return([]entity.Tour{
		{ID: 1, Title: "Pyramids of Giza & Sphinx"},
		{ID: 2, Title: "Nile Cruise - Luxor to Aswan"},
	}, nil)
	repoMock.On("GetCustomers", ctx).Return([]entity.Customer{
		{ID: 1, FullName: "Alice Smith"},
		{ID: 2, FullName: `Omar "The Guide" Farouk`},
	}, nil)

	csv, err := uc.ExportBookings(ctx)

	require.NoError(t, err)
	expected := strings.Join([]string{
		"Booking ID,Customer Name,Tour Title,Travel Date,Travelers,Total Amount,Status",
		`1,"Alice Smith","Pyramids of Giza & Sphinx",2024-12-01,2,300.00,confirmed`,
		`2,"Unknown","Nile Cruise - Luxor to Aswan",2025-01-05,1,800.05,pending`,
		`3,"Omar ""The Guide"" Farouk","Unknown",2025-02-01,3,0.07,cancelled`,
	}, "\n")
	assert.Equal(t, expected, csv)
}

func TestExportBookingsEmpty(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("GetBookings", ctx).Return([]entity.Booking{}, nil)
	repoMock.On("GetTours", ctx).Return([]entity.Tour{}, nil)
	repoMock.On("GetCustomers", ctx).Return([]entity.Customer{}, nil)

	csv, err := uc.ExportBookings(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Booking ID,Customer Name,Tour Title,Travel Date,Travelers,Total Amount,Status\n", csv)
}

func TestCreateUser(t *testing.T) {
	t.Run("username taken", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetUserByUsername", ctx, "nadia").Return(&entity.User{ID: 1, Username: "nadia"}, nil)

		_, err := uc.CreateUser(ctx, &request.CreateUser{Username: "nadia", Password: "secret1", FullName: "Nadia"})

		assert.Equal(t, http.StatusConflict, errors.StatusCode(err))
	})

	t.Run("password is hashed", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetUserByUsername", ctx, "nadia").Return(nil, nil)
		repoMock.On("CreateUser", ctx, mock.MatchedBy(func(u entity.User) bool {
			return u.Username == "nadia" &&
				u.Password != "secret1" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")) == nil
		})).Return(entity.User{ID: 1, Username: "nadia", FullName: "Nadia", Role: entity.RoleSales}, nil)

		user, err := uc.CreateUser(ctx, &request.CreateUser{Username: "nadia", Password: "secret1", FullName: "Nadia"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("store reports duplicate", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("GetUserByUsername", ctx, "nadia").Return(nil, nil)
		repoMock.On("CreateUser", ctx, mock.AnythingOfType("entity.User")).Return(entity.User{}, repositories.ErrDuplicate)

		_, err := uc.CreateUser(ctx, &request.CreateUser{Username: "nadia", Password: "secret1", FullName: "Nadia"})

		assert.Equal(t, http.StatusConflict, errors.StatusCode(err))
	})
}

func TestLogin(t *testing.T) {
	setup()
	defer teardown()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &entity.User{ID: 1, Username: "nadia", Password: string(hash)}
	repoMock.On("GetUserByUsername", ctx, "nadia").Return(stored, nil)
	repoMock.On("GetUserByUsername", ctx, "ghost").Return(nil, nil)

	user, err := uc.Login(ctx, &request.Login{Username: "nadia", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	_, err = uc.Login(ctx, &request.Login{Username: "nadia", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, errors.StatusCode(err))

	_, err = uc.Login(ctx, &request.Login{Username: "ghost", Password: "secret1"})
	assert.Equal(t, http.StatusUnauthorized, errors.StatusCode(err))
}

func TestSeedSkipsWhenToursExist(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("GetTours", ctx).Return([]entity.Tour{{ID: 1}}, nil)

	require.NoError(t, uc.Seed(ctx))
	repoMock.AssertNotCalled(t, "CreateTour", mock.Anything, mock.Anything)
}

func TestSeedIsIdempotent(t *testing.T) {
	repo := repositories.NewMemory(false)
	u := usecases.New(repo, log.Setup(), nil, nil, nil)

	require.NoError(t, u.Seed(ctx))
	require.NoError(t, u.Seed(ctx))

	tours, _ := repo.GetTours(ctx)
	customers, _ := repo.GetCustomers(ctx)
	bookings, _ := repo.GetBookings(ctx)
	assert.Len(t, tours, 2)
	assert.Len(t, customers, 1)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Alice Smith", customers[0].FullName)
	assert.Equal(t, entity.BookingConfirmed, bookings[0].Status)
}

func TestSeedFailure(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("GetTours", ctx).Return([]entity.Tour{}, nil)
	repoMock.On("CreateTour", ctx, mock.AnythingOfType("entity.Tour")).Return(entity.Tour{}, repositories.ErrNotInitialized)

	err := uc.Seed(ctx)

	assert.EqualError(t, err, "Failed to seed database")
}

func TestHealth(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("Ping", ctx).Return(nil).Once()
	assert.NoError(t, uc.Health(ctx))

	repoMock.On("Ping", ctx).Return(repositories.ErrNotInitialized).Once()
	assert.Equal(t, http.StatusInternalServerError, errors.StatusCode(uc.Health(ctx)))
}

func TestGatewaysWithoutCredentials(t *testing.T) {
	setup()
	defer teardown()

	setupResp, err := uc.SetupPaymob(ctx, &request.PaymobSetup{
		AmountCents: flex(15000),
		Currency:    "EGP",
		Customer:    request.PaymobCustomer{Email: "alice@example.com", FirstName: "Alice", LastName: "Smith", Phone: "+15550199"},
	})
	require.NoError(t, err)
	assert.Equal(t, response.PaymobSetup{IframeURL: "https://egypt.paymob.com/api/acceptance/iframes/MOCK_IFRAME?payment_token=mock_payment_key"}, setupResp)

	paypalSetup, err := uc.SetupPaypal(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mock_client_token", paypalSetup.ClientToken)

	order, err := uc.CreatePaypalOrder(ctx, &request.PaypalOrder{Amount: "150.00", Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "CREATED", order.Status)

	captured, err := uc.CapturePaypalOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, response.PaypalOrder{ID: order.ID, Status: "COMPLETED"}, captured)
}

type failingGateway struct{}

func (failingGateway) Setup(context.Context, int64, string, paymob.Customer) (string, error) {
	return "", stderrors.New("dial tcp: i/o timeout")
}

func (failingGateway) ClientToken(context.Context) (string, error) {
	return "", stderrors.New("dial tcp: i/o timeout")
}

func (failingGateway) CreateOrder(context.Context, string, string, string) (paypal.Order, error) {
	return paypal.Order{}, stderrors.New("dial tcp: i/o timeout")
}

func (failingGateway) CaptureOrder(context.Context, string) (paypal.Order, error) {
	return paypal.Order{}, stderrors.New("dial tcp: i/o timeout")
}

func TestGatewayFailures(t *testing.T) {
	u := usecases.New(new(mocks.Repositories), log.Setup(), nil, failingGateway{}, failingGateway{})

	_, err := u.SetupPaymob(ctx, &request.PaymobSetup{AmountCents: flex(100), Currency: "EGP"})
	assert.EqualError(t, err, "Failed to initialize Paymob payment")
	assert.Equal(t, http.StatusInternalServerError, errors.StatusCode(err))

	_, err = u.SetupPaypal(ctx)
	assert.EqualError(t, err, "Failed to load PayPal setup")

	_, err = u.CreatePaypalOrder(ctx, &request.PaypalOrder{Amount: "1.00", Currency: "USD"})
	assert.EqualError(t, err, "Failed to create PayPal order")

	_, err = u.CapturePaypalOrder(ctx, "X")
	assert.EqualError(t, err, "Failed to capture PayPal order")
}

func TestConsumeBookingEvent(t *testing.T) {
	setup()
	defer teardown()

	err := uc.ConsumeBookingEvent(ctx, &request.BookingEvent{
		EventID:    "a1",
		EventType:  usecases.TopicBookingCreated,
		OccurredAt: "2025-01-02T03:04:05Z",
		Payload:    []byte(`{"id":1}`),
	})

	assert.NoError(t, err)
}
