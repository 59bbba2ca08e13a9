package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"tour-backoffice/internal/module/booking/models/entity"
)

type cloner[T any] interface {
	Clone() T
}

// table keeps one entity type: rows by id, insertion order and the next id.
type table[T cloner[T]] struct {
	rows   map[int64]T
	order  []int64
	nextID int64
}

func newTable[T cloner[T]]() *table[T] {
	return &table[T]{rows: make(map[int64]T), nextID: 1}
}

func (t *table[T]) insert(build func(id int64) T) T {
	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row.Clone()
	t.order = append(t.order, id)
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	return row.Clone(), true
}

func (t *table[T]) put(id int64, row T) {
	t.rows[id] = row.Clone()
}

func (t *table[T]) list() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id].Clone())
	}
	return out
}

// memory is the process-local backend. State lives only as long as the
// process; every method copies records in and out so callers never share
// memory with the store.
type memory struct {
	mu        sync.Mutex
	now       func() time.Time
	users     *table[entity.User]
	tours     *table[entity.Tour]
	customers *table[entity.Customer]
	bookings  *table[entity.Booking]
	payments  *table[entity.Payment]
}

// NewMemory builds an empty in-memory store, loading the demo fixture
// when seed is true.
func NewMemory(seed bool) Repositories {
	m := newMemory(time.Now)
	if seed {
		mustSeed(context.Background(), m)
	}
	return m
}

// mustSeed panics when the fixture cannot be loaded.
func mustSeed(ctx context.Context, repo Repositories) {
	if err := Seed(ctx, repo); err != nil {
		panic(fmt.Errorf("seed in-memory store: %w", err))
	}
}

func newMemory(now func() time.Time) *memory {
	return &memory{
		now:       now,
		users:     newTable[entity.User](),
		tours:     newTable[entity.Tour](),
		customers: newTable[entity.Customer](),
		bookings:  newTable[entity.Booking](),
		payments:  newTable[entity.Payment](),
	}
}

// GetUser implements Repositories.
func (m *memory) GetUser(ctx context.Context, id int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return found(m.users.get(id))
}

// GetUserByUsername implements Repositories.
func (m *memory) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users.list() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser implements Repositories.
func (m *memory) CreateUser(ctx context.Context, user entity.User) (entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ApplyDefaults()
	return m.users.insert(func(id int64) entity.User {
		user.ID = id
		user.CreatedAt = m.now()
		return user.Clone()
	}), nil
}

// GetTours implements Repositories.
func (m *memory) GetTours(ctx context.Context) ([]entity.Tour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tours.list(), nil
}

// GetTour implements Repositories.
func (m *memory) GetTour(ctx context.Context, id int64) (*entity.Tour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return found(m.tours.get(id))
}

// CreateTour implements Repositories.
func (m *memory) CreateTour(ctx context.Context, tour entity.Tour) (entity.Tour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tour.ApplyDefaults()
	return m.tours.insert(func(id int64) entity.Tour {
		tour.ID = id
		tour.CreatedAt = m.now()
		return tour.Clone()
	}), nil
}

// UpdateTour implements Repositories.
func (m *memory) UpdateTour(ctx context.Context, id int64, patch entity.TourPatch) (*entity.Tour, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tour, ok := m.tours.get(id)
	if !ok {
		return nil, nil
	}
	patch.Apply(&tour)
	m.tours.put(id, tour)
	return &tour, nil
}

// GetCustomers implements Repositories.
func (m *memory) GetCustomers(ctx context.Context) ([]entity.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.customers.list(), nil
}

// GetCustomer implements Repositories.
func (m *memory) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return found(m.customers.get(id))
}

// CreateCustomer implements Repositories.
func (m *memory) CreateCustomer(ctx context.Context, customer entity.Customer) (entity.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.customers.insert(func(id int64) entity.Customer {
		customer.ID = id
		customer.CreatedAt = m.now()
		return customer.Clone()
	}), nil
}

// GetBookings implements Repositories.
func (m *memory) GetBookings(ctx context.Context) ([]entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookings.list(), nil
}

// GetBooking implements Repositories.
func (m *memory) GetBooking(ctx context.Context, id int64) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return found(m.bookings.get(id))
}

// CreateBooking implements Repositories.
func (m *memory) CreateBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking.ApplyDefaults()
	return m.bookings.insert(func(id int64) entity.Booking {
		booking.ID = id
		booking.BookingDate = m.now()
		return booking.Clone()
	}), nil
}

// UpdateBooking implements Repositories.
func (m *memory) UpdateBooking(ctx context.Context, id int64, patch entity.BookingPatch) (*entity.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	booking, ok := m.bookings.get(id)
	if !ok {
		return nil, nil
	}
	patch.Apply(&booking)
	m.bookings.put(id, booking)
	return &booking, nil
}

// GetPayments implements Repositories.
func (m *memory) GetPayments(ctx context.Context) ([]entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.payments.list(), nil
}

// CreatePayment implements Repositories.
func (m *memory) CreatePayment(ctx context.Context, payment entity.Payment) (entity.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment.ApplyDefaults()
	return m.payments.insert(func(id int64) entity.Payment {
		payment.ID = id
		payment.PaymentDate = m.now()
		return payment.Clone()
	}), nil
}

// Ping implements Repositories.
func (m *memory) Ping(ctx context.Context) error {
	return nil
}

// Close implements Repositories.
func (m *memory) Close() error {
	return nil
}

func found[T any](row T, ok bool) (*T, error) {
	if !ok {
		return nil, nil
	}
	return &row, nil
}
