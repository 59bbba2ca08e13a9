package entity

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleManager    UserRole = "manager"
	RoleSales      UserRole = "sales"
	RoleOperations UserRole = "operations"
	RoleAccountant UserRole = "accountant"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCash         PaymentMethod = "cash"
	MethodPaypal       PaymentMethod = "paypal"
	MethodPaymob       PaymentMethod = "paymob"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

const DefaultCurrency = "USD"

type User struct {
	ID        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password" json:"-"`
	FullName  string    `db:"full_name" json:"fullName"`
	Role      UserRole  `db:"role" json:"role"`
	Email     *string   `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Tour prices are in minor units (cents).
type Tour struct {
	ID           int64      `db:"id" json:"id"`
	Title        string     `db:"title" json:"title"`
	Description  string     `db:"description" json:"description"`
	BasePrice    int64      `db:"base_price" json:"basePrice"`
	Currency     string     `db:"currency" json:"currency"`
	DurationDays int64      `db:"duration_days" json:"durationDays"`
	Capacity     int64      `db:"capacity" json:"capacity"`
	IsActive     *bool      `db:"is_active" json:"isActive"`
	Images       StringList `db:"images" json:"images"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}

type Customer struct {
	ID              int64            `db:"id" json:"id"`
	FullName        string           `db:"full_name" json:"fullName"`
	Email           string           `db:"email" json:"email"`
	Phone           *string          `db:"phone" json:"phone"`
	Nationality     *string          `db:"nationality" json:"nationality"`
	PassportDetails *PassportDetails `db:"passport_details" json:"passportDetails"`
	Notes           *string          `db:"notes" json:"notes"`
	CreatedAt       time.Time        `db:"created_at" json:"createdAt"`
}

type Booking struct {
	ID          int64         `db:"id" json:"id"`
	CustomerID  int64         `db:"customer_id" json:"customerId"`
	TourID      int64         `db:"tour_id" json:"tourId"`
	BookingDate time.Time     `db:"booking_date" json:"bookingDate"`
	TravelDate  time.Time     `db:"travel_date" json:"travelDate"`
	HeadCount   int64         `db:"head_count" json:"headCount"`
	TotalAmount int64         `db:"total_amount" json:"totalAmount"`
	Status      BookingStatus `db:"status" json:"status"`
	Notes       *string       `db:"notes" json:"notes"`
}

type Payment struct {
	ID             int64         `db:"id" json:"id"`
	BookingID      int64         `db:"booking_id" json:"bookingId"`
	Amount         int64         `db:"amount" json:"amount"`
	Currency       string        `db:"currency" json:"currency"`
	Method         PaymentMethod `db:"method" json:"method"`
	Status         PaymentStatus `db:"status" json:"status"`
	TransactionRef *string       `db:"transaction_ref" json:"transactionRef"`
	PaymentDate    time.Time     `db:"payment_date" json:"paymentDate"`
}

// PassportDetails is stored as a jsonb document.
type PassportDetails struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
}

func (p PassportDetails) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PassportDetails) Scan(src any) error {
	b, err := jsonBytes(src)
	if err != nil || b == nil {
		return err
	}
	return json.Unmarshal(b, p)
}

// StringList is an ordered list stored as a jsonb array. A nil list is
// stored as NULL.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal([]string(l))
}

func (l *StringList) Scan(src any) error {
	b, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if b == nil {
		*l = nil
		return nil
	}
	var out []string
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported jsonb source %T", src)
	}
}

func (u *User) ApplyDefaults() {
	if u.Role == "" {
		u.Role = RoleSales
	}
}

func (t *Tour) ApplyDefaults() {
	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}
	if t.IsActive == nil {
		active := true
		t.IsActive = &active
	}
}

func (b *Booking) ApplyDefaults() {
	if b.HeadCount == 0 {
		b.HeadCount = 1
	}
	if b.Status == "" {
		b.Status = BookingPending
	}
}

func (p *Payment) ApplyDefaults() {
	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}
	if p.Status == "" {
		p.Status = PaymentPending
	}
}
