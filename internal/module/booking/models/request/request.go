package request

import (
	"time"

	"tour-backoffice/internal/module/booking/models/entity"

	"github.com/goccy/go-json"
)

type CreateTour struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	BasePrice    *FlexInt `json:"basePrice" validate:"required,gte=0"`
	Currency     string   `json:"currency" validate:"omitempty,len=3"`
	DurationDays *FlexInt `json:"durationDays" validate:"required,gt=0"`
	Capacity     *FlexInt `json:"capacity" validate:"required,gt=0"`
	IsActive     *bool    `json:"isActive"`
	Images       []string `json:"images" validate:"omitempty,dive,url"`
}

func (r CreateTour) ToEntity() entity.Tour {
	return entity.Tour{
		Title:        r.Title,
		Description:  r.Description,
		BasePrice:    r.BasePrice.Int64(),
		Currency:     r.Currency,
		DurationDays: r.DurationDays.Int64(),
		Capacity:     r.Capacity.Int64(),
		IsActive:     r.IsActive,
		Images:       entity.StringList(r.Images),
	}
}

// UpdateTour is a partial tour update. Keys absent from the body stay
// unset; an explicit null is kept as a present value.
type UpdateTour struct {
	Title        entity.Optional[string]   `json:"title"`
	Description  entity.Optional[string]   `json:"description"`
	BasePrice    entity.Optional[FlexInt]  `json:"basePrice"`
	Currency     entity.Optional[string]   `json:"currency"`
	DurationDays entity.Optional[FlexInt]  `json:"durationDays"`
	Capacity     entity.Optional[FlexInt]  `json:"capacity"`
	IsActive     entity.Optional[*bool]    `json:"isActive"`
	Images       entity.Optional[[]string] `json:"images"`
}

func (r UpdateTour) ToPatch() entity.TourPatch {
	return entity.TourPatch{
		Title:        r.Title,
		Description:  r.Description,
		BasePrice:    int64Of(r.BasePrice),
		Currency:     r.Currency,
		DurationDays: int64Of(r.DurationDays),
		Capacity:     int64Of(r.Capacity),
		IsActive:     r.IsActive,
		Images:       convert(r.Images, func(v []string) entity.StringList { return entity.StringList(v) }),
	}
}

type PassportDetails struct {
	Number string `json:"number" validate:"required"`
	Expiry string `json:"expiry" validate:"required"`
}

type CreateCustomer struct {
	FullName        string           `json:"fullName" validate:"required"`
	Email           string           `json:"email" validate:"required,email"`
	Phone           *string          `json:"phone"`
	Nationality     *string          `json:"nationality"`
	PassportDetails *PassportDetails `json:"passportDetails"`
	Notes           *string          `json:"notes"`
}

func (r CreateCustomer) ToEntity() entity.Customer {
	customer := entity.Customer{
		FullName:    r.FullName,
		Email:       r.Email,
		Phone:       r.Phone,
		Nationality: r.Nationality,
		Notes:       r.Notes,
	}
	if r.PassportDetails != nil {
		customer.PassportDetails = &entity.PassportDetails{
			Number: r.PassportDetails.Number,
			Expiry: r.PassportDetails.Expiry,
		}
	}
	return customer
}

type CreateBooking struct {
	CustomerID  *FlexInt `json:"customerId" validate:"required,gt=0"`
	TourID      *FlexInt `json:"tourId" validate:"required,gt=0"`
	TravelDate  *Date    `json:"travelDate" validate:"required"`
	HeadCount   *FlexInt `json:"headCount" validate:"omitempty,gt=0"`
	TotalAmount *FlexInt `json:"totalAmount" validate:"required,gte=0"`
	Status      string   `json:"status" validate:"omitempty,oneof=pending confirmed cancelled completed"`
	Notes       *string  `json:"notes"`
}

func (r CreateBooking) ToEntity() entity.Booking {
	return entity.Booking{
		CustomerID:  r.CustomerID.Int64(),
		TourID:      r.TourID.Int64(),
		TravelDate:  r.TravelDate.Time,
		HeadCount:   r.HeadCount.Int64(),
		TotalAmount: r.TotalAmount.Int64(),
		Status:      entity.BookingStatus(r.Status),
		Notes:       r.Notes,
	}
}

type UpdateBooking struct {
	CustomerID  entity.Optional[FlexInt] `json:"customerId"`
	TourID      entity.Optional[FlexInt] `json:"tourId"`
	TravelDate  entity.Optional[Date]    `json:"travelDate"`
	HeadCount   entity.Optional[FlexInt] `json:"headCount"`
	TotalAmount entity.Optional[FlexInt] `json:"totalAmount"`
	Status      entity.Optional[string]  `json:"status"`
	Notes       entity.Optional[*string] `json:"notes"`
}

func (r UpdateBooking) ToPatch() entity.BookingPatch {
	return entity.BookingPatch{
		CustomerID:  int64Of(r.CustomerID),
		TourID:      int64Of(r.TourID),
		TravelDate:  convert(r.TravelDate, func(d Date) time.Time { return d.Time }),
		HeadCount:   int64Of(r.HeadCount),
		TotalAmount: int64Of(r.TotalAmount),
		Status:      convert(r.Status, func(s string) entity.BookingStatus { return entity.BookingStatus(s) }),
		Notes:       r.Notes,
	}
}

type CreatePayment struct {
	BookingID      *FlexInt `json:"bookingId" validate:"required,gt=0"`
	Amount         *FlexInt `json:"amount" validate:"required,gte=0"`
	Currency       string   `json:"currency" validate:"omitempty,len=3"`
	Method         string   `json:"method" validate:"required,oneof=cash paypal paymob bank_transfer"`
	Status         string   `json:"status" validate:"omitempty,oneof=pending paid failed refunded"`
	TransactionRef *string  `json:"transactionRef"`
}

func (r CreatePayment) ToEntity() entity.Payment {
	return entity.Payment{
		BookingID:      r.BookingID.Int64(),
		Amount:         r.Amount.Int64(),
		Currency:       r.Currency,
		Method:         entity.PaymentMethod(r.Method),
		Status:         entity.PaymentStatus(r.Status),
		TransactionRef: r.TransactionRef,
	}
}

type CreateUser struct {
	Username string  `json:"username" validate:"required,min=3"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName string  `json:"fullName" validate:"required"`
	Role     string  `json:"role" validate:"omitempty,oneof=admin manager sales operations accountant"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PaymobCustomer struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
}

type PaymobSetup struct {
	AmountCents *FlexInt       `json:"amountCents" validate:"required,gt=0"`
	Currency    string         `json:"currency" validate:"required,len=3"`
	Customer    PaymobCustomer `json:"customer"`
}

// PaypalOrder carries the amount as a decimal string, the way the PayPal
// orders API expects it.
type PaypalOrder struct {
	Intent   string `json:"intent" validate:"omitempty,oneof=CAPTURE AUTHORIZE"`
	Amount   string `json:"amount" validate:"required,numeric"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// BookingEvent is a consumed booking or payment event. Payload is kept raw
// because its shape depends on EventType.
type BookingEvent struct {
	EventID    string          `json:"event_id" validate:"required"`
	EventType  string          `json:"event_type" validate:"required,oneof=booking_created booking_updated payment_recorded"`
	OccurredAt string          `json:"occurred_at" validate:"required"`
	Payload    json.RawMessage `json:"payload" validate:"required"`
}
