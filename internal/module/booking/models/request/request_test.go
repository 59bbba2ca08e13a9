package request_test

import (
	"math"
	"testing"
	"time"

	"tour-backoffice/internal/module/booking/models/entity"
	"tour-backoffice/internal/module/booking/models/request"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int64
		wantErr  bool
	}{
		{name: "number", input: `2`, expected: 2},
		{name: "numeric string", input: `"30000"`, expected: 30000},
		{name: "integral float", input: `4.0`, expected: 4},
		{name: "fraction", input: `1.5`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "word", input: `"two"`, wantErr: true},
		{name: "largest int64", input: `"9223372036854775807"`, expected: math.MaxInt64},
		{name: "above int64", input: `"9223372036854775808"`, wantErr: true},
		{name: "below int64", input: `-9223372036854775809`, wantErr: true},
		{name: "huge exponent", input: `1e300`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var f request.FlexInt
			err := json.Unmarshal([]byte(tc.input), &f)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, f.Int64())
		})
	}
}

func TestDate(t *testing.T) {
	var d request.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-12-01"`), &d))
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2024-12-01T10:30:00.000Z"`), &d))
	assert.Equal(t, time.Date(2024, 12, 1, 10, 30, 0, 0, time.UTC), d.Time)

	assert.Error(t, json.Unmarshal([]byte(`"01/12/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20241201`), &d))
}

func TestCreateBookingCoercesNumericStrings(t *testing.T) {
	body := `{"customerId":"1","tourId":2,"travelDate":"2025-03-10","headCount":"3","totalAmount":"45000"}`

	var req request.CreateBooking
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, request.NewValidator().Struct(req))

	booking := req.ToEntity()
	assert.Equal(t, int64(1), booking.CustomerID)
	assert.Equal(t, int64(2), booking.TourID)
	assert.Equal(t, int64(3), booking.HeadCount)
	assert.Equal(t, int64(45000), booking.TotalAmount)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), booking.TravelDate)
	assert.Equal(t, entity.BookingStatus(""), booking.Status)
}

func TestCreateValidationMessages(t *testing.T) {
	v := request.NewValidator()

	testCases := []struct {
		name     string
		payload  any
		body     string
		expected string
	}{
		{
			name:     "tour without title",
			payload:  &request.CreateTour{},
			body:     `{"description":"x","basePrice":100,"durationDays":1,"capacity":10}`,
			expected: "title is required",
		},
		{
			name:     "tour with zero capacity",
			payload:  &request.CreateTour{},
			body:     `{"title":"t","description":"x","basePrice":100,"durationDays":1,"capacity":0}`,
			expected: "capacity must be greater than 0",
		},
		{
			name:     "booking without travel date",
			payload:  &request.CreateBooking{},
			body:     `{"customerId":1,"tourId":1,"totalAmount":100}`,
			expected: "travelDate is required",
		},
		{
			name:     "booking with negative head count",
			payload:  &request.CreateBooking{},
			body:     `{"customerId":1,"tourId":1,"travelDate":"2025-01-01","headCount":-1,"totalAmount":100}`,
			expected: "headCount must be greater than 0",
		},
		{
			name:     "payment with unknown method",
			payload:  &request.CreatePayment{},
			body:     `{"bookingId":1,"amount":100,"method":"cheque"}`,
			expected: "method must be one of: cash paypal paymob bank_transfer",
		},
		{
			name:     "customer with bad email",
			payload:  &request.CreateCustomer{},
			body:     `{"fullName":"Alice Smith","email":"alice"}`,
			expected: "email must be a valid email",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, json.Unmarshal([]byte(tc.body), tc.payload))
			err := v.Struct(tc.payload)
			require.Error(t, err)
			assert.Equal(t, tc.expected, request.ValidationMessage(err))
		})
	}
}

func TestUpdateTourPresence(t *testing.T) {
	var req request.UpdateTour
	require.NoError(t, json.Unmarshal([]byte(`{"basePrice":"47500","images":null}`), &req))
	require.NoError(t, req.Validate(request.NewValidator()))

	patch := req.ToPatch()
	assert.Equal(t, entity.Some[int64](47500), patch.BasePrice)
	assert.Equal(t, entity.Null[entity.StringList](), patch.Images)
	assert.False(t, patch.Title.Set)
	assert.False(t, patch.IsActive.Set)
}

func TestUpdateValidation(t *testing.T) {
	v := request.NewValidator()

	testCases := []struct {
		name     string
		validate func() error
		expected string
	}{
		{
			name: "null title",
			validate: func() error {
				var req request.UpdateTour
				require.NoError(t, json.Unmarshal([]byte(`{"title":null}`), &req))
				return req.Validate(v)
			},
			expected: "title must not be null",
		},
		{
			name: "zero capacity",
			validate: func() error {
				var req request.UpdateTour
				require.NoError(t, json.Unmarshal([]byte(`{"capacity":"0"}`), &req))
				return req.Validate(v)
			},
			expected: "capacity must be greater than 0",
		},
		{
			name: "unknown booking status",
			validate: func() error {
				var req request.UpdateBooking
				require.NoError(t, json.Unmarshal([]byte(`{"status":"lost"}`), &req))
				return req.Validate(v)
			},
			expected: "status must be one of: pending confirmed cancelled completed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.validate()
			require.Error(t, err)
			assert.Equal(t, tc.expected, request.ValidationMessage(err))
		})
	}
}

func TestUpdateBookingNullNotes(t *testing.T) {
	var req request.UpdateBooking
	require.NoError(t, json.Unmarshal([]byte(`{"status":"cancelled","notes":null}`), &req))
	require.NoError(t, req.Validate(request.NewValidator()))

	patch := req.ToPatch()
	assert.Equal(t, entity.Some(entity.BookingCancelled), patch.Status)
	assert.True(t, patch.Notes.Set)
	assert.Nil(t, patch.Notes.Value)
	assert.False(t, patch.TravelDate.Set)
}
