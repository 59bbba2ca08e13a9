package request

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"tour-backoffice/internal/module/booking/models/entity"

	"github.com/go-playground/validator/v10"
)

// FlexInt is an integer that also accepts its decimal string form, so
// "2" and 2 decode to the same value.
type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" {
		return errors.New("expected an integer, received an empty string")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexInt(n)
		return nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || x != math.Trunc(x) || x >= math.MaxInt64 || x <= math.MinInt64 {
		return fmt.Errorf("expected an integer, received %s", b)
	}
	*f = FlexInt(x)
	return nil
}

// Int64 returns zero for a nil receiver.
func (f *FlexInt) Int64() int64 {
	if f == nil {
		return 0
	}
	return int64(*f)
}

// Date accepts a calendar date (2006-01-02) or a full RFC 3339 timestamp.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(bytes.TrimSpace(b)))
	if err != nil {
		return fmt.Errorf("expected a date string, received %s", b)
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q", s)
}

func int64Of(o entity.Optional[FlexInt]) entity.Optional[int64] {
	return convert(o, func(f FlexInt) int64 { return int64(f) })
}

func convert[A, B any](o entity.Optional[A], fn func(A) B) entity.Optional[B] {
	if !o.Set {
		return entity.Optional[B]{}
	}
	if o.Null {
		return entity.Null[B]()
	}
	return entity.Some(fn(o.Value))
}

// NewValidator reports fields by their JSON name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FieldError is a single failed constraint of a partial update.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e *FieldError) Error() string {
	return message(e.Field, e.Tag, e.Param)
}

// ValidationMessage returns the message of the first violated constraint.
func ValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return message(ve[0].Field(), ve[0].Tag(), ve[0].Param())
	}
	return err.Error()
}

func message(field, tag, param string) string {
	switch tag {
	case "required":
		return field + " is required"
	case "notnull":
		return field + " must not be null"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid URL"
	case "numeric":
		return field + " must be numeric"
	default:
		return field + " is invalid"
	}
}

// check validates a present value of a partial update against tag.
func check[T any](v *validator.Validate, field string, o entity.Optional[T], nullable bool, tag string) error {
	if !o.Set {
		return nil
	}
	if o.Null {
		if nullable {
			return nil
		}
		return &FieldError{Field: field, Tag: "notnull"}
	}
	if tag == "" {
		return nil
	}
	err := v.Var(o.Value, tag)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return &FieldError{Field: field, Tag: ve[0].Tag(), Param: ve[0].Param()}
	}
	return err
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (r UpdateTour) Validate(v *validator.Validate) error {
	return firstError(
		check(v, "title", r.Title, false, "required"),
		check(v, "description", r.Description, false, "required"),
		check(v, "basePrice", r.BasePrice, false, "gte=0"),
		check(v, "currency", r.Currency, false, "len=3"),
		check(v, "durationDays", r.DurationDays, false, "gt=0"),
		check(v, "capacity", r.Capacity, false, "gt=0"),
		check(v, "isActive", r.IsActive, true, ""),
		check(v, "images", r.Images, true, "omitempty,dive,url"),
	)
}

func (r UpdateBooking) Validate(v *validator.Validate) error {
	return firstError(
		check(v, "customerId", r.CustomerID, false, "gt=0"),
		check(v, "tourId", r.TourID, false, "gt=0"),
		check(v, "travelDate", r.TravelDate, false, ""),
		check(v, "headCount", r.HeadCount, false, "gt=0"),
		check(v, "totalAmount", r.TotalAmount, false, "gte=0"),
		check(v, "status", r.Status, false, "oneof=pending confirmed cancelled completed"),
		check(v, "notes", r.Notes, true, ""),
	)
}
