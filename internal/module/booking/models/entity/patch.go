package entity

import (
	"bytes"
	"time"

	"github.com/goccy/go-json"
)

// Optional records whether a key was present in a partial update. An
// explicit JSON null sets both Set and Null and leaves Value at its zero
// value.
type Optional[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		var zero T
		o.Null = true
		o.Value = zero
		return nil
	}
	o.Null = false
	return json.Unmarshal(b, &o.Value)
}

// Assignment is one column = value pair of an UPDATE statement.
type Assignment struct {
	Column string
	Value  any
}

type TourPatch struct {
	Title        Optional[string]
	Description  Optional[string]
	BasePrice    Optional[int64]
	Currency     Optional[string]
	DurationDays Optional[int64]
	Capacity     Optional[int64]
	IsActive     Optional[*bool]
	Images       Optional[StringList]
}

func (p TourPatch) Apply(t *Tour) {
	setIf(p.Title, &t.Title)
	setIf(p.Description, &t.Description)
	setIf(p.BasePrice, &t.BasePrice)
	setIf(p.Currency, &t.Currency)
	setIf(p.DurationDays, &t.DurationDays)
	setIf(p.Capacity, &t.Capacity)
	if p.IsActive.Set {
		t.IsActive = nil
		if p.IsActive.Value != nil {
			v := *p.IsActive.Value
			t.IsActive = &v
		}
	}
	if p.Images.Set {
		t.Images = nil
		if p.Images.Value != nil {
			t.Images = append(StringList{}, p.Images.Value...)
		}
	}
}

func (p TourPatch) Assignments() []Assignment {
	var out []Assignment
	out = assign(out, "title", p.Title)
	out = assign(out, "description", p.Description)
	out = assign(out, "base_price", p.BasePrice)
	out = assign(out, "currency", p.Currency)
	out = assign(out, "duration_days", p.DurationDays)
	out = assign(out, "capacity", p.Capacity)
	out = assign(out, "is_active", p.IsActive)
	out = assign(out, "images", p.Images)
	return out
}

type BookingPatch struct {
	CustomerID  Optional[int64]
	TourID      Optional[int64]
	TravelDate  Optional[time.Time]
	HeadCount   Optional[int64]
	TotalAmount Optional[int64]
	Status      Optional[BookingStatus]
	Notes       Optional[*string]
}

func (p BookingPatch) Apply(b *Booking) {
	setIf(p.CustomerID, &b.CustomerID)
	setIf(p.TourID, &b.TourID)
	setIf(p.TravelDate, &b.TravelDate)
	setIf(p.HeadCount, &b.HeadCount)
	setIf(p.TotalAmount, &b.TotalAmount)
	setIf(p.Status, &b.Status)
	if p.Notes.Set {
		b.Notes = cloneString(p.Notes.Value)
	}
}

func (p BookingPatch) Assignments() []Assignment {
	var out []Assignment
	out = assign(out, "customer_id", p.CustomerID)
	out = assign(out, "tour_id", p.TourID)
	out = assign(out, "travel_date", p.TravelDate)
	out = assign(out, "head_count", p.HeadCount)
	out = assign(out, "total_amount", p.TotalAmount)
	out = assign(out, "status", p.Status)
	out = assign(out, "notes", p.Notes)
	return out
}

func setIf[T any](o Optional[T], dst *T) {
	if o.Set {
		*dst = o.Value
	}
}

func assign[T any](out []Assignment, column string, o Optional[T]) []Assignment {
	if !o.Set {
		return out
	}
	return append(out, Assignment{Column: column, Value: o.Value})
}
