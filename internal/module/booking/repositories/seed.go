package repositories

import (
	"context"
	"fmt"
	"time"

	"tour-backoffice/internal/module/booking/models/entity"
)

// Demo fixture used by the in-memory store and the seed endpoint. Manual QA
// scripts depend on these exact values.
func seedTours() []entity.Tour {
	active := true
	return []entity.Tour{
		{
			Title:        "Pyramids of Giza & Sphinx",
			Description:  "Explore the ancient wonders of the world with an expert guide. Includes entry fees and lunch.",
			BasePrice:    15000,
			Currency:     "USD",
			DurationDays: 1,
			Capacity:     20,
			IsActive:     &active,
			Images:       entity.StringList{"https://images.unsplash.com/photo-1503177119275-0aa32b3a9368"},
		},
		{
			Title:        "Nile Cruise - Luxor to Aswan",
			Description:  "4-day luxury cruise along the Nile river. Visit Karnak, Valley of the Kings, and Edfu.",
			BasePrice:    80000,
			Currency:     "USD",
			DurationDays: 4,
			Capacity:     50,
			IsActive:     &active,
			Images:       entity.StringList{"https://images.unsplash.com/photo-1539650116455-251d9a04a521"},
		},
	}
}

func seedCustomer() entity.Customer {
	phone := "+15550199"
	nationality := "USA"
	notes := "Allergic to peanuts"
	return entity.Customer{
		FullName:        "Alice Smith",
		Email:           "alice@example.com",
		Phone:           &phone,
		Nationality:     &nationality,
		PassportDetails: &entity.PassportDetails{Number: "A12345678", Expiry: "2030-01-01"},
		Notes:           &notes,
	}
}

func seedBooking(customerID, tourID int64) entity.Booking {
	notes := "Pickup from hotel at 8 AM"
	return entity.Booking{
		CustomerID:  customerID,
		TourID:      tourID,
		TravelDate:  time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		HeadCount:   2,
		TotalAmount: 30000,
		Status:      entity.BookingConfirmed,
		Notes:       &notes,
	}
}

// Seed writes the demo fixture: two tours, one customer and one confirmed
// booking linking the customer to the first tour. It does not check for
// existing data; callers decide whether seeding is due.
func Seed(ctx context.Context, repo Repositories) error {
	var first entity.Tour
	for i, t := range seedTours() {
		tour, err := repo.CreateTour(ctx, t)
		if err != nil {
			return fmt.Errorf("seed tour %q: %w", t.Title, err)
		}
		if i == 0 {
			first = tour
		}
	}

	customer, err := repo.CreateCustomer(ctx, seedCustomer())
	if err != nil {
		return fmt.Errorf("seed customer: %w", err)
	}

	if _, err := repo.CreateBooking(ctx, seedBooking(customer.ID, first.ID)); err != nil {
		return fmt.Errorf("seed booking: %w", err)
	}
	return nil
}
