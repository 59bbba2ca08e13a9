package usecases

import (
	"fmt"
	"strings"

	"tour-backoffice/internal/module/booking/models/entity"
)

const bookingsCSVHeader = "Booking ID,Customer Name,Tour Title,Travel Date,Travelers,Total Amount,Status"

func bookingsCSV(bookings []entity.Booking, customers []entity.Customer, tours []entity.Tour) string {
	names := make(map[int64]string, len(customers))
	for _, c := range customers {
		names[c.ID] = c.FullName
	}
	titles := make(map[int64]string, len(tours))
	for _, t := range tours {
		titles[t.ID] = t.Title
	}

	rows := make([]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, fmt.Sprintf("%d,%s,%s,%s,%d,%s,%s",
			b.ID,
			quoted(names[b.CustomerID]),
			quoted(titles[b.TourID]),
			b.TravelDate.UTC().Format("2006-01-02"),
			b.HeadCount,
			formatCents(b.TotalAmount),
			b.Status,
		))
	}
	return bookingsCSVHeader + "\n" + strings.Join(rows, "\n")
}

// quoted always wraps the value in double quotes. Empty values render as
// Unknown.
func quoted(s string) string {
	if s == "" {
		s = "Unknown"
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// formatCents renders minor units with two decimals without going through
// floating point.
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
