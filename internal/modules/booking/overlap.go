package booking

import (
	"time"

	"hotelbooking/internal/domain"
)

// Overlaps reports whether two half-open date ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. A checkout and a check-in on the same day do
// not conflict, which is what enables same-day turnover.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflicts returns the active bookings whose date range intersects
// the candidate range. Cancelled and no-show bookings never conflict.
func FindConflicts(checkIn, checkOut time.Time, existing []domain.Booking) []domain.Booking {
	var out []domain.Booking
	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		if Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			out = append(out, b)
		}
	}
	return out
}

func HasConflict(checkIn, checkOut time.Time, existing []domain.Booking) bool {
	return len(FindConflicts(checkIn, checkOut, existing)) > 0
}

type CalendarDay struct {
	Date      time.Time `json:"date"`
	Occupied  bool      `json:"occupied"`
	BookingID string    `json:"booking_id,omitempty"`
}

// BuildCalendar projects a month of a room's bookings onto a day grid. It
// never mutates state; a day is occupied when an active booking covers it
// under half-open semantics (the checkout day itself stays free).
func BuildCalendar(year int, month time.Month, bookings []domain.Booking) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	grid := make([]CalendarDay, 0, 31)
	for day := first; day.Before(next); day = day.AddDate(0, 0, 1) {
		cell := CalendarDay{Date: day}
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			if !day.Before(b.CheckIn) && day.Before(b.CheckOut) {
				cell.Occupied = true
				cell.BookingID = b.ID
				break
			}
		}
		grid = append(grid, cell)
	}
	return grid
}
