package validation

import (
	"fmt"
	"time"

	"github.com/Domenick1991/airport-service/internal/errs"
)

// AirportRef identifies a route endpoint in a write payload: either an
// existing airport by ID, or a new airport described by its attributes.
type AirportRef struct {
	ID             int64
	Name           string
	ClosestBigCity string
}

func (r AirportRef) isNew() bool {
	return r.ID == 0
}

// SameAirport reports whether two endpoint references denote the same
// airport. A new airport never equals an existing row.
func SameAirport(a, b AirportRef) bool {
	switch {
	case !a.isNew() && !b.isNew():
		return a.ID == b.ID
	case a.isNew() && b.isNew():
		return a.Name == b.Name && a.ClosestBigCity == b.ClosestBigCity
	default:
		return false
	}
}

// ValidateRoute rejects a route whose source and destination are the same airport.
func ValidateRoute(source, destination AirportRef) error {
	if SameAirport(source, destination) {
		return errs.Validation("Route source and destination must differ",
			errs.FieldError{Field: "destination", Error: "must differ from source"})
	}
	return nil
}

// ValidateFlightTiming requires arrival strictly after departure.
func ValidateFlightTiming(departure, arrival time.Time) error {
	if !arrival.After(departure) {
		return errs.Validation("Arrival time must be after departure time",
			errs.FieldError{Field: "arrival_time", Error: "must be after departure_time"})
	}
	return nil
}

// ValidateTicket checks a seat against the airplane's cabin layout.
// index is the ticket's position in the request, used in the field path.
func ValidateTicket(index, row, seat, rows, seatsInRow int) error {
	var fields []errs.FieldError
	if row < 1 || row > rows {
		fields = append(fields, errs.FieldError{
			Field: fmt.Sprintf("tickets[%d].row", index),
			Error: fmt.Sprintf("must be in range [1, %d]", rows),
		})
	}
	if seat < 1 || seat > seatsInRow {
		fields = append(fields, errs.FieldError{
			Field: fmt.Sprintf("tickets[%d].seat", index),
			Error: fmt.Sprintf("must be in range [1, %d]", seatsInRow),
		})
	}
	if len(fields) > 0 {
		return errs.Validation("Ticket is outside the airplane layout", fields...)
	}
	return nil
}
