package domain

import "time"

type Flight struct {
	ID            int64
	Route         Route
	Airplane      Airplane
	DepartureTime time.Time
	ArrivalTime   time.Time
	Crew          []Crew
}

func (f Flight) Label() string {
	return f.Route.Label() + " " + f.DepartureTime.UTC().Format(time.RFC3339)
}
