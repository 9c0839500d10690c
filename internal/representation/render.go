package representation

import (
	"fmt"

	"github.com/Domenick1991/airport-service/internal/domain"
)

// Render shapes v according to d. It fails with ErrNoRepresentation when v
// is not the descriptor's resource or the shape does not apply to it.
func Render(d Descriptor, v any) (any, error) {
	switch e := v.(type) {
	case domain.Crew:
		if d.Resource == Crew {
			return crewView(e), nil
		}
	case domain.Airport:
		if d.Resource == Airport {
			return airportView(e), nil
		}
	case domain.AirplaneType:
		if d.Resource == AirplaneType {
			return airplaneTypeView(e), nil
		}
	case domain.Route:
		if d.Resource == Route {
			return renderRoute(d.Shape, e)
		}
	case domain.Airplane:
		if d.Resource == Airplane {
			return renderAirplane(d.Shape, e)
		}
	case domain.Flight:
		if d.Resource == Flight {
			return renderFlight(d.Shape, e)
		}
	case domain.Order:
		if d.Resource == Order {
			return renderOrder(d.Shape, e)
		}
	}
	return nil, fmt.Errorf("%w: %T as %s", ErrNoRepresentation, v, d.Resource)
}

// RenderList renders every item with the same descriptor. The result is
// never nil so an empty listing encodes as [].
func RenderList[T any](d Descriptor, items []T) ([]any, error) {
	out := make([]any, 0, len(items))
	for _, item := range items {
		v, err := Render(d, item)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func renderRoute(shape Shape, r domain.Route) (any, error) {
	switch shape {
	case ShapeList:
		return routeListView(r), nil
	case ShapeCreate, ShapeDetail:
		return routeDetailView(r), nil
	}
	return nil, shapeError(Route, shape)
}

func renderAirplane(shape Shape, a domain.Airplane) (any, error) {
	switch shape {
	case ShapeList:
		return airplaneListView(a), nil
	case ShapeCreate, ShapeDetail:
		return airplaneDetailView(a), nil
	}
	return nil, shapeError(Airplane, shape)
}

func renderFlight(shape Shape, f domain.Flight) (any, error) {
	switch shape {
	case ShapeList:
		return flightListView(f), nil
	case ShapeCreate:
		crew := make([]int64, 0, len(f.Crew))
		for _, c := range f.Crew {
			crew = append(crew, c.ID)
		}
		return FlightCreateView{
			ID:            f.ID,
			Route:         f.Route.ID,
			Airplane:      f.Airplane.ID,
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
			Crew:          crew,
		}, nil
	case ShapeDetail:
		crew := make([]CrewView, 0, len(f.Crew))
		for _, c := range f.Crew {
			crew = append(crew, crewView(c))
		}
		return FlightDetailView{
			ID:            f.ID,
			Route:         routeDetailView(f.Route),
			Airplane:      airplaneDetailView(f.Airplane),
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
			Crew:          crew,
		}, nil
	}
	return nil, shapeError(Flight, shape)
}

func renderOrder(shape Shape, o domain.Order) (any, error) {
	switch shape {
	case ShapeList:
		tickets := make([]TicketListView, 0, len(o.Tickets))
		for _, t := range o.Tickets {
			tickets = append(tickets, TicketListView{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.Flight.Label()})
		}
		return OrderListView{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: tickets}, nil
	case ShapeCreate:
		tickets := make([]TicketCreateView, 0, len(o.Tickets))
		for _, t := range o.Tickets {
			tickets = append(tickets, TicketCreateView{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: t.Flight.ID})
		}
		return OrderCreateView{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: tickets}, nil
	case ShapeDetail:
		tickets := make([]TicketDetailView, 0, len(o.Tickets))
		for _, t := range o.Tickets {
			tickets = append(tickets, TicketDetailView{ID: t.ID, Row: t.Row, Seat: t.Seat, Flight: flightListView(t.Flight)})
		}
		return OrderDetailView{ID: o.ID, CreatedAt: o.CreatedAt, Tickets: tickets}, nil
	}
	return nil, shapeError(Order, shape)
}

func shapeError(resource Resource, shape Shape) error {
	return fmt.Errorf("%w: %s shape for %s", ErrNoRepresentation, shape, resource)
}

func crewView(c domain.Crew) CrewView {
	return CrewView{ID: c.ID, FirstName: c.FirstName, LastName: c.LastName}
}

func airportView(a domain.Airport) AirportView {
	return AirportView{ID: a.ID, Name: a.Name, ClosestBigCity: a.ClosestBigCity}
}

func airplaneTypeView(t domain.AirplaneType) AirplaneTypeView {
	return AirplaneTypeView{ID: t.ID, Name: t.Name}
}

func routeListView(r domain.Route) RouteListView {
	return RouteListView{
		ID:          r.ID,
		Source:      r.Source.Name,
		Destination: r.Destination.Name,
		Distance:    r.Distance,
	}
}

func routeDetailView(r domain.Route) RouteDetailView {
	return RouteDetailView{
		ID:          r.ID,
		Source:      airportView(r.Source),
		Destination: airportView(r.Destination),
		Distance:    r.Distance,
	}
}

func airplaneListView(a domain.Airplane) AirplaneListView {
	return AirplaneListView{
		ID:           a.ID,
		Name:         a.Name,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		AirplaneType: a.AirplaneType.Name,
		NumOfSeats:   a.NumOfSeats(),
	}
}

func airplaneDetailView(a domain.Airplane) AirplaneDetailView {
	return AirplaneDetailView{
		ID:           a.ID,
		Name:         a.Name,
		Rows:         a.Rows,
		SeatsInRow:   a.SeatsInRow,
		AirplaneType: airplaneTypeView(a.AirplaneType),
		NumOfSeats:   a.NumOfSeats(),
	}
}

func flightListView(f domain.Flight) FlightListView {
	crew := make([]string, 0, len(f.Crew))
	for _, c := range f.Crew {
		crew = append(crew, c.FullName())
	}
	return FlightListView{
		ID:            f.ID,
		Route:         routeListView(f.Route),
		Airplane:      f.Airplane.Name,
		DepartureTime: f.DepartureTime,
		ArrivalTime:   f.ArrivalTime,
		Crew:          crew,
	}
}
