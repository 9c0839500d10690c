// Package representation decides how each resource is shaped on the wire.
//
// Every (resource, action) pair maps to one Descriptor, resolved once per
// request by the handler. Render then turns a domain value into the view
// struct for that descriptor.
package representation

import (
	"errors"
	"fmt"
)

type Resource string

const (
	Crew         Resource = "crew"
	Airport      Resource = "airport"
	Route        Resource = "route"
	AirplaneType Resource = "airplane_type"
	Airplane     Resource = "airplane"
	Flight       Resource = "flight"
	Order        Resource = "order"
)

type Action string

const (
	List     Action = "list"
	Retrieve Action = "retrieve"
	Create   Action = "create"
)

// Shape is how related entities appear in a representation.
type Shape int

const (
	// ShapeFlat has no related entities at all.
	ShapeFlat Shape = iota
	// ShapeList renders related entities as a label (name or short string).
	ShapeList
	// ShapeCreate accepts related entities as writable nested objects, or as
	// raw ids where the relation must point at existing rows.
	ShapeCreate
	// ShapeDetail renders related entities as full read-only nested objects.
	ShapeDetail
)

func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeList:
		return "list"
	case ShapeCreate:
		return "create"
	case ShapeDetail:
		return "detail"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

type Descriptor struct {
	Resource Resource
	Action   Action
	Shape    Shape
	// Fields lists the top-level keys of the representation in output order.
	Fields []string
	// Depth is how many levels of related objects are expanded in place.
	Depth int
}

var ErrNoRepresentation = errors.New("no representation for action")

type key struct {
	resource Resource
	action   Action
}

var (
	crewFields         = []string{"id", "first_name", "last_name"}
	airportFields      = []string{"id", "name", "closest_big_city"}
	airplaneTypeFields = []string{"id", "name"}
	routeFields        = []string{"id", "source", "destination", "distance"}
	airplaneFields     = []string{"id", "name", "rows", "seats_in_row", "airplane_type", "num_of_seats"}
	flightFields       = []string{"id", "route", "airplane", "departure_time", "arrival_time", "crew"}
	orderFields        = []string{"id", "created_at", "tickets"}
)

var table = map[key]Descriptor{}

func register(resource Resource, action Action, shape Shape, depth int, fields []string) {
	table[key{resource, action}] = Descriptor{
		Resource: resource,
		Action:   action,
		Shape:    shape,
		Fields:   fields,
		Depth:    depth,
	}
}

func init() {
	for _, action := range []Action{List, Retrieve, Create} {
		register(Crew, action, ShapeFlat, 0, crewFields)
		register(Airport, action, ShapeFlat, 0, airportFields)
		register(AirplaneType, action, ShapeFlat, 0, airplaneTypeFields)
	}

	register(Route, List, ShapeList, 0, routeFields)
	register(Route, Create, ShapeCreate, 1, routeFields)
	register(Route, Retrieve, ShapeDetail, 1, routeFields)

	register(Airplane, List, ShapeList, 0, airplaneFields)
	register(Airplane, Create, ShapeCreate, 1, airplaneFields)
	register(Airplane, Retrieve, ShapeDetail, 1, airplaneFields)

	// The flight list keeps the route as an object so its endpoints stay
	// visible; everything else collapses to labels.
	register(Flight, List, ShapeList, 1, flightFields)
	register(Flight, Create, ShapeCreate, 0, flightFields)
	register(Flight, Retrieve, ShapeDetail, 2, flightFields)

	register(Order, List, ShapeList, 1, orderFields)
	register(Order, Create, ShapeCreate, 1, orderFields)
	register(Order, Retrieve, ShapeDetail, 3, orderFields)
}

// Select returns the descriptor for resource and action, or
// ErrNoRepresentation when the pair is not known.
func Select(resource Resource, action Action) (Descriptor, error) {
	d, ok := table[key{resource, action}]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s %s", ErrNoRepresentation, action, resource)
	}
	return d, nil
}
