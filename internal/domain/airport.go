package domain

type Airport struct {
	ID             int64
	Name           string
	ClosestBigCity string
}

type Route struct {
	ID          int64
	Source      Airport
	Destination Airport
	Distance    int
}

// Label is the short form of a route used where a flight is shown as text.
func (r Route) Label() string {
	return r.Source.Name + " - " + r.Destination.Name
}
