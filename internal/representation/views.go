package representation

import "time"

type CrewView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AirportView struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	ClosestBigCity string `json:"closest_big_city"`
}

type AirplaneTypeView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type RouteListView struct {
	ID          int64  `json:"id"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Distance    int    `json:"distance"`
}

// RouteDetailView is shared by the create and retrieve representations.
type RouteDetailView struct {
	ID          int64       `json:"id"`
	Source      AirportView `json:"source"`
	Destination AirportView `json:"destination"`
	Distance    int         `json:"distance"`
}

type AirplaneListView struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Rows         int    `json:"rows"`
	SeatsInRow   int    `json:"seats_in_row"`
	AirplaneType string `json:"airplane_type"`
	NumOfSeats   int    `json:"num_of_seats"`
}

type AirplaneDetailView struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Rows         int              `json:"rows"`
	SeatsInRow   int              `json:"seats_in_row"`
	AirplaneType AirplaneTypeView `json:"airplane_type"`
	NumOfSeats   int              `json:"num_of_seats"`
}

type FlightCreateView struct {
	ID            int64     `json:"id"`
	Route         int64     `json:"route"`
	Airplane      int64     `json:"airplane"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Crew          []int64   `json:"crew"`
}

type FlightListView struct {
	ID            int64         `json:"id"`
	Route         RouteListView `json:"route"`
	Airplane      string        `json:"airplane"`
	DepartureTime time.Time     `json:"departure_time"`
	ArrivalTime   time.Time     `json:"arrival_time"`
	Crew          []string      `json:"crew"`
}

type FlightDetailView struct {
	ID            int64              `json:"id"`
	Route         RouteDetailView    `json:"route"`
	Airplane      AirplaneDetailView `json:"airplane"`
	DepartureTime time.Time          `json:"departure_time"`
	ArrivalTime   time.Time          `json:"arrival_time"`
	Crew          []CrewView         `json:"crew"`
}

type TicketCreateView struct {
	ID     int64 `json:"id"`
	Row    int   `json:"row"`
	Seat   int   `json:"seat"`
	Flight int64 `json:"flight"`
}

type TicketListView struct {
	ID     int64  `json:"id"`
	Row    int    `json:"row"`
	Seat   int    `json:"seat"`
	Flight string `json:"flight"`
}

type TicketDetailView struct {
	ID     int64          `json:"id"`
	Row    int            `json:"row"`
	Seat   int            `json:"seat"`
	Flight FlightListView `json:"flight"`
}

type OrderCreateView struct {
	ID        int64              `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Tickets   []TicketCreateView `json:"tickets"`
}

type OrderListView struct {
	ID        int64            `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Tickets   []TicketListView `json:"tickets"`
}

type OrderDetailView struct {
	ID        int64              `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Tickets   []TicketDetailView `json:"tickets"`
}
