package domain

import "time"

type Order struct {
	ID        int64
	UserID    int64
	CreatedAt time.Time
	Tickets   []Ticket
}

type Ticket struct {
	ID     int64
	Row    int
	Seat   int
	Flight Flight
}
