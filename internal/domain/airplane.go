package domain

type AirplaneType struct {
	ID   int64
	Name string
}

type Airplane struct {
	ID           int64
	Name         string
	Rows         int
	SeatsInRow   int
	AirplaneType AirplaneType
}

func (a Airplane) NumOfSeats() int {
	return a.Rows * a.SeatsInRow
}
