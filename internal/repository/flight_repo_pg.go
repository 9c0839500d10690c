package repository

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	// Create stores the flight and its crew links. Route, airplane and crew
	// are referenced by ID only; on success flight is reloaded in full.
	Create(ctx context.Context, flight *domain.Flight) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightSelect = `SELECT f.id, f.departure_time, f.arrival_time,
	r.id, r.distance,
	s.id, s.name, s.closest_big_city,
	d.id, d.name, d.closest_big_city,
	a.id, a.name, a.rows, a.seats_in_row,
	t.id, t.name
FROM flights f
JOIN routes r ON r.id = f.route_id
JOIN airports s ON s.id = r.source_id
JOIN airports d ON d.id = r.destination_id
JOIN airplanes a ON a.id = f.airplane_id
JOIN airplane_types t ON t.id = a.airplane_type_id`

// Crew keep the order they were given in at creation.
const (
	flightCrewSelect = `SELECT fc.flight_id, c.id, c.first_name, c.last_name
FROM flight_crews fc
JOIN crews c ON c.id = fc.crew_id
WHERE fc.flight_id = ANY($1)
ORDER BY fc.flight_id, fc.ordinal`

	flightCrewInsert = `INSERT INTO flight_crews (flight_id, crew_id, ordinal)
SELECT $1, u.crew_id, u.ordinal
FROM unnest($2::bigint[]) WITH ORDINALITY AS u(crew_id, ordinal)`
)

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.ID, &f.DepartureTime, &f.ArrivalTime,
		&f.Route.ID, &f.Route.Distance,
		&f.Route.Source.ID, &f.Route.Source.Name, &f.Route.Source.ClosestBigCity,
		&f.Route.Destination.ID, &f.Route.Destination.Name, &f.Route.Destination.ClosestBigCity,
		&f.Airplane.ID, &f.Airplane.Name, &f.Airplane.Rows, &f.Airplane.SeatsInRow,
		&f.Airplane.AirplaneType.ID, &f.Airplane.AirplaneType.Name)
}

// loadFlights reads flights matching where together with their crew.
func loadFlights(ctx context.Context, q querier, where string, args ...any) ([]domain.Flight, error) {
	rows, err := q.Query(ctx, flightSelect+" "+where+` ORDER BY f.departure_time, f.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		index[f.ID] = len(flights)
		flights = append(flights, f)
	}
	// A transaction has one connection; the crew query needs it free.
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(flights) == 0 {
		return flights, nil
	}

	ids := make([]int64, 0, len(flights))
	for _, f := range flights {
		ids = append(ids, f.ID)
	}
	crewRows, err := q.Query(ctx, flightCrewSelect, ids)
	if err != nil {
		return nil, err
	}
	defer crewRows.Close()

	for crewRows.Next() {
		var flightID int64
		var c domain.Crew
		if err := crewRows.Scan(&flightID, &c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, err
		}
		i := index[flightID]
		flights[i].Crew = append(flights[i].Crew, c)
	}
	return flights, crewRows.Err()
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	flights, err := loadFlights(ctx, r.db, "")
	if err != nil {
		return nil, sqlerr.Handle(err, "flights")
	}
	return flights, nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	flights, err := loadFlights(ctx, r.db, `WHERE f.id = $1`, id)
	if err != nil {
		return nil, sqlerr.Handle(err, "flights")
	}
	if len(flights) == 0 {
		return nil, sqlerr.Handle(pgx.ErrNoRows, "flights")
	}
	return &flights[0], nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, `INSERT INTO flights (route_id, airplane_id, departure_time, arrival_time)
			VALUES ($1, $2, $3, $4) RETURNING id`,
			flight.Route.ID, flight.Airplane.ID, flight.DepartureTime, flight.ArrivalTime).Scan(&id)
		if err != nil {
			return err
		}

		if len(flight.Crew) > 0 {
			crewIDs := make([]int64, 0, len(flight.Crew))
			for _, c := range flight.Crew {
				crewIDs = append(crewIDs, c.ID)
			}
			if _, err := tx.Exec(ctx, flightCrewInsert, id, crewIDs); err != nil {
				return err
			}
		}

		loaded, err := loadFlights(ctx, tx, `WHERE f.id = $1`, id)
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			return pgx.ErrNoRows
		}
		*flight = loaded[0]
		return nil
	})
	return sqlerr.Handle(err, "flights")
}

var _ FlightRepository = (*PGFlightRepository)(nil)
