package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/Domenick1991/airport-service/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RouteRepository interface {
	List(ctx context.Context) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	// Create stores the route. Endpoints with a zero ID are inserted as new
	// airports in the same transaction; the others must already exist.
	Create(ctx context.Context, route *domain.Route) error
}

type PGRouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) RouteRepository {
	return &PGRouteRepository{db: db}
}

const routeSelect = `SELECT r.id, r.distance,
	s.id, s.name, s.closest_big_city,
	d.id, d.name, d.closest_big_city
FROM routes r
JOIN airports s ON s.id = r.source_id
JOIN airports d ON d.id = r.destination_id`

func scanRoute(row pgx.Row, r *domain.Route) error {
	return row.Scan(&r.ID, &r.Distance,
		&r.Source.ID, &r.Source.Name, &r.Source.ClosestBigCity,
		&r.Destination.ID, &r.Destination.Name, &r.Destination.ClosestBigCity)
}

func (r *PGRouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	rows, err := r.db.Query(ctx, routeSelect+` ORDER BY r.id`)
	if err != nil {
		return nil, sqlerr.Handle(err, "routes")
	}
	defer rows.Close()

	routes := make([]domain.Route, 0)
	for rows.Next() {
		var route domain.Route
		if err := scanRoute(rows, &route); err != nil {
			return nil, sqlerr.Handle(err, "routes")
		}
		routes = append(routes, route)
	}
	return routes, sqlerr.Handle(rows.Err(), "routes")
}

func (r *PGRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	var route domain.Route
	if err := scanRoute(r.db.QueryRow(ctx, routeSelect+` WHERE r.id=$1`, id), &route); err != nil {
		return nil, sqlerr.Handle(err, "routes")
	}
	return &route, nil
}

func (r *PGRouteRepository) Create(ctx context.Context, route *domain.Route) error {
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := resolveAirport(ctx, tx, &route.Source, "source"); err != nil {
			return err
		}
		if err := resolveAirport(ctx, tx, &route.Destination, "destination"); err != nil {
			return err
		}
		return tx.QueryRow(ctx, `INSERT INTO routes (source_id, destination_id, distance) VALUES ($1, $2, $3) RETURNING id`,
			route.Source.ID, route.Destination.ID, route.Distance).Scan(&route.ID)
	})
	return sqlerr.Handle(err, "routes")
}

// resolveAirport inserts a new airport or loads an existing one in place.
func resolveAirport(ctx context.Context, q querier, airport *domain.Airport, field string) error {
	if airport.ID == 0 {
		return insertAirport(ctx, q, airport)
	}
	existing, err := getAirport(ctx, q, airport.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.Field(field, fmt.Sprintf("airport %d does not exist", airport.ID))
	}
	if err != nil {
		return err
	}
	*airport = *existing
	return nil
}

var _ RouteRepository = (*PGRouteRepository)(nil)
