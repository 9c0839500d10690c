package repository

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AirportRepository interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, airport *domain.Airport) error
}

type PGAirportRepository struct {
	db *pgxpool.Pool
}

func NewAirportRepository(db *pgxpool.Pool) AirportRepository {
	return &PGAirportRepository{db: db}
}

func (r *PGAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, closest_big_city FROM airports ORDER BY id`)
	if err != nil {
		return nil, sqlerr.Handle(err, "airports")
	}
	defer rows.Close()

	airports := make([]domain.Airport, 0)
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.ID, &a.Name, &a.ClosestBigCity); err != nil {
			return nil, sqlerr.Handle(err, "airports")
		}
		airports = append(airports, a)
	}
	return airports, sqlerr.Handle(rows.Err(), "airports")
}

func (r *PGAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	a, err := getAirport(ctx, r.db, id)
	if err != nil {
		return nil, sqlerr.Handle(err, "airports")
	}
	return a, nil
}

func (r *PGAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	return sqlerr.Handle(insertAirport(ctx, r.db, airport), "airports")
}

func getAirport(ctx context.Context, q querier, id int64) (*domain.Airport, error) {
	var a domain.Airport
	err := q.QueryRow(ctx, `SELECT id, name, closest_big_city FROM airports WHERE id=$1`, id).
		Scan(&a.ID, &a.Name, &a.ClosestBigCity)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func insertAirport(ctx context.Context, q querier, airport *domain.Airport) error {
	return q.QueryRow(ctx, `INSERT INTO airports (name, closest_big_city) VALUES ($1, $2) RETURNING id`,
		airport.Name, airport.ClosestBigCity).Scan(&airport.ID)
}

var _ AirportRepository = (*PGAirportRepository)(nil)
