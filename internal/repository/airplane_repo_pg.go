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

type AirplaneTypeRepository interface {
	List(ctx context.Context) ([]domain.AirplaneType, error)
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	Create(ctx context.Context, airplaneType *domain.AirplaneType) error
}

type AirplaneRepository interface {
	List(ctx context.Context) ([]domain.Airplane, error)
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	// Create stores the airplane, inserting its type first when the type has
	// a zero ID.
	Create(ctx context.Context, airplane *domain.Airplane) error
}

type PGAirplaneTypeRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneTypeRepository(db *pgxpool.Pool) AirplaneTypeRepository {
	return &PGAirplaneTypeRepository{db: db}
}

func (r *PGAirplaneTypeRepository) List(ctx context.Context) ([]domain.AirplaneType, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM airplane_types ORDER BY id`)
	if err != nil {
		return nil, sqlerr.Handle(err, "airplane_types")
	}
	defer rows.Close()

	types := make([]domain.AirplaneType, 0)
	for rows.Next() {
		var t domain.AirplaneType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, sqlerr.Handle(err, "airplane_types")
		}
		types = append(types, t)
	}
	return types, sqlerr.Handle(rows.Err(), "airplane_types")
}

func (r *PGAirplaneTypeRepository) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	t, err := getAirplaneType(ctx, r.db, id)
	if err != nil {
		return nil, sqlerr.Handle(err, "airplane_types")
	}
	return t, nil
}

func (r *PGAirplaneTypeRepository) Create(ctx context.Context, airplaneType *domain.AirplaneType) error {
	return sqlerr.Handle(insertAirplaneType(ctx, r.db, airplaneType), "airplane_types")
}

func getAirplaneType(ctx context.Context, q querier, id int64) (*domain.AirplaneType, error) {
	var t domain.AirplaneType
	if err := q.QueryRow(ctx, `SELECT id, name FROM airplane_types WHERE id=$1`, id).Scan(&t.ID, &t.Name); err != nil {
		return nil, err
	}
	return &t, nil
}

func insertAirplaneType(ctx context.Context, q querier, airplaneType *domain.AirplaneType) error {
	return q.QueryRow(ctx, `INSERT INTO airplane_types (name) VALUES ($1) RETURNING id`, airplaneType.Name).
		Scan(&airplaneType.ID)
}

type PGAirplaneRepository struct {
	db *pgxpool.Pool
}

func NewAirplaneRepository(db *pgxpool.Pool) AirplaneRepository {
	return &PGAirplaneRepository{db: db}
}

const airplaneSelect = `SELECT a.id, a.name, a.rows, a.seats_in_row, t.id, t.name
FROM airplanes a
JOIN airplane_types t ON t.id = a.airplane_type_id`

func scanAirplane(row pgx.Row, a *domain.Airplane) error {
	return row.Scan(&a.ID, &a.Name, &a.Rows, &a.SeatsInRow, &a.AirplaneType.ID, &a.AirplaneType.Name)
}

func (r *PGAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	rows, err := r.db.Query(ctx, airplaneSelect+` ORDER BY a.id`)
	if err != nil {
		return nil, sqlerr.Handle(err, "airplanes")
	}
	defer rows.Close()

	airplanes := make([]domain.Airplane, 0)
	for rows.Next() {
		var a domain.Airplane
		if err := scanAirplane(rows, &a); err != nil {
			return nil, sqlerr.Handle(err, "airplanes")
		}
		airplanes = append(airplanes, a)
	}
	return airplanes, sqlerr.Handle(rows.Err(), "airplanes")
}

func (r *PGAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	var a domain.Airplane
	if err := scanAirplane(r.db.QueryRow(ctx, airplaneSelect+` WHERE a.id=$1`, id), &a); err != nil {
		return nil, sqlerr.Handle(err, "airplanes")
	}
	return &a, nil
}

func (r *PGAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		if airplane.AirplaneType.ID == 0 {
			if err := insertAirplaneType(ctx, tx, &airplane.AirplaneType); err != nil {
				return err
			}
		} else {
			t, err := getAirplaneType(ctx, tx, airplane.AirplaneType.ID)
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.Field("airplane_type", fmt.Sprintf("airplane type %d does not exist", airplane.AirplaneType.ID))
			}
			if err != nil {
				return err
			}
			airplane.AirplaneType = *t
		}
		return tx.QueryRow(ctx, `INSERT INTO airplanes (name, rows, seats_in_row, airplane_type_id) VALUES ($1, $2, $3, $4) RETURNING id`,
			airplane.Name, airplane.Rows, airplane.SeatsInRow, airplane.AirplaneType.ID).Scan(&airplane.ID)
	})
	return sqlerr.Handle(err, "airplanes")
}

var (
	_ AirplaneTypeRepository = (*PGAirplaneTypeRepository)(nil)
	_ AirplaneRepository     = (*PGAirplaneRepository)(nil)
)
