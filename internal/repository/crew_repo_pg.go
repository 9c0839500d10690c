package repository

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CrewFilter narrows a crew listing. An empty FullName matches everything.
type CrewFilter struct {
	FullName string
}

type CrewRepository interface {
	List(ctx context.Context, filter CrewFilter) ([]domain.Crew, error)
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	Create(ctx context.Context, crew *domain.Crew) error
}

type PGCrewRepository struct {
	db *pgxpool.Pool
}

func NewCrewRepository(db *pgxpool.Pool) CrewRepository {
	return &PGCrewRepository{db: db}
}

// crewListQuery matches the full name as "first last", case-insensitively,
// anywhere in the string.
func crewListQuery(filter CrewFilter) (string, []any) {
	query := `SELECT id, first_name, last_name FROM crews`
	var args []any
	if filter.FullName != "" {
		query += ` WHERE (first_name || ' ' || last_name) ILIKE $1 ESCAPE '\'`
		args = append(args, containsPattern(filter.FullName))
	}
	return query + ` ORDER BY id`, args
}

func (r *PGCrewRepository) List(ctx context.Context, filter CrewFilter) ([]domain.Crew, error) {
	query, args := crewListQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, sqlerr.Handle(err, "crews")
	}
	defer rows.Close()

	crews := make([]domain.Crew, 0)
	for rows.Next() {
		var c domain.Crew
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, sqlerr.Handle(err, "crews")
		}
		crews = append(crews, c)
	}
	return crews, sqlerr.Handle(rows.Err(), "crews")
}

func (r *PGCrewRepository) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	var c domain.Crew
	err := r.db.QueryRow(ctx, `SELECT id, first_name, last_name FROM crews WHERE id=$1`, id).
		Scan(&c.ID, &c.FirstName, &c.LastName)
	if err != nil {
		return nil, sqlerr.Handle(err, "crews")
	}
	return &c, nil
}

func (r *PGCrewRepository) Create(ctx context.Context, crew *domain.Crew) error {
	err := r.db.QueryRow(ctx, `INSERT INTO crews (first_name, last_name) VALUES ($1, $2) RETURNING id`,
		crew.FirstName, crew.LastName).Scan(&crew.ID)
	return sqlerr.Handle(err, "crews")
}

var _ CrewRepository = (*PGCrewRepository)(nil)
