package repository

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdentityRepository interface {
	GetByToken(ctx context.Context, key string) (*domain.Identity, error)
}

type PGIdentityRepository struct {
	db *pgxpool.Pool
}

func NewIdentityRepository(db *pgxpool.Pool) IdentityRepository {
	return &PGIdentityRepository{db: db}
}

func (r *PGIdentityRepository) GetByToken(ctx context.Context, key string) (*domain.Identity, error) {
	var id domain.Identity
	err := r.db.QueryRow(ctx, `SELECT u.id, u.email, u.is_active
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.key = $1`, key).Scan(&id.UserID, &id.Email, &id.IsActive)
	if err != nil {
		return nil, sqlerr.Handle(err, "auth_tokens")
	}
	return &id, nil
}

var _ IdentityRepository = (*PGIdentityRepository)(nil)
