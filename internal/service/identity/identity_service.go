package identity

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/Domenick1991/airport-service/internal/repository"
	"github.com/rs/zerolog"
)

type IdentityUseCase interface {
	// Resolve maps an API token to its user. Unknown tokens are
	// Unauthenticated, tokens of inactive users are Forbidden.
	Resolve(ctx context.Context, token string) (*domain.Identity, error)
}

type TokenCache interface {
	GetIdentity(ctx context.Context, token string) (*domain.Identity, error)
	SetIdentity(ctx context.Context, token string, identity domain.Identity) error
}

type IdentityService struct {
	repo  repository.IdentityRepository
	cache TokenCache
	log   zerolog.Logger
}

func NewIdentityService(repo repository.IdentityRepository, cache TokenCache, log zerolog.Logger) *IdentityService {
	return &IdentityService{repo: repo, cache: cache, log: log}
}

func (s *IdentityService) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, errs.Unauthenticated("Authentication credentials were not provided")
	}

	identity, err := s.lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	if !identity.IsActive {
		return nil, errs.Forbidden("User inactive or deleted")
	}
	return identity, nil
}

func (s *IdentityService) lookup(ctx context.Context, token string) (*domain.Identity, error) {
	if s.cache != nil {
		cached, err := s.cache.GetIdentity(ctx, token)
		if err != nil {
			s.log.Warn().Err(err).Msg("token cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	identity, err := s.repo.GetByToken(ctx, token)
	if errs.Is(err, errs.KindNotFound) {
		return nil, errs.Unauthenticated("Invalid token")
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetIdentity(ctx, token, *identity); err != nil {
			s.log.Warn().Err(err).Msg("token cache write failed")
		}
	}
	return identity, nil
}

var _ IdentityUseCase = (*IdentityService)(nil)
