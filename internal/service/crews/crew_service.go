package crews

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/repository"
	"github.com/Domenick1991/airport-service/internal/validation"
)

type CrewUseCase interface {
	// List returns crew whose "first last" name contains fullName,
	// case-insensitively. An empty fullName lists everyone.
	List(ctx context.Context, fullName string) ([]domain.Crew, error)
	GetByID(ctx context.Context, id int64) (*domain.Crew, error)
	Create(ctx context.Context, input CreateCrewInput) (*domain.Crew, error)
}

type CreateCrewInput struct {
	FirstName string `json:"first_name" csv:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" csv:"last_name" validate:"required,max=255"`
}

type CrewService struct {
	repo repository.CrewRepository
}

func NewCrewService(repo repository.CrewRepository) *CrewService {
	return &CrewService{repo: repo}
}

func (s *CrewService) List(ctx context.Context, fullName string) ([]domain.Crew, error) {
	return s.repo.List(ctx, repository.CrewFilter{FullName: fullName})
}

func (s *CrewService) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CrewService) Create(ctx context.Context, input CreateCrewInput) (*domain.Crew, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	crew := &domain.Crew{FirstName: input.FirstName, LastName: input.LastName}
	if err := s.repo.Create(ctx, crew); err != nil {
		return nil, err
	}
	return crew, nil
}

var _ CrewUseCase = (*CrewService)(nil)
