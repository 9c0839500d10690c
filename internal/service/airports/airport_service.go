package airports

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/repository"
	"github.com/Domenick1991/airport-service/internal/validation"
)

type AirportUseCase interface {
	List(ctx context.Context) ([]domain.Airport, error)
	GetByID(ctx context.Context, id int64) (*domain.Airport, error)
	Create(ctx context.Context, input CreateAirportInput) (*domain.Airport, error)
}

// CreateAirportInput carries no uniqueness rule: two airports may share a name.
type CreateAirportInput struct {
	Name           string `json:"name" csv:"name" validate:"required,max=255"`
	ClosestBigCity string `json:"closest_big_city" csv:"closest_big_city" validate:"required,max=255"`
}

type AirportService struct {
	repo repository.AirportRepository
}

func NewAirportService(repo repository.AirportRepository) *AirportService {
	return &AirportService{repo: repo}
}

func (s *AirportService) List(ctx context.Context) ([]domain.Airport, error) {
	return s.repo.List(ctx)
}

func (s *AirportService) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AirportService) Create(ctx context.Context, input CreateAirportInput) (*domain.Airport, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	airport := &domain.Airport{Name: input.Name, ClosestBigCity: input.ClosestBigCity}
	if err := s.repo.Create(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

var _ AirportUseCase = (*AirportService)(nil)
