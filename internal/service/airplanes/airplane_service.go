package airplanes

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/repository"
	"github.com/Domenick1991/airport-service/internal/validation"
)

type AirplaneTypeUseCase interface {
	List(ctx context.Context) ([]domain.AirplaneType, error)
	GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error)
	Create(ctx context.Context, input CreateAirplaneTypeInput) (*domain.AirplaneType, error)
}

type AirplaneUseCase interface {
	List(ctx context.Context) ([]domain.Airplane, error)
	GetByID(ctx context.Context, id int64) (*domain.Airplane, error)
	Create(ctx context.Context, input CreateAirplaneInput) (*domain.Airplane, error)
}

type CreateAirplaneTypeInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// AirplaneTypeInput is the writable airplane_type of an airplane payload:
// {"id": N} references an existing type, {"name": "..."} creates one.
type AirplaneTypeInput struct {
	ID   int64  `json:"id" validate:"gte=0"`
	Name string `json:"name" validate:"required_without=ID,max=255"`
}

type CreateAirplaneInput struct {
	Name         string            `json:"name" validate:"required,max=255"`
	Rows         int               `json:"rows" validate:"gt=0"`
	SeatsInRow   int               `json:"seats_in_row" validate:"gt=0"`
	AirplaneType AirplaneTypeInput `json:"airplane_type"`
}

type AirplaneTypeService struct {
	repo repository.AirplaneTypeRepository
}

func NewAirplaneTypeService(repo repository.AirplaneTypeRepository) *AirplaneTypeService {
	return &AirplaneTypeService{repo: repo}
}

func (s *AirplaneTypeService) List(ctx context.Context) ([]domain.AirplaneType, error) {
	return s.repo.List(ctx)
}

func (s *AirplaneTypeService) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AirplaneTypeService) Create(ctx context.Context, input CreateAirplaneTypeInput) (*domain.AirplaneType, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	airplaneType := &domain.AirplaneType{Name: input.Name}
	if err := s.repo.Create(ctx, airplaneType); err != nil {
		return nil, err
	}
	return airplaneType, nil
}

type AirplaneService struct {
	repo repository.AirplaneRepository
}

func NewAirplaneService(repo repository.AirplaneRepository) *AirplaneService {
	return &AirplaneService{repo: repo}
}

func (s *AirplaneService) List(ctx context.Context) ([]domain.Airplane, error) {
	return s.repo.List(ctx)
}

func (s *AirplaneService) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AirplaneService) Create(ctx context.Context, input CreateAirplaneInput) (*domain.Airplane, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	airplane := &domain.Airplane{
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
		AirplaneType: domain.AirplaneType{
			ID: input.AirplaneType.ID,
		},
	}
	if input.AirplaneType.ID == 0 {
		airplane.AirplaneType.Name = input.AirplaneType.Name
	}
	if err := s.repo.Create(ctx, airplane); err != nil {
		return nil, err
	}
	return airplane, nil
}

var (
	_ AirplaneTypeUseCase = (*AirplaneTypeService)(nil)
	_ AirplaneUseCase     = (*AirplaneService)(nil)
)
