package routes

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/repository"
	"github.com/Domenick1991/airport-service/internal/validation"
)

type RouteUseCase interface {
	List(ctx context.Context) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	Create(ctx context.Context, input CreateRouteInput) (*domain.Route, error)
}

// AirportInput is a writable route endpoint. With an id it references an
// existing airport and the other attributes are ignored.
type AirportInput struct {
	ID             int64  `json:"id" validate:"gte=0"`
	Name           string `json:"name" validate:"required_without=ID,max=255"`
	ClosestBigCity string `json:"closest_big_city" validate:"required_without=ID,max=255"`
}

func (a AirportInput) ref() validation.AirportRef {
	if a.ID != 0 {
		return validation.AirportRef{ID: a.ID}
	}
	return validation.AirportRef{Name: a.Name, ClosestBigCity: a.ClosestBigCity}
}

func (a AirportInput) airport() domain.Airport {
	r := a.ref()
	return domain.Airport{ID: r.ID, Name: r.Name, ClosestBigCity: r.ClosestBigCity}
}

type CreateRouteInput struct {
	Source      AirportInput `json:"source"`
	Destination AirportInput `json:"destination"`
	Distance    int          `json:"distance" validate:"gt=0"`
}

type RouteService struct {
	repo repository.RouteRepository
}

func NewRouteService(repo repository.RouteRepository) *RouteService {
	return &RouteService{repo: repo}
}

func (s *RouteService) List(ctx context.Context) ([]domain.Route, error) {
	return s.repo.List(ctx)
}

func (s *RouteService) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RouteService) Create(ctx context.Context, input CreateRouteInput) (*domain.Route, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := validation.ValidateRoute(input.Source.ref(), input.Destination.ref()); err != nil {
		return nil, err
	}

	route := &domain.Route{
		Source:      input.Source.airport(),
		Destination: input.Destination.airport(),
		Distance:    input.Distance,
	}
	if err := s.repo.Create(ctx, route); err != nil {
		return nil, err
	}
	return route, nil
}

var _ RouteUseCase = (*RouteService)(nil)
