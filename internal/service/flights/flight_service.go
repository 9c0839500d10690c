package flights

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/repository"
	"github.com/Domenick1991/airport-service/internal/validation"
	"github.com/rs/zerolog"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error)
}

// CreateFlightInput references route, airplane and crew by id only.
type CreateFlightInput struct {
	Route         int64      `json:"route" validate:"gt=0"`
	Airplane      int64      `json:"airplane" validate:"gt=0"`
	DepartureTime FlightTime `json:"departure_time" validate:"required"`
	ArrivalTime   FlightTime `json:"arrival_time" validate:"required"`
	Crew          []int64    `json:"crew" validate:"dive,gt=0"`
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache FlightCache
	log   zerolog.Logger
}

type Option func(*FlightService)

func WithLogger(log zerolog.Logger) Option {
	return func(s *FlightService) {
		s.log = log
	}
}

// NewFlightService builds the service. cache may be nil, in which case every
// List goes to the repository.
func NewFlightService(repo repository.FlightRepository, cache FlightCache, opts ...Option) *FlightService {
	s := &FlightService{repo: repo, cache: cache, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		cached, err := s.cache.GetFlights(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("flight cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.log.Warn().Err(err).Msg("flight cache write failed")
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input CreateFlightInput) (*domain.Flight, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	if err := validation.ValidateFlightTiming(input.DepartureTime.Time(), input.ArrivalTime.Time()); err != nil {
		return nil, err
	}

	flight := &domain.Flight{
		Route:         domain.Route{ID: input.Route},
		Airplane:      domain.Airplane{ID: input.Airplane},
		DepartureTime: input.DepartureTime.Time(),
		ArrivalTime:   input.ArrivalTime.Time(),
		Crew:          uniqueCrew(input.Crew),
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			s.log.Warn().Err(err).Int64("flight_id", flight.ID).Msg("flight cache invalidation failed")
		}
	}
	return flight, nil
}

// uniqueCrew keeps the first occurrence of each id, in request order.
func uniqueCrew(ids []int64) []domain.Crew {
	seen := make(map[int64]struct{}, len(ids))
	crew := make([]domain.Crew, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		crew = append(crew, domain.Crew{ID: id})
	}
	return crew
}

var _ FlightUseCase = (*FlightService)(nil)
