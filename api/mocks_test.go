package api

import (
	"context"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/service/airplanes"
	"github.com/Domenick1991/airport-service/internal/service/airports"
	"github.com/Domenick1991/airport-service/internal/service/crews"
	"github.com/Domenick1991/airport-service/internal/service/flights"
	"github.com/Domenick1991/airport-service/internal/service/orders"
	"github.com/Domenick1991/airport-service/internal/service/routes"
	"github.com/stretchr/testify/mock"
)

type MockCrewUseCase struct {
	mock.Mock
}

func (m *MockCrewUseCase) List(ctx context.Context, fullName string) ([]domain.Crew, error) {
	args := m.Called(ctx, fullName)
	return args.Get(0).([]domain.Crew), args.Error(1)
}

func (m *MockCrewUseCase) GetByID(ctx context.Context, id int64) (*domain.Crew, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

func (m *MockCrewUseCase) Create(ctx context.Context, input crews.CreateCrewInput) (*domain.Crew, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crew), args.Error(1)
}

type MockAirportUseCase struct {
	mock.Mock
}

func (m *MockAirportUseCase) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportUseCase) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportUseCase) Create(ctx context.Context, input airports.CreateAirportInput) (*domain.Airport, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

type MockRouteUseCase struct {
	mock.Mock
}

func (m *MockRouteUseCase) List(ctx context.Context) ([]domain.Route, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteUseCase) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteUseCase) Create(ctx context.Context, input routes.CreateRouteInput) (*domain.Route, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

type MockAirplaneTypeUseCase struct {
	mock.Mock
}

func (m *MockAirplaneTypeUseCase) List(ctx context.Context) ([]domain.AirplaneType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeUseCase) GetByID(ctx context.Context, id int64) (*domain.AirplaneType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

func (m *MockAirplaneTypeUseCase) Create(ctx context.Context, input airplanes.CreateAirplaneTypeInput) (*domain.AirplaneType, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirplaneType), args.Error(1)
}

type MockAirplaneUseCase struct {
	mock.Mock
}

func (m *MockAirplaneUseCase) List(ctx context.Context) ([]domain.Airplane, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airplane), args.Error(1)
}

func (m *MockAirplaneUseCase) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockAirplaneUseCase) Create(ctx context.Context, input airplanes.CreateAirplaneInput) (*domain.Airplane, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, input flights.CreateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockOrderUseCase struct {
	mock.Mock
}

func (m *MockOrderUseCase) List(ctx context.Context, identity domain.Identity) ([]domain.Order, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) GetByID(ctx context.Context, identity domain.Identity, id int64) (*domain.Order, error) {
	args := m.Called(ctx, identity, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderUseCase) Create(ctx context.Context, identity domain.Identity, input orders.CreateOrderInput) (*domain.Order, error) {
	args := m.Called(ctx, identity, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type MockIdentityUseCase struct {
	mock.Mock
}

func (m *MockIdentityUseCase) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Identity), args.Error(1)
}
