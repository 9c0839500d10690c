package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/airport-service/internal/domain"
	"github.com/Domenick1991/airport-service/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	if args.Error(0) == nil {
		flight.ID = 100
	}
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func (m *MockCache) InvalidateFlights(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestFlightService_List_FromCache(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)
	ctx := context.Background()

	cached := []domain.Flight{{ID: 1}}
	cache.On("GetFlights", ctx).Return(cached, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, result)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestFlightService_List_CacheMissFillsCache(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)
	ctx := context.Background()

	flights := []domain.Flight{{ID: 1}, {ID: 2}}
	cache.On("GetFlights", ctx).Return(nil, nil).Once()
	repo.On("List", ctx).Return(flights, nil).Once()
	cache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFlightService_List_CacheErrorFallsBack(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)
	ctx := context.Background()

	flights := []domain.Flight{{ID: 1}}
	cache.On("GetFlights", ctx).Return(nil, errors.New("redis down")).Once()
	repo.On("List", ctx).Return(flights, nil).Once()
	cache.On("SetFlights", ctx, flights).Return(errors.New("redis down")).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
}

func TestFlightService_List_NoCache(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)
	ctx := context.Background()

	repo.On("List", ctx).Return([]domain.Flight{}, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestFlightService_Create_ArrivalBeforeDeparture(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)

	dep := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	_, err := service.Create(context.Background(), CreateFlightInput{
		Route: 1, Airplane: 1,
		DepartureTime: FlightTime(dep),
		ArrivalTime:   FlightTime(dep.Add(-time.Hour)),
	})

	var appErr *errs.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errs.KindValidation, appErr.Kind)
	assert.Equal(t, "arrival_time", appErr.Fields[0].Field)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "InvalidateFlights", mock.Anything)
}

func TestFlightService_Create_EqualTimesRejected(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)

	dep := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	_, err := service.Create(context.Background(), CreateFlightInput{
		Route: 1, Airplane: 1, DepartureTime: FlightTime(dep), ArrivalTime: FlightTime(dep),
	})

	assert.True(t, errs.Is(err, errs.KindValidation))
}

func TestFlightService_Create_DedupesCrewAndInvalidates(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)
	ctx := context.Background()

	dep := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	repo.On("Create", ctx, mock.MatchedBy(func(f *domain.Flight) bool {
		return f.Route.ID == 2 && f.Airplane.ID == 3 &&
			len(f.Crew) == 2 && f.Crew[0].ID == 5 && f.Crew[1].ID == 6
	})).Return(nil).Once()
	cache.On("InvalidateFlights", ctx).Return(nil).Once()

	flight, err := service.Create(ctx, CreateFlightInput{
		Route: 2, Airplane: 3,
		DepartureTime: FlightTime(dep),
		ArrivalTime:   FlightTime(dep.Add(2 * time.Hour)),
		Crew:          []int64{5, 6, 5},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), flight.ID)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestFlightService_Create_KeepsCrewRequestOrder(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)
	ctx := context.Background()

	dep := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	repo.On("Create", ctx, mock.MatchedBy(func(f *domain.Flight) bool {
		ids := make([]int64, 0, len(f.Crew))
		for _, c := range f.Crew {
			ids = append(ids, c.ID)
		}
		return assert.ObjectsAreEqual([]int64{9, 4, 1}, ids)
	})).Return(nil).Once()

	_, err := service.Create(ctx, CreateFlightInput{
		Route: 2, Airplane: 3,
		DepartureTime: FlightTime(dep),
		ArrivalTime:   FlightTime(dep.Add(time.Hour)),
		Crew:          []int64{9, 4, 9, 1},
	})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestFlightService_Create_MissingTimes(t *testing.T) {
	repo := &MockFlightRepository{}
	service := NewFlightService(repo, nil)

	_, err := service.Create(context.Background(), CreateFlightInput{Route: 1, Airplane: 1})

	var appErr *errs.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errs.KindValidation, appErr.Kind)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFlightService_Create_RepositoryError(t *testing.T) {
	repo := &MockFlightRepository{}
	cache := &MockCache{}
	service := NewFlightService(repo, cache)
	ctx := context.Background()

	dep := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	repo.On("Create", ctx, mock.Anything).Return(errs.Field("route", "The referenced route does not exist")).Once()

	_, err := service.Create(ctx, CreateFlightInput{
		Route: 99, Airplane: 3, DepartureTime: FlightTime(dep), ArrivalTime: FlightTime(dep.Add(time.Hour)),
	})

	assert.True(t, errs.Is(err, errs.KindValidation))
	cache.AssertNotCalled(t, "InvalidateFlights", mock.Anything)
}
