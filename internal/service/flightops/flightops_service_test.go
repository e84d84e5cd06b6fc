package flightops

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andinovuelo/flightops/internal/domain"
	"github.com/andinovuelo/flightops/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) Search(ctx context.Context, airlineID int64, from, to time.Time) ([]domain.FlightSummary, error) {
	args := m.Called(ctx, airlineID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightSummary), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, params repository.CreateFlightParams) (int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(int64), args.Error(1)
}

type MockBoardingRepository struct {
	mock.Mock
}

func (m *MockBoardingRepository) RegisterBoarding(ctx context.Context, params repository.RegisterBoardingParams) (*domain.BoardingRecord, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BoardingRecord), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetSearch(ctx context.Context, airlineID int64, from, to time.Time) ([]domain.FlightSummary, error) {
	args := m.Called(ctx, airlineID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlightSummary), args.Error(1)
}

func (m *MockCache) SetSearch(ctx context.Context, airlineID int64, from, to time.Time, flights []domain.FlightSummary) error {
	args := m.Called(ctx, airlineID, from, to, flights)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func TestFlightOpsService_Search_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}
	mockCache := &MockCache{}

	service := NewFlightOpsService(mockRepo, mockBoardings, mockCache, nil)

	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	flights := []domain.FlightSummary{
		{ID: 1, Number: "AV101", Origin: domain.Airport{City: "Quito"}, Destination: domain.Airport{City: "Lima"}},
	}

	mockCache.On("GetSearch", ctx, int64(5), from, to).Return(([]domain.FlightSummary)(nil), nil).Once()
	mockRepo.On("Search", ctx, int64(5), from, to).Return(flights, nil).Once()
	mockCache.On("SetSearch", ctx, int64(5), from, to, flights).Return(nil).Once()

	result, err := service.Search(ctx, SearchInput{AirlineID: 5, From: from, To: to})

	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestFlightOpsService_Search_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}
	mockCache := &MockCache{}

	service := NewFlightOpsService(mockRepo, mockBoardings, mockCache, nil)

	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	flights := []domain.FlightSummary{
		{ID: 1, Number: "AV101", Origin: domain.Airport{City: "Quito"}, Destination: domain.Airport{City: "Lima"}},
	}

	mockCache.On("GetSearch", ctx, int64(5), from, to).Return(flights, nil).Once()

	result, err := service.Search(ctx, SearchInput{AirlineID: 5, From: from, To: to})

	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockCache.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "Search")
}

// The read path never errors on its inputs: an inverted range yields
// the same empty set a BETWEEN with reversed bounds would.
func TestFlightOpsService_Search_InvertedRangeIsEmpty(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}

	service := NewFlightOpsService(mockRepo, mockBoardings, nil, nil)

	ctx := context.Background()
	from := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	result, err := service.Search(ctx, SearchInput{AirlineID: 5, From: from, To: to})

	assert.NoError(t, err)
	assert.Empty(t, result)
	mockRepo.AssertNotCalled(t, "Search")
}

func TestFlightOpsService_RegisterFlight_Created(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}
	mockProducer := &MockProducer{}

	service := NewFlightOpsService(mockRepo, mockBoardings, nil, mockProducer, WithAuditTopic("audit"))

	ctx := context.Background()
	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	mockRepo.On("Create", ctx, mock.MatchedBy(func(p repository.CreateFlightParams) bool {
		return p.Number == "AV202" && p.Date.Equal(date)
	})).Return(int64(42), nil).Once()
	mockProducer.On("Publish", ctx, "audit", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := service.RegisterFlight(ctx, RegisterFlightInput{
		Number:     "AV202",
		Date:       date,
		AircraftID: 3,
		AirlineID:  1,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RegistrationCreated, result.Status)
	assert.NotNil(t, result.FlightID)
	assert.Equal(t, int64(42), *result.FlightID)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestFlightOpsService_RegisterFlight_PublishesNotifications(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}
	mockProducer := &MockProducer{}

	service := NewFlightOpsService(mockRepo, mockBoardings, nil, mockProducer,
		WithAuditTopic("audit"),
		WithNotificationsTopic("notifications"))

	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.Anything).Return(int64(7), nil).Once()
	mockProducer.On("Publish", ctx, "audit", mock.Anything, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := service.RegisterFlight(ctx, RegisterFlightInput{Number: "AV500", Date: time.Now()})

	assert.NoError(t, err)
	assert.Equal(t, domain.RegistrationCreated, result.Status)

	mockProducer.AssertExpectations(t)
}

func TestFlightOpsService_RegisterFlight_Duplicate(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}
	mockProducer := &MockProducer{}

	service := NewFlightOpsService(mockRepo, mockBoardings, nil, mockProducer, WithAuditTopic("audit"))

	ctx := context.Background()
	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	mockRepo.On("Create", ctx, mock.Anything).Return(int64(0), repository.ErrDuplicateFlight).Once()

	result, err := service.RegisterFlight(ctx, RegisterFlightInput{Number: "AV202", Date: date})

	assert.NoError(t, err)
	assert.Equal(t, domain.RegistrationDuplicate, result.Status)
	assert.Nil(t, result.FlightID)
	assert.Contains(t, result.Message, "already exists")

	mockProducer.AssertNotCalled(t, "Publish")
}

func TestFlightOpsService_RegisterFlight_Failed(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}

	service := NewFlightOpsService(mockRepo, mockBoardings, nil, nil)

	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.Anything).Return(int64(0), errors.New("connection reset")).Once()

	result, err := service.RegisterFlight(ctx, RegisterFlightInput{Number: "AV300", Date: time.Now()})

	assert.NoError(t, err)
	assert.Equal(t, domain.RegistrationFailed, result.Status)
	assert.Nil(t, result.FlightID)
}

func TestFlightOpsService_RegisterFlight_MissingNumber(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}

	service := NewFlightOpsService(mockRepo, mockBoardings, nil, nil)

	result, err := service.RegisterFlight(context.Background(), RegisterFlightInput{})

	assert.NoError(t, err)
	assert.Equal(t, domain.RegistrationFailed, result.Status)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestFlightOpsService_RegisterBoarding_Accumulates(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}

	service := NewFlightOpsService(mockRepo, mockBoardings, nil, nil)

	ctx := context.Background()
	input := BoardingInput{TicketID: 10, FlightID: 20, GateID: 3, Actor: "gate-agent"}

	mockBoardings.On("RegisterBoarding", ctx, mock.MatchedBy(func(p repository.RegisterBoardingParams) bool {
		return p.TicketID == 10 && p.FlightID == 20 && p.Boarded == 1
	})).Return(&domain.BoardingRecord{ID: 100, TicketID: 10, FlightID: 20, GateID: 3, State: "OK"}, nil).Once()
	mockBoardings.On("RegisterBoarding", ctx, mock.MatchedBy(func(p repository.RegisterBoardingParams) bool {
		return p.TicketID == 10 && p.FlightID == 20 && p.Boarded == 2
	})).Return(&domain.BoardingRecord{ID: 101, TicketID: 10, FlightID: 20, GateID: 3, State: "OK"}, nil).Once()

	counter := BoardingCounter{}

	record, err := service.RegisterBoarding(ctx, input, &counter)
	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, 1, counter.Boarded)

	record, err = service.RegisterBoarding(ctx, input, &counter)
	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, "OK", record.State)
	assert.Equal(t, 2, counter.Boarded)

	mockBoardings.AssertExpectations(t)
}

func TestFlightOpsService_RegisterBoarding_UnknownTicketIsNoOp(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}
	mockProducer := &MockProducer{}

	service := NewFlightOpsService(mockRepo, mockBoardings, nil, mockProducer, WithAuditTopic("audit"))

	ctx := context.Background()

	mockBoardings.On("RegisterBoarding", ctx, mock.Anything).Return(nil, nil).Once()

	counter := BoardingCounter{}

	record, err := service.RegisterBoarding(ctx, BoardingInput{TicketID: 999, FlightID: 20, GateID: 3}, &counter)

	assert.NoError(t, err)
	assert.Nil(t, record)
	assert.Equal(t, 0, counter.Boarded)

	mockProducer.AssertNotCalled(t, "Publish")
}

func TestFlightOpsService_RegisterBoarding_RepositoryError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}

	service := NewFlightOpsService(mockRepo, mockBoardings, nil, nil)

	ctx := context.Background()

	mockBoardings.On("RegisterBoarding", ctx, mock.Anything).Return(nil, errors.New("database error")).Once()

	counter := BoardingCounter{Boarded: 5}

	record, err := service.RegisterBoarding(ctx, BoardingInput{TicketID: 1, FlightID: 2, GateID: 3}, &counter)

	assert.Error(t, err)
	assert.Nil(t, record)
	assert.Equal(t, 5, counter.Boarded)
}

func TestFlightOpsService_RegisterBoarding_NilCounter(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockBoardings := &MockBoardingRepository{}

	service := NewFlightOpsService(mockRepo, mockBoardings, nil, nil)

	record, err := service.RegisterBoarding(context.Background(), BoardingInput{TicketID: 1, FlightID: 2}, nil)

	assert.Error(t, err)
	assert.Nil(t, record)
	mockBoardings.AssertNotCalled(t, "RegisterBoarding")
}
