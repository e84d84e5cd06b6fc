package flightops

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/andinovuelo/flightops/internal/domain"
	"github.com/andinovuelo/flightops/internal/kafka"
	"github.com/andinovuelo/flightops/internal/repository"
	"github.com/google/uuid"
)

type FlightOpsUseCase interface {
	Search(ctx context.Context, input SearchInput) ([]domain.FlightSummary, error)
	GetFlight(ctx context.Context, id int64) (*domain.Flight, error)
	RegisterFlight(ctx context.Context, input RegisterFlightInput) (domain.RegistrationResult, error)
	RegisterBoarding(ctx context.Context, input BoardingInput, counter *BoardingCounter) (*domain.BoardingRecord, error)
}

type Cache interface {
	GetSearch(ctx context.Context, airlineID int64, from, to time.Time) ([]domain.FlightSummary, error)
	SetSearch(ctx context.Context, airlineID int64, from, to time.Time, flights []domain.FlightSummary) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type SearchInput struct {
	AirlineID int64
	From      time.Time
	To        time.Time
}

type RegisterFlightInput struct {
	Number        string
	Date          time.Time
	DepartureTime time.Time
	ArrivalTime   time.Time
	AircraftID    int64
	AirlineID     int64
	OriginID      int64
	DestinationID int64
	Actor         string
}

type BoardingInput struct {
	TicketID int64
	FlightID int64
	GateID   int64
	Actor    string
}

// BoardingCounter is the caller-owned running total of boardings in a
// gate session. Each successful RegisterBoarding increments it; a
// rejected ticket/flight pair leaves it untouched.
type BoardingCounter struct {
	Boarded int
}

type FlightOpsService struct {
	flights            repository.FlightRepository
	boardings          repository.BoardingRepository
	cache              Cache
	producer           Producer
	auditTopic         string
	notificationsTopic string
}

type FlightOpsServiceOption func(*FlightOpsService)

func WithAuditTopic(topic string) FlightOpsServiceOption {
	return func(s *FlightOpsService) {
		s.auditTopic = topic
	}
}

func WithNotificationsTopic(topic string) FlightOpsServiceOption {
	return func(s *FlightOpsService) {
		s.notificationsTopic = topic
	}
}

func NewFlightOpsService(
	flights repository.FlightRepository,
	boardings repository.BoardingRepository,
	cache Cache,
	producer Producer,
	opts ...FlightOpsServiceOption,
) *FlightOpsService {
	service := &FlightOpsService{
		flights:   flights,
		boardings: boardings,
		cache:     cache,
		producer:  producer,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Search lists an airline's flights inside an inclusive date range,
// ordered by date then departure. The read path never errors on its
// inputs: an inverted range, like a range with no flights, is empty.
func (s *FlightOpsService) Search(ctx context.Context, input SearchInput) ([]domain.FlightSummary, error) {
	if input.To.Before(input.From) {
		return []domain.FlightSummary{}, nil
	}

	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, input.AirlineID, input.From, input.To); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.flights.Search(ctx, input.AirlineID, input.From, input.To)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetSearch(ctx, input.AirlineID, input.From, input.To, flights)
	}
	return flights, nil
}

func (s *FlightOpsService) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.flights.GetByID(ctx, id)
}

// RegisterFlight creates a flight inside one transaction with a
// duplicate guard on (number, date). The returned result distinguishes
// created, duplicate and failed; the error return carries only context
// cancellation style failures the caller may want to inspect.
func (s *FlightOpsService) RegisterFlight(ctx context.Context, input RegisterFlightInput) (domain.RegistrationResult, error) {
	if input.Number == "" {
		return domain.RegistrationResult{
			Status:  domain.RegistrationFailed,
			Message: "flight number is required",
		}, nil
	}

	id, err := s.flights.Create(ctx, repository.CreateFlightParams{
		Number:        input.Number,
		Date:          input.Date,
		DepartureTime: input.DepartureTime,
		ArrivalTime:   input.ArrivalTime,
		AircraftID:    input.AircraftID,
		AirlineID:     input.AirlineID,
		OriginID:      input.OriginID,
		DestinationID: input.DestinationID,
		Actor:         input.Actor,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateFlight) {
			return domain.RegistrationResult{
				Status:  domain.RegistrationDuplicate,
				Message: fmt.Sprintf("flight %s on %s already exists", input.Number, input.Date.Format("2006-01-02")),
			}, nil
		}
		log.Printf("register flight %s: %v", input.Number, err)
		return domain.RegistrationResult{
			Status:  domain.RegistrationFailed,
			Message: "flight registration failed",
		}, nil
	}

	s.publishAudit(ctx, "flight_registered", "flight", id, input.Actor,
		fmt.Sprintf("flight %s on %s", input.Number, input.Date.Format("2006-01-02")))

	return domain.RegistrationResult{
		Status:   domain.RegistrationCreated,
		FlightID: &id,
		Message:  fmt.Sprintf("flight %s registered", input.Number),
	}, nil
}

// RegisterBoarding boards a ticket onto its flight and bumps the
// caller's counter. A ticket that does not belong to the flight is a
// quiet no-op: no rows written, counter unchanged, (nil, nil).
func (s *FlightOpsService) RegisterBoarding(ctx context.Context, input BoardingInput, counter *BoardingCounter) (*domain.BoardingRecord, error) {
	if counter == nil {
		return nil, errors.New("boarding counter is required")
	}

	record, err := s.boardings.RegisterBoarding(ctx, repository.RegisterBoardingParams{
		TicketID: input.TicketID,
		FlightID: input.FlightID,
		GateID:   input.GateID,
		Actor:    input.Actor,
		Boarded:  counter.Boarded + 1,
	})
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	counter.Boarded++
	s.publishAudit(ctx, "passenger_boarded", "boarding", record.ID, input.Actor,
		fmt.Sprintf("ticket %d boarded flight %d at gate %d", input.TicketID, input.FlightID, input.GateID))
	return record, nil
}

func (s *FlightOpsService) publishAudit(ctx context.Context, eventType, entityType string, entityID int64, actor, detail string) {
	if s.producer == nil {
		return
	}
	event := kafka.AuditEvent{
		Type:       eventType,
		EntityType: entityType,
		EntityID:   entityID,
		Actor:      actor,
		Detail:     detail,
		OccurredAt: time.Now(),
	}
	key := uuid.NewString()
	if s.auditTopic != "" {
		if err := s.producer.Publish(ctx, s.auditTopic, key, event); err != nil {
			log.Printf("WARNING: failed to publish %s event for %s %d: %v", eventType, entityType, entityID, err)
		}
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			log.Printf("WARNING: failed to publish %s notification for %s %d: %v", eventType, entityType, entityID, err)
		}
	}
}

var _ FlightOpsUseCase = (*FlightOpsService)(nil)
