package reports

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/andinovuelo/flightops/internal/domain"
	"github.com/andinovuelo/flightops/internal/repository"
)

type ReportUseCase interface {
	FlightStats(ctx context.Context, flightID int64) (domain.FlightStats, error)
	ClassifyFlight(ctx context.Context, flightID int64) (domain.FlightClassification, error)
	FrequentFlyers(ctx context.Context, minFlights int) ([]domain.FrequentFlyer, error)
	RouteProfitability(ctx context.Context, originID, destinationID int64, windowDays int) (domain.RouteProfitability, error)
}

type Cache interface {
	GetFrequentFlyers(ctx context.Context, minFlights int) ([]domain.FrequentFlyer, error)
	SetFrequentFlyers(ctx context.Context, minFlights int, flyers []domain.FrequentFlyer) error
}

type ReportService struct {
	repo  repository.ReportRepository
	cache Cache
}

func NewReportService(repo repository.ReportRepository, cache Cache) *ReportService {
	return &ReportService{repo: repo, cache: cache}
}

// FlightStats returns headcounts and occupancy for one flight. A missing
// flight or zero capacity degrades to zero values, never an error.
func (s *ReportService) FlightStats(ctx context.Context, flightID int64) (domain.FlightStats, error) {
	counts, err := s.repo.FlightCounts(ctx, flightID)
	if err != nil {
		return domain.FlightStats{}, err
	}
	if !counts.Found {
		return domain.FlightStats{FlightID: flightID}, nil
	}

	return domain.FlightStats{
		FlightID:   flightID,
		Passengers: counts.Tickets,
		Baggage:    counts.Baggage,
		CheckedIn:  counts.CheckedIn,
		Occupancy:  occupancyPercent(counts.Tickets, counts.Capacity),
	}, nil
}

func (s *ReportService) ClassifyFlight(ctx context.Context, flightID int64) (domain.FlightClassification, error) {
	counts, err := s.repo.FlightCounts(ctx, flightID)
	if err != nil {
		return domain.FlightClassification{}, err
	}

	occupancy := occupancyPercent(counts.Tickets, counts.Capacity)
	tier := demandTier(occupancy)

	return domain.FlightClassification{
		FlightID:  flightID,
		Occupancy: occupancy,
		Tier:      tier,
		Message:   fmt.Sprintf("flight is at %.2f%% occupancy (%s)", occupancy, tier),
	}, nil
}

// FrequentFlyers builds the classified passenger report: everyone with at
// least minFlights tickets, ordered by flight count descending, each
// assigned a tier. The result slice lives only for this call; the worker
// refreshes a cached copy periodically.
func (s *ReportService) FrequentFlyers(ctx context.Context, minFlights int) ([]domain.FrequentFlyer, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFrequentFlyers(ctx, minFlights); err == nil && cached != nil {
			return cached, nil
		}
	}

	return s.RefreshFrequentFlyers(ctx, minFlights)
}

// RefreshFrequentFlyers recomputes the report from storage and
// overwrites the cached copy. The worker calls this on its sweep.
func (s *ReportService) RefreshFrequentFlyers(ctx context.Context, minFlights int) ([]domain.FrequentFlyer, error) {
	counts, err := s.repo.PassengerFlightCounts(ctx, minFlights)
	if err != nil {
		return nil, err
	}

	flyers := make([]domain.FrequentFlyer, 0, len(counts))
	for _, c := range counts {
		flyers = append(flyers, domain.FrequentFlyer{
			PassengerID: c.PassengerID,
			FullName:    c.FullName,
			Flights:     c.Flights,
			Tier:        flyerTier(c.Flights),
		})
	}

	if s.cache != nil {
		_ = s.cache.SetFrequentFlyers(ctx, minFlights, flyers)
	}
	return flyers, nil
}

func (s *ReportService) RouteProfitability(ctx context.Context, originID, destinationID int64, windowDays int) (domain.RouteProfitability, error) {
	since := time.Now().AddDate(0, 0, -windowDays)
	totals, err := s.repo.RouteTotals(ctx, originID, destinationID, since)
	if err != nil {
		return domain.RouteProfitability{}, err
	}

	avg := occupancyPercent(totals.Tickets, totals.Capacity)

	return domain.RouteProfitability{
		OriginID:      originID,
		DestinationID: destinationID,
		WindowDays:    windowDays,
		TotalFlights:  totals.Flights,
		TotalCapacity: totals.Capacity,
		TotalTickets:  totals.Tickets,
		AvgOccupancy:  avg,
		Tier:          profitabilityTier(avg),
	}, nil
}

// occupancyPercent is tickets/capacity as a percentage rounded to two
// decimals. Capacity zero yields 0 rather than dividing. Values over 100
// are possible when tickets exceed capacity and are kept as-is.
func occupancyPercent(tickets, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return math.Round(float64(tickets)/float64(capacity)*100*100) / 100
}

// Tier boundaries are inclusive on the lower edge: exactly 95 is COMPLETE.
func demandTier(occupancy float64) domain.DemandTier {
	switch {
	case occupancy >= 95:
		return domain.DemandTierComplete
	case occupancy >= 80:
		return domain.DemandTierHigh
	case occupancy >= 50:
		return domain.DemandTierMedium
	case occupancy > 0:
		return domain.DemandTierLow
	default:
		return domain.DemandTierNoReservations
	}
}

func flyerTier(flights int) domain.FlyerTier {
	switch {
	case flights >= 20:
		return domain.FlyerTierPlatinum
	case flights >= 10:
		return domain.FlyerTierGold
	case flights >= 5:
		return domain.FlyerTierSilver
	default:
		return domain.FlyerTierBronze
	}
}

func profitabilityTier(avgOccupancy float64) domain.ProfitabilityTier {
	switch {
	case avgOccupancy >= 80:
		return domain.ProfitabilityHigh
	case avgOccupancy >= 60:
		return domain.ProfitabilityMedium
	case avgOccupancy >= 40:
		return domain.ProfitabilityLow
	default:
		return domain.ProfitabilityNotProfitable
	}
}

var _ ReportUseCase = (*ReportService)(nil)
