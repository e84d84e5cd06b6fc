package domain

// FlightStats aggregates the headcount figures of a single flight.
// Occupancy is a percentage rounded to two decimals; a missing flight
// or a zero capacity yields the zero value rather than an error.
type FlightStats struct {
	FlightID   int64   `json:"flight_id"`
	Passengers int     `json:"passengers"`
	Baggage    int     `json:"baggage"`
	CheckedIn  int     `json:"checked_in"`
	Occupancy  float64 `json:"occupancy"`
}

type DemandTier string

const (
	DemandTierComplete       DemandTier = "COMPLETE"
	DemandTierHigh           DemandTier = "HIGH_DEMAND"
	DemandTierMedium         DemandTier = "MEDIUM_DEMAND"
	DemandTierLow            DemandTier = "LOW_DEMAND"
	DemandTierNoReservations DemandTier = "NO_RESERVATIONS"
)

type FlightClassification struct {
	FlightID  int64      `json:"flight_id"`
	Occupancy float64    `json:"occupancy"`
	Tier      DemandTier `json:"tier"`
	Message   string     `json:"message"`
}

type FlyerTier string

const (
	FlyerTierPlatinum FlyerTier = "PLATINUM"
	FlyerTierGold     FlyerTier = "GOLD"
	FlyerTierSilver   FlyerTier = "SILVER"
	FlyerTierBronze   FlyerTier = "BRONZE"
)

type FrequentFlyer struct {
	PassengerID int64     `json:"passenger_id"`
	FullName    string    `json:"full_name"`
	Flights     int       `json:"flights"`
	Tier        FlyerTier `json:"tier"`
}

type ProfitabilityTier string

const (
	ProfitabilityHigh          ProfitabilityTier = "HIGH"
	ProfitabilityMedium        ProfitabilityTier = "MEDIUM"
	ProfitabilityLow           ProfitabilityTier = "LOW"
	ProfitabilityNotProfitable ProfitabilityTier = "NOT_PROFITABLE"
)

type RouteProfitability struct {
	OriginID      int64             `json:"origin_id"`
	DestinationID int64             `json:"destination_id"`
	WindowDays    int               `json:"window_days"`
	TotalFlights  int               `json:"total_flights"`
	TotalCapacity int               `json:"total_capacity"`
	TotalTickets  int               `json:"total_tickets"`
	AvgOccupancy  float64           `json:"avg_occupancy"`
	Tier          ProfitabilityTier `json:"tier"`
}

type RegistrationStatus string

const (
	RegistrationCreated   RegistrationStatus = "CREATED"
	RegistrationDuplicate RegistrationStatus = "DUPLICATE"
	RegistrationFailed    RegistrationStatus = "FAILED"
)

// RegistrationResult is the outcome of registering a flight. FlightID
// is nil unless Status is CREATED.
type RegistrationResult struct {
	Status   RegistrationStatus `json:"status"`
	FlightID *int64             `json:"flight_id"`
	Message  string             `json:"message"`
}
