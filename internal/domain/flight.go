package domain

import "time"

type FlightStatus string

const (
	FlightStatusCompleted FlightStatus = "COMPLETED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
	FlightStatusInFlight  FlightStatus = "IN_FLIGHT"
	// FlightStatusScheduled is the zero value: a flight with no recorded outcome yet.
	FlightStatusScheduled FlightStatus = ""
)

type Flight struct {
	ID            int64
	Number        string
	Date          time.Time
	DepartureTime time.Time
	ArrivalTime   time.Time
	AirlineID     int64
	OriginID      int64
	DestinationID int64
	AircraftID    int64
	Capacity      int
	Status        FlightStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FlightSummary is a search-result row: a flight joined with its
// endpoint airports.
type FlightSummary struct {
	ID            int64        `json:"id"`
	Number        string       `json:"number"`
	Date          time.Time    `json:"date"`
	DepartureTime time.Time    `json:"departure_time"`
	ArrivalTime   time.Time    `json:"arrival_time"`
	Origin        Airport      `json:"origin"`
	Destination   Airport      `json:"destination"`
	Status        FlightStatus `json:"status"`
}
