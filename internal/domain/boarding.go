package domain

import "time"

// BoardingRecord is one passenger boarded through a gate. State is
// fixed at "OK" on insert; the row is never updated afterwards.
type BoardingRecord struct {
	ID           int64     `json:"id"`
	FlightID     int64     `json:"flight_id"`
	TicketID     int64     `json:"ticket_id"`
	GateID       int64     `json:"gate_id"`
	BoardingTime time.Time `json:"boarding_time"`
	State        string    `json:"state"`
}
