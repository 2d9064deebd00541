package models

import (
	"fmt"

	"github.com/2018dayanan/bus-booking-admin-panel/internal/common"
)

// Ticket is a scheduled bus trip as listed by the admin API. Dates and times
// are kept as the server formats them.
type Ticket struct {
	ID             string  `json:"_id,omitempty"`
	OperatorName   string  `json:"operatorName"`
	BussName       string  `json:"bussName"`
	BussNo         string  `json:"bussNo"`
	VehicleType    string  `json:"vehicleType"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	Date           string  `json:"date"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Price          float64 `json:"price"`
	TotalSeats     int     `json:"totalSeats"`
	TotalTimeTaken string  `json:"totalTimeTaken"`
	Shift          string  `json:"shift"`
}

// Route renders "from → to", with placeholders for missing ends.
func (t Ticket) Route() string {
	return fmt.Sprintf("%s → %s", orPlaceholder(t.From), orPlaceholder(t.To))
}

// Booking is a seat reservation against a ticket.
type Booking struct {
	ID            string   `json:"_id"`
	TicketID      string   `json:"ticketId"`
	Seats         []string `json:"seats"`
	Amount        int64    `json:"amount"`
	Status        string   `json:"status"`
	Gateway       string   `json:"gateway"`
	TransactionID string   `json:"transactionId"`
	BookedAt      string   `json:"bookedAt"`
}

func orPlaceholder(s string) string {
	if s == "" {
		return common.Placeholder
	}
	return s
}
