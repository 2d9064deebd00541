// Package catalog holds the tickets and bookings served by the stub API.
package catalog

type Ticket struct {
	ID             string  `json:"_id"`
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

type Booking struct {
	ID            string   `json:"_id"`
	TicketID      string   `json:"ticketId,omitempty"`
	UserID        string   `json:"userId,omitempty"`
	Seats         []string `json:"seats"`
	Amount        int64    `json:"amount"`
	Status        string   `json:"status"`
	Gateway       string   `json:"gateway,omitempty"`
	TransactionID string   `json:"transactionId,omitempty"`
	BookedAt      string   `json:"bookedAt"`
}

// Booking statuses.
const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
)
