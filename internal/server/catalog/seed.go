package catalog

import "context"

var seedTickets = []Ticket{
	{
		OperatorName: "Sajha Yatayat", BussName: "Sajha Deluxe", BussNo: "Ba 2 Kha 4521", VehicleType: "Deluxe",
		From: "Kathmandu", To: "Pokhara", Date: "2025-01-15", DepartureTime: "07:00", ArrivalTime: "14:00",
		Price: 1200, TotalSeats: 36, TotalTimeTaken: "7h", Shift: "day",
	},
	{
		OperatorName: "Greenline", BussName: "Greenline AC", BussNo: "Ba 3 Kha 1180", VehicleType: "AC",
		From: "Kathmandu", To: "Chitwan", Date: "2025-01-16", DepartureTime: "08:30", ArrivalTime: "13:30",
		Price: 1500, TotalSeats: 30, TotalTimeTaken: "5h", Shift: "day",
	},
	{
		OperatorName: "Baba Travels", BussName: "Night Rider", BussNo: "Lu 1 Kha 3021", VehicleType: "Sofa",
		From: "Pokhara", To: "Lumbini", Date: "2025-01-16", DepartureTime: "19:00", ArrivalTime: "03:30",
		Price: 1800, TotalSeats: 36, TotalTimeTaken: "8h 30m", Shift: "night",
	},
}

// Seed fills the catalog with sample tickets and one booking on the first.
func (s *Service) Seed(ctx context.Context) error {
	var first Ticket
	for i, t := range seedTickets {
		t = s.AddTicket(ctx, t)
		if i == 0 {
			first = t
		}
	}
	_, err := s.Book(ctx, first.ID, "", []string{"A1", "A2"}, 2400)
	return err
}
