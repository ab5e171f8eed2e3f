package entity

type GeneralInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type Passenger struct {
	FullName       string `json:"fullName"`
	PassportNumber string `json:"passportNumber"`
	DOB            string `json:"dob"`
	SeatAllocation string `json:"seatAllocation"`
}

type Booking struct {
	BookingID    string `db:"booking_id"`
	Username     string `db:"username"`
	FlightNumber string `db:"flight_number"`

	// Snapshot of the flight's route and timing, copied at creation and
	// rewritten when the flight itself is edited.
	Date          string `db:"date"`
	From          string `db:"from_city"`
	To            string `db:"to_city"`
	DepartureTime string `db:"departure_time"`
	ArrivalTime   string `db:"arrival_time"`

	GeneralInfo    GeneralInfo `db:"general_info"`
	Passengers     []Passenger `db:"passengers"`
	AllocatedSeats []string    `db:"allocated_seats"`
	TotalPrice     float64     `db:"total_price"`
}
