package request

type PassengerPayload struct {
	FullName       string `json:"fullName" validate:"required"`
	PassportNumber string `json:"passportNumber"`
	DOB            string `json:"dob"`
	SeatAllocation string `json:"seatAllocation"`
}

type GeneralInfoPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// CreateBookingRequest records a booking whose seats were already allocated
// through the seat-update endpoint. BookingID is generated when absent.
type CreateBookingRequest struct {
	BookingID      string             `json:"bookingId"`
	Username       string             `json:"username" validate:"required"`
	FlightNumber   string             `json:"flightNumber" validate:"required"`
	Date           string             `json:"date" validate:"required"`
	From           string             `json:"from" validate:"required"`
	To             string             `json:"to" validate:"required"`
	DepartureTime  string             `json:"departureTime" validate:"required"`
	ArrivalTime    string             `json:"arrivalTime" validate:"required"`
	GeneralInfo    GeneralInfoPayload `json:"generalinfo"`
	Passengers     []PassengerPayload `json:"passengers" validate:"required,min=1,dive"`
	AllocatedSeats []string           `json:"allocatedSeats" validate:"required,min=1,dive,required"`
	TotalPrice     float64            `json:"totalPrice" validate:"gte=0"`
}

type BookingListRequest struct {
	Username string `json:"username" validate:"required"`
}
