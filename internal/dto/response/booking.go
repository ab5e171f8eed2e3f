package response

import "flight-booking/internal/data/entity"

type BookingResponse struct {
	BookingID      string             `json:"bookingId"`
	Username       string             `json:"username,omitempty"`
	FlightNumber   string             `json:"flightNumber"`
	Date           string             `json:"date"`
	From           string             `json:"from"`
	To             string             `json:"to"`
	DepartureTime  string             `json:"departureTime"`
	ArrivalTime    string             `json:"arrivalTime"`
	GeneralInfo    entity.GeneralInfo `json:"generalinfo"`
	Passengers     []entity.Passenger `json:"passengers"`
	AllocatedSeats []string           `json:"allocatedSeats"`
	TotalPrice     float64            `json:"totalPrice"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	seats := b.AllocatedSeats
	if seats == nil {
		seats = []string{}
	}
	return BookingResponse{
		BookingID:      b.BookingID,
		Username:       b.Username,
		FlightNumber:   b.FlightNumber,
		Date:           b.Date,
		From:           b.From,
		To:             b.To,
		DepartureTime:  b.DepartureTime,
		ArrivalTime:    b.ArrivalTime,
		GeneralInfo:    b.GeneralInfo,
		Passengers:     b.Passengers,
		AllocatedSeats: seats,
		TotalPrice:     b.TotalPrice,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		responses[i] = BookingToResponse(b)
	}
	return responses
}
