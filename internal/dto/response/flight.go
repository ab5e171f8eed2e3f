package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type FlightResponse struct {
	FlightID   string  `json:"flightId"`
	From       string  `json:"from"`
	To         string  `json:"to"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	PPrice     float64 `json:"p_price"`
	BPrice     float64 `json:"b_price"`
	EPrice     float64 `json:"e_price"`
	Status     string  `json:"status"`
	TotalSeats int     `json:"total_seats"`
	PSeats     int     `json:"p_seats"`
	BSeats     int     `json:"b_seats"`
	ESeats     int     `json:"e_seats"`
}

// FlightDetailResponse adds the allocation map for admin and seat-map views.
type FlightDetailResponse struct {
	FlightResponse
	Date        string   `json:"date"`
	BookedSeats []string `json:"bookedSeats"`
}

type DashboardStatsResponse struct {
	ActiveFlights   int `json:"activeFlights"`
	PassengersToday int `json:"passengersToday"`
}

func FlightToResponse(f *entity.Flight) FlightResponse {
	return FlightResponse{
		FlightID:   f.FlightNumber,
		From:       f.Source,
		To:         f.Destination,
		StartTime:  combineDateTime(f.Date, f.StartTime),
		EndTime:    combineDateTime(f.Date, f.EndTime),
		PPrice:     f.PPrice,
		BPrice:     f.BPrice,
		EPrice:     f.EPrice,
		Status:     string(f.Status),
		TotalSeats: f.TotalSeats,
		PSeats:     f.PSeats,
		BSeats:     f.BSeats,
		ESeats:     f.ESeats,
	}
}

func FlightsToResponses(flights []*entity.Flight) []FlightResponse {
	responses := make([]FlightResponse, 0, len(flights))
	for _, f := range flights {
		responses = append(responses, FlightToResponse(f))
	}
	return responses
}

func FlightToDetailResponse(f *entity.Flight) FlightDetailResponse {
	bookedSeats := f.BookedSeats
	if bookedSeats == nil {
		bookedSeats = []string{}
	}
	return FlightDetailResponse{
		FlightResponse: FlightToResponse(f),
		Date:           f.Date,
		BookedSeats:    bookedSeats,
	}
}

// combineDateTime joins a stored date and HH:MM time back into RFC3339.
func combineDateTime(date, clock string) string {
	t, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		return date + "T" + clock
	}
	return t.Format(time.RFC3339)
}
