package request

// AddFlightRequest carries RFC3339 start/end instants; the flight date and
// HH:MM times are derived from them.
type AddFlightRequest struct {
	FlightID  string  `json:"flightId" validate:"required"`
	From      string  `json:"from" validate:"required"`
	To        string  `json:"to" validate:"required"`
	StartTime string  `json:"startTime" validate:"required"`
	EndTime   string  `json:"endTime" validate:"required"`
	PPrice    float64 `json:"p_price" validate:"gte=0"`
	BPrice    float64 `json:"b_price" validate:"gte=0"`
	EPrice    float64 `json:"e_price" validate:"gte=0"`
	Status    string  `json:"status"`
}

type UpdateFlightRequest struct {
	From      string  `json:"from" validate:"required"`
	To        string  `json:"to" validate:"required"`
	StartTime string  `json:"startTime" validate:"required"`
	EndTime   string  `json:"endTime" validate:"required"`
	PPrice    float64 `json:"p_price" validate:"gte=0"`
	BPrice    float64 `json:"b_price" validate:"gte=0"`
	EPrice    float64 `json:"e_price" validate:"gte=0"`
	Status    string  `json:"status" validate:"required"`
}

type UpdateFlightSeatsRequest struct {
	BookedSeats []string `json:"bookedSeats" validate:"required,min=1,dive,required"`
}

// SearchFlightsRequest is bound from query parameters.
type SearchFlightsRequest struct {
	FromCity      string `validate:"required"`
	ToCity        string `validate:"required"`
	DepartureDate string
	StartTime     string
	Passengers    int
	Class         string
}
