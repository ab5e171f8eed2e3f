package request

type RequestCancellationRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	Reason    string `json:"reason"`
}

type ApproveCancellationRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
}

type RejectCancellationRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	Remarks   string `json:"remarks"`
}
