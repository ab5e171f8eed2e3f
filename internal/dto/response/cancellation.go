package response

import (
	"time"

	"flight-booking/internal/data/entity"
)

type CancellationResponse struct {
	BookingID   string     `json:"bookingId"`
	Status      string     `json:"status"`
	Remarks     string     `json:"remarks"`
	RequestedAt time.Time  `json:"requestedAt"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
}

// CancellationDetailResponse pairs a pending request with its booking for the
// staff review screen. Booking is nil when the record has gone missing.
type CancellationDetailResponse struct {
	CancellationResponse
	Booking *BookingResponse `json:"booking"`
}

func CancellationToResponse(c *entity.Cancellation) CancellationResponse {
	return CancellationResponse{
		BookingID:   c.BookingID,
		Status:      string(c.Status),
		Remarks:     c.Remarks,
		RequestedAt: c.RequestedAt,
		ApprovedAt:  c.ApprovedAt,
	}
}
