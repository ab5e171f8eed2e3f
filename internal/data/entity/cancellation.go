package entity

import "time"

type CancellationStatus string

// requested -> approved | rejected; both end states are terminal.
const (
	CancellationStatusRequested CancellationStatus = "requested"
	CancellationStatusApproved  CancellationStatus = "approved"
	CancellationStatusRejected  CancellationStatus = "rejected"
)

type Cancellation struct {
	BookingID   string             `db:"booking_id"`
	Status      CancellationStatus `db:"status"`
	Remarks     string             `db:"remarks"`
	RequestedAt time.Time          `db:"requested_at"`
	ApprovedAt  *time.Time         `db:"approved_at"`
}

// IsOpen reports whether the cancellation still awaits a staff decision.
func (c *Cancellation) IsOpen() bool {
	return c.Status == CancellationStatusRequested
}
