package entity

import (
	"fmt"
	"strings"
)

type FlightStatus string

const (
	FlightStatusScheduled FlightStatus = "Scheduled"
	FlightStatusDelayed   FlightStatus = "Delayed"
	FlightStatusCancelled FlightStatus = "Cancelled"
)

// Default cabin capacities, restored on rollover
const (
	TotalSeatCapacity    = 242
	PlatinumSeatCapacity = 8
	BusinessSeatCapacity = 18
	EconomySeatCapacity  = 216
)

// DefaultSeatPrice applies to any cabin class added without an explicit price.
const DefaultSeatPrice = 9000

func ValidFlightStatus(s string) bool {
	switch FlightStatus(s) {
	case FlightStatusScheduled, FlightStatusDelayed, FlightStatusCancelled:
		return true
	}
	return false
}

type Flight struct {
	FlightNumber string       `db:"flight_number"`
	Source       string       `db:"source"`
	Destination  string       `db:"destination"`
	Date         string       `db:"date"`       // 2006-01-02
	StartTime    string       `db:"start_time"` // 15:04
	EndTime      string       `db:"end_time"`   // 15:04
	TotalSeats   int          `db:"total_seats"`
	PSeats       int          `db:"p_seats"`
	BSeats       int          `db:"b_seats"`
	ESeats       int          `db:"e_seats"`
	BookedSeats  []string     `db:"booked_seats"`
	BookingIDs   []string     `db:"booking_ids"`
	PPrice       float64      `db:"p_price"`
	BPrice       float64      `db:"b_price"`
	EPrice       float64      `db:"e_price"`
	Status       FlightStatus `db:"status"`
}

type SeatClass string

const (
	SeatClassPlatinum SeatClass = "platinum"
	SeatClassBusiness SeatClass = "business"
	SeatClassEconomy  SeatClass = "economy"
	SeatClassUnknown  SeatClass = ""
)

// ClassifySeat maps a seat code to its cabin class by prefix (p-, b-, e-).
func ClassifySeat(code string) SeatClass {
	switch {
	case strings.HasPrefix(code, "p-"):
		return SeatClassPlatinum
	case strings.HasPrefix(code, "b-"):
		return SeatClassBusiness
	case strings.HasPrefix(code, "e-"):
		return SeatClassEconomy
	default:
		return SeatClassUnknown
	}
}

// SeatCount holds per-class seat totals for one allocation or release.
type SeatCount struct {
	Platinum int
	Business int
	Economy  int
}

func (c SeatCount) Total() int {
	return c.Platinum + c.Business + c.Economy
}

// CountSeatsByClass tallies seat codes per cabin class. Codes with an
// unrecognized prefix would desynchronize total_seats from the class
// counters, so they are returned separately for the caller to reject.
func CountSeatsByClass(codes []string) (SeatCount, []string) {
	var count SeatCount
	var unknown []string

	for _, code := range codes {
		switch ClassifySeat(code) {
		case SeatClassPlatinum:
			count.Platinum++
		case SeatClassBusiness:
			count.Business++
		case SeatClassEconomy:
			count.Economy++
		default:
			unknown = append(unknown, code)
		}
	}

	return count, unknown
}

// ConflictingSeats returns the requested codes already present in BookedSeats.
func (f *Flight) ConflictingSeats(requested []string) []string {
	booked := make(map[string]struct{}, len(f.BookedSeats))
	for _, s := range f.BookedSeats {
		booked[s] = struct{}{}
	}

	var conflicts []string
	for _, s := range requested {
		if _, ok := booked[s]; ok {
			conflicts = append(conflicts, s)
		}
	}
	return conflicts
}

// HasCapacityFor reports whether the remaining class counters cover the count.
func (f *Flight) HasCapacityFor(count SeatCount) bool {
	return f.PSeats >= count.Platinum && f.BSeats >= count.Business && f.ESeats >= count.Economy
}

func (f *Flight) Route() string {
	return fmt.Sprintf("%s -> %s", f.Source, f.Destination)
}
