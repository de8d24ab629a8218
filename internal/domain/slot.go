package domain

import "github.com/pr-poehali-dev/booking-site-hazard/pkg/types"

// OccupancyStatus is the derived state of a (quest, date, slot) triple
type OccupancyStatus string

const (
	OccupancyFree      OccupancyStatus = "free"
	OccupancyRequested OccupancyStatus = "requested"
	OccupancyConfirmed OccupancyStatus = "confirmed"
)

// Occupancy is Free, Requested(Requests) or Confirmed.
// Requests is the number of pending requests and is kept for Confirmed slots too,
// so the operator still sees how many visitors competed for it.
type Occupancy struct {
	Status   OccupancyStatus
	Requests int
}

// Free returns the Free occupancy.
func Free() Occupancy {
	return Occupancy{Status: OccupancyFree}
}

// Requested returns Requested(n).
func Requested(n int) Occupancy {
	return Occupancy{Status: OccupancyRequested, Requests: n}
}

// Confirmed returns the Confirmed occupancy with the coexisting request count.
func Confirmed(requests int) Occupancy {
	return Occupancy{Status: OccupancyConfirmed, Requests: requests}
}

// IsFree returns true if nobody requested or booked the slot
func (o Occupancy) IsFree() bool {
	return o.Status == OccupancyFree
}

// IsConfirmed returns true if the operator booked the slot
func (o Occupancy) IsConfirmed() bool {
	return o.Status == OccupancyConfirmed
}

// SlotState is one entry of the slot list for a date
type SlotState struct {
	Slot      types.TimeString
	Occupancy Occupancy
	IsPast    bool
}

// Selectable returns true if the slot may enter the booking workflow.
// Requested slots stay selectable: competing requests are allowed.
func (s SlotState) Selectable() bool {
	return !s.IsPast && !s.Occupancy.IsConfirmed()
}

// DateSaturation summarizes how many slots of a date are taken.
// It is advisory: a fully booked date never rejects new requests.
type DateSaturation struct {
	OccupiedCount int
	TotalSlots    int
	FullyBooked   bool
}

// NewDateSaturation builds the saturation for occupied non-free slots out of total.
func NewDateSaturation(occupied, total int) DateSaturation {
	return DateSaturation{
		OccupiedCount: occupied,
		TotalSlots:    total,
		FullyBooked:   occupied >= total,
	}
}

// Rate returns the occupied share in percent (0-100)
func (s DateSaturation) Rate() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.OccupiedCount) / float64(s.TotalSlots) * 100
}
