package entities

import "time"

// MirrorBooking is the customer-scoped copy of a booking, stored at
// customers/{customerId}/bookings/{id}.
type MirrorBooking struct {
	Booking
	MirroredAt time.Time `json:"mirroredAt"`
	LastSyncAt time.Time `json:"lastSyncAt"`
}

// NewMirror projects a master snapshot into its mirror, stamped at now.
func NewMirror(b Booking, now time.Time) MirrorBooking {
	b.AssignedCrews = crewList(b.AssignedCrews)
	b.ConfirmedCrews = crewList(b.ConfirmedCrews)
	return MirrorBooking{Booking: b, MirroredAt: now, LastSyncAt: now}
}
