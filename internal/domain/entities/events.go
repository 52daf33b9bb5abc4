package entities

import "time"

// Routing keys for booking notifications.
const (
	RKBookingCreated   = "booking.created"
	RKBookingConfirmed = "booking.confirmed"
	RKBookingCancelled = "booking.cancelled"
	RKBookingDeleted   = "booking.deleted"
	RKPaymentReceived  = "payment.received"
)

// BookingEvent is the payload published on status-changing events.
type BookingEvent struct {
	BookingID      string           `json:"bookingId"`
	CustomerID     string           `json:"customerId"`
	AssignedStatus AssignmentStatus `json:"assignedStatus,omitempty"`
	CrewIDs        []string         `json:"crewIds,omitempty"`
	Amount         float64          `json:"amount,omitempty"`
	OccurredAt     time.Time        `json:"occurredAt"`
}

func NewBookingEvent(b Booking, now time.Time) BookingEvent {
	return BookingEvent{
		BookingID:      b.ID,
		CustomerID:     b.CustomerID,
		AssignedStatus: b.AssignedStatus,
		CrewIDs:        crewList(b.AssignedCrews),
		OccurredAt:     now,
	}
}
