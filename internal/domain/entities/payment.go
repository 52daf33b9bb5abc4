package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// Payment is a collected amount against a booking, stored at
// bookings/{bookingId}/payments/{id}.
//
// ProviderPayloadRaw keeps the gateway response body for audit; ProviderPayload
// is its parsed form.
type Payment struct {
	ID         string        `json:"id"`
	BookingID  string        `json:"bookingId"`
	CustomerID string        `json:"customerId"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage `json:"providerPayloadRaw,omitempty"`
	ProviderPayload    map[string]any  `json:"providerPayload,omitempty"`
}
