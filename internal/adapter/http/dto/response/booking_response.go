package response

import (
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase"
)

type BookingResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	Hours         int    `json:"hours"`
	Professionals int    `json:"professionals"`
	ServiceType   string `json:"service_type,omitempty"`
	Address       string `json:"address,omitempty"`
	ZoneID        string `json:"zone_id,omitempty"`
	Notes         string `json:"notes,omitempty"`

	AssignedTo             *string  `json:"assigned_to"`
	AssignedCrews          []string `json:"assigned_crews"`
	ConfirmedCrews         []string `json:"confirmed_crews"`
	ProfessionalsAssigned  int      `json:"professionals_assigned"`
	ProfessionalsConfirmed int      `json:"professionals_confirmed"`
	AssignedStatus         string   `json:"assigned_status"`

	TotalAmount   float64 `json:"total_amount"`
	DueBalance    float64 `json:"due_balance"`
	PaymentStatus string  `json:"payment_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	var assignedTo *string
	if b.AssignedTo != "" {
		v := b.AssignedTo
		assignedTo = &v
	}
	return BookingResponse{
		ID:                     b.ID,
		CustomerID:             b.CustomerID,
		Date:                   b.Date,
		StartTime:              b.StartTime,
		EndTime:                b.EndTime,
		Hours:                  b.Hours,
		Professionals:          b.Professionals,
		ServiceType:            b.ServiceType,
		Address:                b.Address,
		ZoneID:                 b.ZoneID,
		Notes:                  b.Notes,
		AssignedTo:             assignedTo,
		AssignedCrews:          nonNil(b.AssignedCrews),
		ConfirmedCrews:         nonNil(b.ConfirmedCrews),
		ProfessionalsAssigned:  b.ProfessionalsAssigned,
		ProfessionalsConfirmed: b.ProfessionalsConfirmed,
		AssignedStatus:         string(b.AssignedStatus),
		TotalAmount:            b.TotalAmount,
		DueBalance:             b.DueBalance,
		PaymentStatus:          string(b.PaymentStatus),
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
}

// TransitionResponse is returned by every mutating booking route. Warnings
// lists the mirror or ledger legs that failed after the master write.
type TransitionResponse struct {
	Booking  BookingResponse `json:"booking"`
	Warnings []string        `json:"warnings,omitempty"`
}

func FromTransitionResult(r usecase.TransitionResult) TransitionResponse {
	return TransitionResponse{Booking: FromBooking(r.Booking), Warnings: r.Warnings}
}

type CustomerBookingResponse struct {
	BookingResponse
	MirroredAt time.Time `json:"mirrored_at"`
	LastSyncAt time.Time `json:"last_sync_at"`
}

func FromMirrorBookings(mirrors []entities.MirrorBooking) []CustomerBookingResponse {
	out := make([]CustomerBookingResponse, 0, len(mirrors))
	for _, m := range mirrors {
		out = append(out, CustomerBookingResponse{
			BookingResponse: FromBooking(m.Booking),
			MirroredAt:      m.MirroredAt,
			LastSyncAt:      m.LastSyncAt,
		})
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
