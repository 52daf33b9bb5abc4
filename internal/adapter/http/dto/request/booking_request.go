package request

import (
	"strings"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase"
)

// CreateBookingRequest is the payload for booking creation. Crew assignment is
// never accepted here; new bookings always start unassigned.
type CreateBookingRequest struct {
	CustomerID    string  `json:"customer_id" binding:"required"`
	Date          string  `json:"date" binding:"required"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	Hours         *int    `json:"hours" binding:"required"`
	Professionals int     `json:"professionals" binding:"required"`
	TotalAmount   float64 `json:"total_amount"`
	ServiceType   string  `json:"service_type"`
	Address       string  `json:"address"`
	ZoneID        string  `json:"zone_id"`
	Notes         string  `json:"notes"`
}

// ToEntity expects a bound request; Hours is a pointer so that zero passes
// the required check.
func (r CreateBookingRequest) ToEntity() entities.Booking {
	var hours int
	if r.Hours != nil {
		hours = *r.Hours
	}
	return entities.Booking{
		CustomerID:    strings.TrimSpace(r.CustomerID),
		Date:          strings.TrimSpace(r.Date),
		StartTime:     strings.TrimSpace(r.StartTime),
		EndTime:       strings.TrimSpace(r.EndTime),
		Hours:         hours,
		Professionals: r.Professionals,
		TotalAmount:   r.TotalAmount,
		ServiceType:   r.ServiceType,
		Address:       r.Address,
		ZoneID:        r.ZoneID,
		Notes:         r.Notes,
	}
}

// EditBookingRequest is a partial update; absent fields are left untouched.
type EditBookingRequest struct {
	Date          *string  `json:"date"`
	StartTime     *string  `json:"start_time"`
	EndTime       *string  `json:"end_time"`
	Hours         *int     `json:"hours"`
	Professionals *int     `json:"professionals"`
	TotalAmount   *float64 `json:"total_amount"`
	ServiceType   *string  `json:"service_type"`
	Address       *string  `json:"address"`
	ZoneID        *string  `json:"zone_id"`
	Notes         *string  `json:"notes"`
}

func (r EditBookingRequest) IsEmpty() bool {
	return r.Date == nil && r.StartTime == nil && r.EndTime == nil && r.Hours == nil &&
		r.Professionals == nil && r.TotalAmount == nil && r.ServiceType == nil &&
		r.Address == nil && r.ZoneID == nil && r.Notes == nil
}

func (r EditBookingRequest) ToChanges() usecase.BookingChanges {
	return usecase.BookingChanges{
		Date:          trimmed(r.Date),
		StartTime:     trimmed(r.StartTime),
		EndTime:       trimmed(r.EndTime),
		Hours:         hours,
		Professionals: r.Professionals,
		TotalAmount:   r.TotalAmount,
		ServiceType:   r.ServiceType,
		Address:       r.Address,
		ZoneID:        r.ZoneID,
		Notes:         r.Notes,
	}
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}
