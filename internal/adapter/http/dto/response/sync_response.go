package response

import (
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase"
)

type ValidationResponse struct {
	BookingID    string   `json:"booking_id"`
	CustomerID   string   `json:"customer_id"`
	InSync       bool     `json:"in_sync"`
	Reason       string   `json:"reason"`
	MasterStatus string   `json:"master_status"`
	MirrorStatus string   `json:"mirror_status,omitempty"`
	DriftFields  []string `json:"drift_fields"`
}

func FromValidationResult(v usecase.ValidationResult) ValidationResponse {
	return ValidationResponse{
		BookingID:    v.BookingID,
		CustomerID:   v.CustomerID,
		InSync:       v.InSync,
		Reason:       v.Reason,
		MasterStatus: string(v.MasterStatus),
		MirrorStatus: string(v.MirrorStatus),
		DriftFields:  nonNil(v.DriftFields),
	}
}

type SyncReportResponse struct {
	BookingID    string     `json:"booking_id"`
	CustomerID   string     `json:"customer_id"`
	MasterStatus string     `json:"master_status"`
	MirrorStatus string     `json:"mirror_status,omitempty"`
	MirrorExists bool       `json:"mirror_exists"`
	InSync       bool       `json:"in_sync"`
	MirroredAt   *time.Time `json:"mirrored_at,omitempty"`
	LastSyncAt   *time.Time `json:"last_sync_at,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromSyncReport(r usecase.SyncReport) SyncReportResponse {
	return SyncReportResponse{
		BookingID:    r.BookingID,
		CustomerID:   r.CustomerID,
		MasterStatus: string(r.MasterStatus),
		MirrorStatus: string(r.MirrorStatus),
		MirrorExists: r.MirrorExists,
		InSync:       r.InSync,
		MirroredAt:   r.MirroredAt,
		LastSyncAt:   r.LastSyncAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// RepairResponse is the mirror as rewritten from the master record.
type RepairResponse struct {
	Mirror CustomerBookingResponse `json:"mirror"`
}

func FromRepairedMirror(m entities.MirrorBooking) RepairResponse {
	return RepairResponse{Mirror: FromMirrorBookings([]entities.MirrorBooking{m})[0]}
}
