package usecase

//go:generate mockgen -source=consistency_usecase.go -destination=../adapter/http/handlers/mocks/consistency_usecase_mock.go -package=mocks

import (
	"context"
	"slices"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"
)

// Drift reasons reported by Validate.
const (
	ReasonInSync         = "in_sync"
	ReasonMirrorMissing  = "mirror_missing"
	ReasonStatusMismatch = "status_mismatch"
)

// ValidationResult compares a master booking with its mirror. InSync only
// looks at the assignment status; DriftFields lists every other field that
// differs so operators can see partial drift.
type ValidationResult struct {
	BookingID    string                    `json:"bookingId"`
	CustomerID   string                    `json:"customerId"`
	InSync       bool                      `json:"inSync"`
	Reason       string                    `json:"reason"`
	MasterStatus entities.AssignmentStatus `json:"masterStatus"`
	MirrorStatus entities.AssignmentStatus `json:"mirrorStatus,omitempty"`
	DriftFields  []string                  `json:"driftFields,omitempty"`
}

// SyncReport is a read-only snapshot of both sides of a booking.
type SyncReport struct {
	BookingID    string                    `json:"bookingId"`
	CustomerID   string                    `json:"customerId"`
	MasterStatus entities.AssignmentStatus `json:"masterStatus"`
	MirrorStatus entities.AssignmentStatus `json:"mirrorStatus,omitempty"`
	MirrorExists bool                      `json:"mirrorExists"`
	InSync       bool                      `json:"inSync"`
	MirroredAt   *time.Time                `json:"mirroredAt,omitempty"`
	LastSyncAt   *time.Time                `json:"lastSyncAt,omitempty"`
	UpdatedAt    time.Time                 `json:"updatedAt"`
}

type IConsistencyUseCase interface {
	Validate(ctx context.Context, bookingID, customerID string) (ValidationResult, error)
	GetSyncStatus(ctx context.Context, bookingID, customerID string) (SyncReport, error)
	Repair(ctx context.Context, bookingID, customerID string) (entities.MirrorBooking, error)
}

type ConsistencyUseCase struct {
	bookings interfaces.IBookingRepository
	mirrors  interfaces.IMirrorRepository
	mirror   IMirrorUseCase
	log      logger.Logger
	metrics  *metrics.Metrics
}

var _ IConsistencyUseCase = (*ConsistencyUseCase)(nil)

func NewConsistencyUseCase(bookings interfaces.IBookingRepository, mirrors interfaces.IMirrorRepository, mirror IMirrorUseCase, log logger.Logger, m *metrics.Metrics) *ConsistencyUseCase {
	return &ConsistencyUseCase{bookings: bookings, mirrors: mirrors, mirror: mirror, log: log, metrics: m}
}

func (u *ConsistencyUseCase) Validate(ctx context.Context, bookingID, customerID string) (ValidationResult, error) {
	master, mirror, err := u.load(ctx, bookingID, customerID)
	if err != nil {
		return ValidationResult{}, err
	}

	res := ValidationResult{
		BookingID:    master.ID,
		CustomerID:   mirror.CustomerID,
		MasterStatus: master.AssignedStatus,
	}
	switch {
	case mirror.ID == "":
		res.Reason = ReasonMirrorMissing
	case mirror.AssignedStatus != master.AssignedStatus:
		res.Reason = ReasonStatusMismatch
		res.MirrorStatus = mirror.AssignedStatus
		res.DriftFields = driftFields(master, mirror.Booking)
	default:
		res.InSync = true
		res.Reason = ReasonInSync
		res.MirrorStatus = mirror.AssignedStatus
		res.DriftFields = driftFields(master, mirror.Booking)
	}

	if !res.InSync {
		u.metrics.DriftDetected.WithLabelValues(res.Reason).Inc()
		u.log.Warn("[consistency][usecase] drift detected",
			"booking_id", res.BookingID, "customer_id", res.CustomerID, "reason", res.Reason,
			"master_status", res.MasterStatus, "mirror_status", res.MirrorStatus)
	}
	return res, nil
}

func (u *ConsistencyUseCase) GetSyncStatus(ctx context.Context, bookingID, customerID string) (SyncReport, error) {
	master, mirror, err := u.load(ctx, bookingID, customerID)
	if err != nil {
		return SyncReport{}, err
	}
	rep := SyncReport{
		BookingID:    master.ID,
		CustomerID:   mirror.CustomerID,
		MasterStatus: master.AssignedStatus,
		UpdatedAt:    master.UpdatedAt,
	}
	if mirror.ID == "" {
		return rep, nil
	}
	rep.MirrorExists = true
	rep.MirrorStatus = mirror.AssignedStatus
	rep.InSync = mirror.AssignedStatus == master.AssignedStatus
	if !mirror.MirroredAt.IsZero() {
		t := mirror.MirroredAt
		rep.MirroredAt = &t
	}
	if !mirror.LastSyncAt.IsZero() {
		t := mirror.LastSyncAt
		rep.LastSyncAt = &t
	}
	return rep, nil
}

// Repair is idempotent: repeated calls converge on the same mirror content.
func (u *ConsistencyUseCase) Repair(ctx context.Context, bookingID, customerID string) (entities.MirrorBooking, error) {
	return u.mirror.RepairMirror(ctx, bookingID, customerID)
}

// load reads the master and its mirror. A missing mirror comes back as a
// zero value carrying only the resolved customer id.
func (u *ConsistencyUseCase) load(ctx context.Context, bookingID, customerID string) (entities.Booking, entities.MirrorBooking, error) {
	bookingID, err := trimID(bookingID, ErrInvalidBookingID)
	if err != nil {
		return entities.Booking{}, entities.MirrorBooking{}, err
	}
	master, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, entities.MirrorBooking{}, err
	}
	if master.ID == "" {
		return entities.Booking{}, entities.MirrorBooking{}, ErrMasterNotFound
	}
	customerID, err = resolveCustomer(master, customerID)
	if err != nil {
		return entities.Booking{}, entities.MirrorBooking{}, err
	}
	mirror, err := u.mirrors.Get(ctx, customerID, bookingID)
	if err != nil {
		return entities.Booking{}, entities.MirrorBooking{}, err
	}
	if mirror.ID == "" {
		mirror.CustomerID = customerID
	}
	return master, mirror, nil
}

// driftFields lists the synced fields whose mirror value differs from the master.
func driftFields(master, mirror entities.Booking) []string {
	var out []string
	check := func(name string, equal bool) {
		if !equal {
			out = append(out, name)
		}
	}
	check("assignedStatus", master.AssignedStatus == mirror.AssignedStatus)
	check("assignedTo", master.AssignedTo == mirror.AssignedTo)
	check("assignedCrews", slices.Equal(nonNil(master.AssignedCrews), nonNil(mirror.AssignedCrews)))
	check("confirmedCrews", slices.Equal(nonNil(master.ConfirmedCrews), nonNil(mirror.ConfirmedCrews)))
	check("professionalsAssigned", master.ProfessionalsAssigned == mirror.ProfessionalsAssigned)
	check("professionalsConfirmed", master.ProfessionalsConfirmed == mirror.ProfessionalsConfirmed)
	check("professionals", master.Professionals == mirror.Professionals)
	check("date", master.Date == mirror.Date)
	check("startTime", master.StartTime == mirror.StartTime)
	check("endTime", master.EndTime == mirror.EndTime)
	check("hours", master.Hours == mirror.Hours)
	check("totalAmount", master.TotalAmount == mirror.TotalAmount)
	check("dueBalance", master.DueBalance == mirror.DueBalance)
	check("paymentStatus", master.PaymentStatus == mirror.PaymentStatus)
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
