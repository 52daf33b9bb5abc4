package usecase

import (
	"context"
	"strings"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"
)

// IMirrorUseCase owns the customer-scoped copy of each booking.
type IMirrorUseCase interface {
	CreateMirror(ctx context.Context, bookingID, customerID string, snapshot entities.Booking) error
	DeleteMirror(ctx context.Context, bookingID, customerID string) error
	RepairMirror(ctx context.Context, bookingID, customerID string) (entities.MirrorBooking, error)
}

type MirrorUseCase struct {
	bookings interfaces.IBookingRepository
	mirrors  interfaces.IMirrorRepository
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

var _ IMirrorUseCase = (*MirrorUseCase)(nil)

func NewMirrorUseCase(bookings interfaces.IBookingRepository, mirrors interfaces.IMirrorRepository, log logger.Logger, m *metrics.Metrics) *MirrorUseCase {
	return &MirrorUseCase{bookings: bookings, mirrors: mirrors, log: log, metrics: m, now: time.Now}
}

// CreateMirror overwrites the mirror with the snapshot. Callers log a failure
// and carry on; the master is never rolled back.
func (u *MirrorUseCase) CreateMirror(ctx context.Context, bookingID, customerID string, snapshot entities.Booking) error {
	_, err := u.writeMirror(ctx, bookingID, customerID, snapshot)
	return err
}

func (u *MirrorUseCase) writeMirror(ctx context.Context, bookingID, customerID string, snapshot entities.Booking) (entities.MirrorBooking, error) {
	bookingID, err := trimID(bookingID, ErrInvalidBookingID)
	if err != nil {
		return entities.MirrorBooking{}, err
	}
	customerID, err = trimID(customerID, ErrInvalidCustomerID)
	if err != nil {
		return entities.MirrorBooking{}, err
	}

	m := entities.NewMirror(snapshot, u.now().UTC())
	m.ID = bookingID
	m.CustomerID = customerID
	if err := u.mirrors.Put(ctx, m); err != nil {
		u.log.Warn("[mirror][usecase] create failed", "booking_id", bookingID, "customer_id", customerID, "error", err)
		return entities.MirrorBooking{}, err
	}
	u.log.Debug("[mirror][usecase] mirror written", "booking_id", bookingID, "customer_id", customerID)
	return m, nil
}

// DeleteMirror removes the mirror; an absent mirror is not an error.
func (u *MirrorUseCase) DeleteMirror(ctx context.Context, bookingID, customerID string) error {
	bookingID, err := trimID(bookingID, ErrInvalidBookingID)
	if err != nil {
		return err
	}
	customerID, err = trimID(customerID, ErrInvalidCustomerID)
	if err != nil {
		return err
	}
	if err := u.mirrors.Delete(ctx, customerID, bookingID); err != nil {
		u.log.Warn("[mirror][usecase] delete failed", "booking_id", bookingID, "customer_id", customerID, "error", err)
		return err
	}
	return nil
}

// RepairMirror recreates the mirror from the current master. An empty
// customerID resolves to the master's owner.
func (u *MirrorUseCase) RepairMirror(ctx context.Context, bookingID, customerID string) (entities.MirrorBooking, error) {
	bookingID, err := trimID(bookingID, ErrInvalidBookingID)
	if err != nil {
		return entities.MirrorBooking{}, err
	}
	master, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.MirrorBooking{}, err
	}
	if master.ID == "" {
		u.metrics.MirrorRepairs.WithLabelValues("master_not_found").Inc()
		return entities.MirrorBooking{}, ErrMasterNotFound
	}
	customerID, err = resolveCustomer(master, customerID)
	if err != nil {
		return entities.MirrorBooking{}, err
	}
	return u.repairFrom(ctx, master, customerID)
}

func (u *MirrorUseCase) repairFrom(ctx context.Context, master entities.Booking, customerID string) (entities.MirrorBooking, error) {
	m, err := u.writeMirror(ctx, master.ID, customerID, master)
	if err != nil {
		u.metrics.MirrorRepairs.WithLabelValues("failure").Inc()
		return entities.MirrorBooking{}, err
	}
	u.metrics.MirrorRepairs.WithLabelValues("success").Inc()
	u.log.Info("[mirror][usecase] mirror repaired", "booking_id", master.ID, "customer_id", customerID, "status", master.AssignedStatus)
	return m, nil
}

// resolveCustomer applies the customerId == owner rule: empty means the
// master's customer, anything else must match it.
func resolveCustomer(master entities.Booking, customerID string) (string, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		if master.CustomerID == "" {
			return "", ErrInvalidCustomerID
		}
		return master.CustomerID, nil
	}
	if master.CustomerID != "" && customerID != master.CustomerID {
		return "", preconditionf("customer %s does not own booking %s", customerID, master.ID)
	}
	return customerID, nil
}
