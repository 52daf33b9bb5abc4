package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"
)

// IStatusSyncUseCase is the single path by which a status change reaches the
// customer mirror.
type IStatusSyncUseCase interface {
	SyncStatus(ctx context.Context, bookingID, customerID string, newStatus entities.AssignmentStatus, aux map[string]any) error
}

type StatusSyncUseCase struct {
	bookings interfaces.IBookingRepository
	mirrors  interfaces.IMirrorRepository
	mirror   IMirrorUseCase
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

var _ IStatusSyncUseCase = (*StatusSyncUseCase)(nil)

func NewStatusSyncUseCase(bookings interfaces.IBookingRepository, mirrors interfaces.IMirrorRepository, mirror IMirrorUseCase, log logger.Logger, m *metrics.Metrics) *StatusSyncUseCase {
	return &StatusSyncUseCase{bookings: bookings, mirrors: mirrors, mirror: mirror, log: log, metrics: m, now: time.Now}
}

// SyncStatus writes newStatus and every aux field to the mirror in one partial
// update. A missing mirror is first recreated from the master; if that fails
// nothing is written and ErrMirrorMissing is returned.
func (u *StatusSyncUseCase) SyncStatus(ctx context.Context, bookingID, customerID string, newStatus entities.AssignmentStatus, aux map[string]any) error {
	bookingID, err := trimID(bookingID, ErrInvalidBookingID)
	if err != nil {
		return err
	}
	if !newStatus.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	master, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		u.metrics.SyncTotal.WithLabelValues("error").Inc()
		return err
	}
	if master.ID == "" {
		u.metrics.SyncTotal.WithLabelValues("master_not_found").Inc()
		return ErrMasterNotFound
	}
	customerID, err = resolveCustomer(master, customerID)
	if err != nil {
		return err
	}

	mirror, err := u.mirrors.Get(ctx, customerID, bookingID)
	if err != nil {
		u.metrics.SyncTotal.WithLabelValues("error").Inc()
		return err
	}
	if mirror.ID == "" {
		if err := u.recreate(ctx, master, customerID); err != nil {
			return err
		}
	}

	fields := make(map[string]any, len(aux)+3)
	for k, v := range aux {
		fields[k] = v
	}
	now := u.now().UTC().Format(time.RFC3339Nano)
	fields["assignedStatus"] = string(newStatus)
	fields["updatedAt"] = now
	fields["lastSyncAt"] = now

	err = u.mirrors.Update(ctx, customerID, bookingID, fields)
	if errors.Is(err, interfaces.ErrDocumentNotFound) {
		// Deleted between the read and the write.
		if err := u.recreate(ctx, master, customerID); err != nil {
			return err
		}
		err = u.mirrors.Update(ctx, customerID, bookingID, fields)
	}
	if err != nil {
		u.metrics.SyncTotal.WithLabelValues("error").Inc()
		u.log.Error("[sync][usecase] mirror update failed", "booking_id", bookingID, "customer_id", customerID, "status", newStatus, "error", err)
		return err
	}

	u.metrics.SyncTotal.WithLabelValues("success").Inc()
	u.log.Debug("[sync][usecase] mirror synced", "booking_id", bookingID, "customer_id", customerID, "status", newStatus, "fields", len(aux))
	return nil
}

func (u *StatusSyncUseCase) recreate(ctx context.Context, master entities.Booking, customerID string) error {
	u.log.Warn("[sync][usecase] mirror missing, recreating from master", "booking_id", master.ID, "customer_id", customerID)
	if err := u.mirror.CreateMirror(ctx, master.ID, customerID, master); err != nil {
		u.metrics.SyncTotal.WithLabelValues("mirror_missing").Inc()
		return fmt.Errorf("%w: %v", ErrMirrorMissing, err)
	}
	return nil
}
