package usecase

//go:generate mockgen -source=booking_usecase.go -destination=../adapter/http/handlers/mocks/booking_usecase_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"
)

// BookingChanges is a partial edit of a booking's schedule and pricing.
// Nil fields are left untouched.
type BookingChanges struct {
	Date          *string
	StartTime     *string
	EndTime       *string
	Hours         *int
	Professionals *int
	TotalAmount   *float64
	ServiceType   *string
	Address       *string
	ZoneID        *string
	Notes         *string
}

// IBookingUseCase covers the booking lifecycle around the assignment state
// machine: creation, reads, edits and deletion.
type IBookingUseCase interface {
	CreateBooking(ctx context.Context, in entities.Booking) (TransitionResult, error)
	GetBooking(ctx context.Context, bookingID string) (entities.Booking, error)
	ListCustomerBookings(ctx context.Context, customerID string) ([]entities.MirrorBooking, error)
	EditBooking(ctx context.Context, bookingID string, changes BookingChanges) (TransitionResult, error)
	DeleteBooking(ctx context.Context, bookingID string) (TransitionResult, error)
}

type BookingUseCase struct {
	bookings interfaces.IBookingRepository
	mirrors  interfaces.IMirrorRepository
	mirror   IMirrorUseCase
	ledger   ICrewLedgerUseCase
	prop     propagator
	log      logger.Logger
	now      func() time.Time
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(
	bookings interfaces.IBookingRepository,
	mirrors interfaces.IMirrorRepository,
	mirror IMirrorUseCase,
	sync IStatusSyncUseCase,
	ledger ICrewLedgerUseCase,
	queue interfaces.IIntentQueue,
	notifier interfaces.INotifier,
	notifyTimeout time.Duration,
	log logger.Logger,
	m *metrics.Metrics,
) *BookingUseCase {
	return &BookingUseCase{
		bookings: bookings,
		mirrors:  mirrors,
		mirror:   mirror,
		ledger:   ledger,
		prop:     newPropagator(sync, queue, notifier, notifyTimeout, log, m),
		log:      log,
		now:      time.Now,
	}
}

// CreateBooking writes a new unassigned master and then its mirror. A mirror
// failure leaves the master in place and is reported as a warning.
func (u *BookingUseCase) CreateBooking(ctx context.Context, in entities.Booking) (TransitionResult, error) {
	customerID, err := trimID(in.CustomerID, ErrInvalidCustomerID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := validateBooking(in); err != nil {
		return TransitionResult{}, err
	}

	now := u.now().UTC()
	b := in
	b.ID = ""
	b.CustomerID = customerID
	b.AssignedTo = ""
	b.AssignedCrews = []string{}
	b.ConfirmedCrews = []string{}
	b.SyncCounts()
	b.AssignedStatus = entities.AssignmentStatusUnassigned
	b.DueBalance = b.TotalAmount
	b.PaymentStatus = entities.DerivePaymentState(b.TotalAmount, b.DueBalance)
	b.CreatedAt = now
	b.UpdatedAt = now

	created, err := u.bookings.Create(ctx, b)
	if err != nil {
		u.log.Error("[booking][usecase] master create failed", "customer_id", customerID, "error", err)
		return TransitionResult{}, err
	}

	var warnings []string
	if err := u.mirror.CreateMirror(ctx, created.ID, created.CustomerID, created); err != nil {
		u.prop.enqueue(ctx, entities.SyncIntent{
			Kind:       entities.IntentMirrorRepair,
			BookingID:  created.ID,
			CustomerID: created.CustomerID,
		})
		warnings = append(warnings, partialf("create mirror booking %s: %v", created.ID, err).Error())
	}

	u.prop.notify(ctx, entities.RKBookingCreated, entities.NewBookingEvent(created, now))
	u.log.Info("[booking][usecase] booking created", "booking_id", created.ID, "customer_id", created.CustomerID, "warnings", len(warnings))
	return TransitionResult{Booking: created, Warnings: warnings}, nil
}

func (u *BookingUseCase) GetBooking(ctx context.Context, bookingID string) (entities.Booking, error) {
	bookingID, err := trimID(bookingID, ErrInvalidBookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrMasterNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListCustomerBookings(ctx context.Context, customerID string) ([]entities.MirrorBooking, error) {
	customerID, err := trimID(customerID, ErrInvalidCustomerID)
	if err != nil {
		return nil, err
	}
	return u.mirrors.ListByCustomer(ctx, customerID)
}

// EditBooking applies schedule and pricing changes. The amount already paid is
// preserved when the total changes, and confirmed crews get their share delta.
func (u *BookingUseCase) EditBooking(ctx context.Context, bookingID string, changes BookingChanges) (TransitionResult, error) {
	before, err := u.GetBooking(ctx, bookingID)
	if err != nil {
		return TransitionResult{}, err
	}
	if before.AssignedStatus == entities.AssignmentStatusDrop {
		return TransitionResult{}, preconditionf("booking %s is dropped", before.ID)
	}

	b := before
	migrateLegacy(&b)
	changes.apply(&b)
	if err := validateBooking(b); err != nil {
		return TransitionResult{}, err
	}
	if len(b.AssignedCrews) > b.Professionals {
		return TransitionResult{}, preconditionf("booking %s has %d crews assigned, cannot reduce professionals to %d", b.ID, len(b.AssignedCrews), b.Professionals)
	}
	paid := before.TotalAmount - before.DueBalance
	if b.TotalAmount < paid {
		return TransitionResult{}, preconditionf("booking %s already collected %.2f, total cannot drop to %.2f", b.ID, paid, b.TotalAmount)
	}
	b.DueBalance = b.TotalAmount - paid
	b.PaymentStatus = entities.DerivePaymentState(b.TotalAmount, b.DueBalance)
	normalizeAssignment(&b)
	b.UpdatedAt = u.now().UTC()

	saved, err := u.bookings.Save(ctx, b)
	if err != nil {
		u.log.Error("[booking][usecase] master write failed", "booking_id", b.ID, "error", err)
		return TransitionResult{}, err
	}

	fields := saved.AssignmentFields()
	for k, v := range saved.FinancialFields() {
		fields[k] = v
	}
	for k, v := range scheduleFields(saved) {
		fields[k] = v
	}
	warnings := u.prop.syncMirror(ctx, saved, fields)
	warnings = append(warnings, warningsFrom(u.ledger.Recalculate(ctx, before, saved))...)

	u.log.Info("[booking][usecase] booking edited", "booking_id", saved.ID, "customer_id", saved.CustomerID,
		"status", saved.AssignedStatus, "total_amount", saved.TotalAmount, "warnings", len(warnings))
	return TransitionResult{Booking: saved, Warnings: warnings}, nil
}

// DeleteBooking removes the master, reverses every booked crew share and then
// deletes the mirror. The returned booking is the state before deletion.
func (u *BookingUseCase) DeleteBooking(ctx context.Context, bookingID string) (TransitionResult, error) {
	b, err := u.GetBooking(ctx, bookingID)
	if err != nil {
		return TransitionResult{}, err
	}
	if err := u.bookings.Delete(ctx, b.ID); err != nil {
		u.log.Error("[booking][usecase] master delete failed", "booking_id", b.ID, "error", err)
		return TransitionResult{}, err
	}

	var warnings []string
	if crews := b.LedgerCrews(); len(crews) > 0 {
		warnings = append(warnings, warningsFrom(u.ledger.ApplyShares(ctx, b, crews, -1))...)
	}
	if err := u.mirror.DeleteMirror(ctx, b.ID, b.CustomerID); err != nil {
		u.prop.enqueue(ctx, entities.SyncIntent{
			Kind:       entities.IntentMirrorDelete,
			BookingID:  b.ID,
			CustomerID: b.CustomerID,
		})
		warnings = append(warnings, partialf("delete mirror booking %s: %v", b.ID, err).Error())
	}

	u.prop.notify(ctx, entities.RKBookingDeleted, entities.NewBookingEvent(b, u.now().UTC()))
	u.log.Info("[booking][usecase] booking deleted", "booking_id", b.ID, "customer_id", b.CustomerID, "warnings", len(warnings))
	return TransitionResult{Booking: b, Warnings: warnings}, nil
}

func (c BookingChanges) apply(b *entities.Booking) {
	if c.Date != nil {
		b.Date = strings.TrimSpace(*c.Date)
	}
	if c.StartTime != nil {
		b.StartTime = strings.TrimSpace(*c.StartTime)
	}
	if c.EndTime != nil {
		b.EndTime = strings.TrimSpace(*c.EndTime)
	}
	if c.Hours != nil {
		b.Hours = *c.Hours
	}
	if c.Professionals != nil {
		b.Professionals = *c.Professionals
	}
	if c.TotalAmount != nil {
		b.TotalAmount = *c.TotalAmount
	}
	if c.ServiceType != nil {
		b.ServiceType = *c.ServiceType
	}
	if c.Address != nil {
		b.Address = *c.Address
	}
	if c.ZoneID != nil {
		b.ZoneID = *c.ZoneID
	}
	if c.Notes != nil {
		b.Notes = *c.Notes
	}
}

func validateBooking(b entities.Booking) error {
	switch {
	case strings.TrimSpace(b.Date) == "":
		return fmt.Errorf("%w: date is required", ErrInvalidBooking)
	case b.Hours < 0:
		return fmt.Errorf("%w: hours must be >= 0", ErrInvalidBooking)
	case b.Professionals < 1:
		return fmt.Errorf("%w: professionals must be >= 1", ErrInvalidBooking)
	case b.TotalAmount < 0:
		return fmt.Errorf("%w: totalAmount must be >= 0", ErrInvalidBooking)
	}
	return nil
}

func scheduleFields(b entities.Booking) map[string]any {
	return map[string]any{
		"date":          b.Date,
		"startTime":     b.StartTime,
		"endTime":       b.EndTime,
		"hours":         b.Hours,
		"professionals": b.Professionals,
		"serviceType":   b.ServiceType,
		"address":       b.Address,
		"zoneId":        b.ZoneID,
		"notes":         b.Notes,
	}
}
