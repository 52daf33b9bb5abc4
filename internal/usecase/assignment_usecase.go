package usecase

//go:generate mockgen -source=assignment_usecase.go -destination=../adapter/http/handlers/mocks/assignment_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"
)

// IAssignmentUseCase is the crew assignment state machine.
//
// Every operation validates before writing, saves the master, calls
// SyncStatus exactly once with the full crew-state delta, then adjusts
// ledgers. Failures after the master write come back as warnings.
type IAssignmentUseCase interface {
	AssignCrew(ctx context.Context, bookingID, crewID string) (TransitionResult, error)
	UnassignCrew(ctx context.Context, bookingID, crewID string) (TransitionResult, error)
	ConfirmCrew(ctx context.Context, bookingID, crewID string) (TransitionResult, error)
	UnconfirmCrew(ctx context.Context, bookingID, crewID string) (TransitionResult, error)
	MoveCrew(ctx context.Context, bookingID, fromCrewID, toCrewID string) (TransitionResult, error)
	ConfirmAll(ctx context.Context, bookingID string) (TransitionResult, error)
	MoveToUnassigned(ctx context.Context, bookingID string) (TransitionResult, error)
	DropBooking(ctx context.Context, bookingID string) (TransitionResult, error)
}

// ledgerPlan runs after the master write against the saved booking.
type ledgerPlan func(ctx context.Context, saved entities.Booking) error

type AssignmentUseCase struct {
	bookings interfaces.IBookingRepository
	ledger   ICrewLedgerUseCase
	prop     propagator
	log      logger.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

func NewAssignmentUseCase(
	bookings interfaces.IBookingRepository,
	sync IStatusSyncUseCase,
	ledger ICrewLedgerUseCase,
	queue interfaces.IIntentQueue,
	notifier interfaces.INotifier,
	notifyTimeout time.Duration,
	log logger.Logger,
	m *metrics.Metrics,
) *AssignmentUseCase {
	return &AssignmentUseCase{
		bookings: bookings,
		ledger:   ledger,
		prop:     newPropagator(sync, queue, notifier, notifyTimeout, log, m),
		log:      log,
		metrics:  m,
		now:      time.Now,
	}
}

func (u *AssignmentUseCase) AssignCrew(ctx context.Context, bookingID, crewID string) (TransitionResult, error) {
	crewID, err := trimID(crewID, ErrInvalidCrewID)
	if err != nil {
		return TransitionResult{}, err
	}
	return u.transition(ctx, entities.ActionAssign, bookingID, func(b *entities.Booking) (ledgerPlan, error) {
		if b.IsAssigned(crewID) {
			return nil, preconditionf("crew %s already assigned to booking %s", crewID, b.ID)
		}
		if len(b.AssignedCrews) >= b.Professionals {
			return nil, preconditionf("booking %s already has %d of %d professionals", b.ID, len(b.AssignedCrews), b.Professionals)
		}
		plan := u.dropStaleConfirmation(b, crewID)
		b.AssignedCrews = entities.AddCrew(b.AssignedCrews, crewID)
		return plan, nil
	})
}

func (u *AssignmentUseCase) UnassignCrew(ctx context.Context, bookingID, crewID string) (TransitionResult, error) {
	crewID, err := trimID(crewID, ErrInvalidCrewID)
	if err != nil {
		return TransitionResult{}, err
	}
	return u.transition(ctx, entities.ActionUnassign, bookingID, func(b *entities.Booking) (ledgerPlan, error) {
		if !b.IsAssigned(crewID) {
			return nil, preconditionf("crew %s is not assigned to booking %s", crewID, b.ID)
		}
		var plan ledgerPlan
		if b.IsConfirmed(crewID) {
			b.ConfirmedCrews = entities.RemoveCrew(b.ConfirmedCrews, crewID)
			plan = func(ctx context.Context, saved entities.Booking) error {
				return u.ledger.ApplyShare(ctx, saved, crewID, -1)
			}
		}
		b.AssignedCrews = entities.RemoveCrew(b.AssignedCrews, crewID)
		return plan, nil
	})
}

func (u *AssignmentUseCase) ConfirmCrew(ctx context.Context, bookingID, crewID string) (TransitionResult, error) {
	crewID, err := trimID(crewID, ErrInvalidCrewID)
	if err != nil {
		return TransitionResult{}, err
	}
	return u.transition(ctx, entities.ActionConfirm, bookingID, func(b *entities.Booking) (ledgerPlan, error) {
		if !b.IsAssigned(crewID) {
			return nil, preconditionf("crew %s is not assigned to booking %s", crewID, b.ID)
		}
		if b.IsConfirmed(crewID) {
			return nil, preconditionf("crew %s already confirmed on booking %s", crewID, b.ID)
		}
		b.ConfirmedCrews = entities.AddCrew(b.ConfirmedCrews, crewID)
		return func(ctx context.Context, saved entities.Booking) error {
			return u.ledger.ApplyShare(ctx, saved, crewID, +1)
		}, nil
	})
}

func (u *AssignmentUseCase) UnconfirmCrew(ctx context.Context, bookingID, crewID string) (TransitionResult, error) {
	crewID, err := trimID(crewID, ErrInvalidCrewID)
	if err != nil {
		return TransitionResult{}, err
	}
	return u.transition(ctx, entities.ActionUnconfirm, bookingID, func(b *entities.Booking) (ledgerPlan, error) {
		if !b.IsConfirmed(crewID) {
			return nil, preconditionf("crew %s is not confirmed on booking %s", crewID, b.ID)
		}
		b.ConfirmedCrews = entities.RemoveCrew(b.ConfirmedCrews, crewID)
		return func(ctx context.Context, saved entities.Booking) error {
			return u.ledger.ApplyShare(ctx, saved, crewID, -1)
		}, nil
	})
}

// MoveCrew replaces fromCrewID with toCrewID. A confirmed share transfers
// directly and the destination is confirmed without a separate step.
func (u *AssignmentUseCase) MoveCrew(ctx context.Context, bookingID, fromCrewID, toCrewID string) (TransitionResult, error) {
	fromCrewID, err := trimID(fromCrewID, ErrInvalidCrewID)
	if err != nil {
		return TransitionResult{}, err
	}
	toCrewID, err = trimID(toCrewID, ErrInvalidCrewID)
	if err != nil {
		return TransitionResult{}, err
	}
	return u.transition(ctx, entities.ActionMove, bookingID, func(b *entities.Booking) (ledgerPlan, error) {
		if fromCrewID == toCrewID {
			return nil, preconditionf("cannot move crew %s onto itself", fromCrewID)
		}
		if !b.IsAssigned(fromCrewID) {
			return nil, preconditionf("crew %s is not assigned to booking %s", fromCrewID, b.ID)
		}
		if b.IsAssigned(toCrewID) {
			return nil, preconditionf("crew %s already assigned to booking %s", toCrewID, b.ID)
		}
		stale := u.dropStaleConfirmation(b, toCrewID)
		b.AssignedCrews = replaceCrew(b.AssignedCrews, fromCrewID, toCrewID)
		if !b.IsConfirmed(fromCrewID) {
			return stale, nil
		}
		b.ConfirmedCrews = entities.AddCrew(entities.RemoveCrew(b.ConfirmedCrews, fromCrewID), toCrewID)
		return chainPlans(stale, func(ctx context.Context, saved entities.Booking) error {
			return u.ledger.TransferShare(ctx, saved, fromCrewID, toCrewID)
		}), nil
	})
}

// dropStaleConfirmation clears a confirmation crewID still holds from an
// earlier assignment and returns the reversal of that share.
func (u *AssignmentUseCase) dropStaleConfirmation(b *entities.Booking, crewID string) ledgerPlan {
	if !b.IsConfirmed(crewID) {
		return nil
	}
	b.ConfirmedCrews = entities.RemoveCrew(b.ConfirmedCrews, crewID)
	return func(ctx context.Context, saved entities.Booking) error {
		return u.ledger.ApplyShare(ctx, saved, crewID, -1)
	}
}

// chainPlans runs plans in order and joins their errors.
func chainPlans(plans ...ledgerPlan) ledgerPlan {
	return func(ctx context.Context, saved entities.Booking) error {
		var errs []error
		for _, p := range plans {
			if p == nil {
				continue
			}
			if err := p(ctx, saved); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}
}

// ConfirmAll confirms every assigned crew still awaiting confirmation. Their
// ledger legs run concurrently.
func (u *AssignmentUseCase) ConfirmAll(ctx context.Context, bookingID string) (TransitionResult, error) {
	return u.transition(ctx, entities.ActionConfirmAll, bookingID, func(b *entities.Booking) (ledgerPlan, error) {
		var pending []string
		for _, c := range b.AssignedCrews {
			if !b.IsConfirmed(c) {
				pending = append(pending, c)
			}
		}
		if len(pending) == 0 {
			return nil, preconditionf("booking %s has no crew awaiting confirmation", b.ID)
		}
		for _, c := range pending {
			b.ConfirmedCrews = entities.AddCrew(b.ConfirmedCrews, c)
		}
		return func(ctx context.Context, saved entities.Booking) error {
			return u.ledger.ApplyShares(ctx, saved, pending, +1)
		}, nil
	})
}

func (u *AssignmentUseCase) MoveToUnassigned(ctx context.Context, bookingID string) (TransitionResult, error) {
	return u.transition(ctx, entities.ActionMoveToUnassigned, bookingID, func(b *entities.Booking) (ledgerPlan, error) {
		return u.clearCrews(b), nil
	})
}

func (u *AssignmentUseCase) DropBooking(ctx context.Context, bookingID string) (TransitionResult, error) {
	return u.transition(ctx, entities.ActionDrop, bookingID, func(b *entities.Booking) (ledgerPlan, error) {
		plan := u.clearCrews(b)
		b.AssignedStatus = entities.AssignmentStatusDrop
		return plan, nil
	})
}

// clearCrews empties both crew sets and returns the reversal of every booked share.
func (u *AssignmentUseCase) clearCrews(b *entities.Booking) ledgerPlan {
	reverse := b.LedgerCrews()
	b.AssignedCrews = []string{}
	b.ConfirmedCrews = []string{}
	b.AssignedTo = ""
	if len(reverse) == 0 {
		return nil
	}
	return func(ctx context.Context, saved entities.Booking) error {
		return u.ledger.ApplyShares(ctx, saved, reverse, -1)
	}
}

func (u *AssignmentUseCase) transition(
	ctx context.Context,
	action entities.AssignmentAction,
	bookingID string,
	mutate func(b *entities.Booking) (ledgerPlan, error),
) (TransitionResult, error) {
	start := time.Now()
	defer func() {
		u.metrics.TransitionDuration.WithLabelValues(string(action)).Observe(time.Since(start).Seconds())
	}()

	bookingID, err := trimID(bookingID, ErrInvalidBookingID)
	if err != nil {
		return TransitionResult{}, err
	}
	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		u.log.Error("[assignment][usecase] failed loading booking", "booking_id", bookingID, "action", action, "error", err)
		return TransitionResult{}, err
	}
	if b.ID == "" {
		return TransitionResult{}, ErrMasterNotFound
	}

	from := b.AssignedStatus
	if from == "" {
		from = entities.AssignmentStatusUnassigned
	}
	if !entities.CanApply(action, from) {
		return TransitionResult{}, preconditionf("cannot %s booking %s in status %s", action, b.ID, from)
	}

	if migrateLegacy(&b) {
		u.log.Info("[assignment][usecase] legacy single-crew booking migrated", "booking_id", b.ID, "crew_id", b.AssignedTo)
	}

	plan, err := mutate(&b)
	if err != nil {
		u.log.Debug("[assignment][usecase] rejected", "booking_id", b.ID, "action", action, "error", err)
		return TransitionResult{}, err
	}
	normalizeAssignment(&b)
	b.UpdatedAt = u.now().UTC()

	saved, err := u.bookings.Save(ctx, b)
	if err != nil {
		u.log.Error("[assignment][usecase] master write failed", "booking_id", b.ID, "action", action, "error", err)
		return TransitionResult{}, err
	}

	warnings := u.prop.syncMirror(ctx, saved, saved.AssignmentFields())
	if plan != nil {
		warnings = append(warnings, warningsFrom(plan(ctx, saved))...)
	}

	switch {
	case saved.AssignedStatus == entities.AssignmentStatusDrop:
		u.prop.notify(ctx, entities.RKBookingCancelled, entities.NewBookingEvent(saved, u.now().UTC()))
	case saved.AssignedStatus == entities.AssignmentStatusConfirm && from != entities.AssignmentStatusConfirm:
		u.prop.notify(ctx, entities.RKBookingConfirmed, entities.NewBookingEvent(saved, u.now().UTC()))
	}

	u.log.Info("[assignment][usecase] transition applied",
		"booking_id", saved.ID, "customer_id", saved.CustomerID, "action", action,
		"from", from, "status", saved.AssignedStatus, "warnings", len(warnings))
	return TransitionResult{Booking: saved, Warnings: warnings}, nil
}

// migrateLegacy promotes assignedTo into the crew sets on a single-crew
// booking that predates them.
func migrateLegacy(b *entities.Booking) bool {
	if !b.IsLegacySingleCrew() {
		return false
	}
	b.AssignedCrews = []string{b.AssignedTo}
	if b.AssignedStatus == entities.AssignmentStatusConfirm && !b.IsConfirmed(b.AssignedTo) {
		b.ConfirmedCrews = entities.AddCrew(b.ConfirmedCrews, b.AssignedTo)
	}
	return true
}

// normalizeAssignment restores the count and status invariants after a mutation.
func normalizeAssignment(b *entities.Booking) {
	if b.AssignedCrews == nil {
		b.AssignedCrews = []string{}
	}
	if b.ConfirmedCrews == nil {
		b.ConfirmedCrews = []string{}
	}
	if b.Professionals == 1 && len(b.AssignedCrews) == 1 {
		b.AssignedTo = b.AssignedCrews[0]
	} else {
		b.AssignedTo = ""
	}
	b.SyncCounts()
	b.AssignedStatus = b.DerivedStatus()
}

func replaceCrew(crews []string, from, to string) []string {
	out := make([]string, len(crews))
	for i, c := range crews {
		if c == from {
			c = to
		}
		out[i] = c
	}
	return out
}
