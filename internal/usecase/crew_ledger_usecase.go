package usecase

//go:generate mockgen -source=crew_ledger_usecase.go -destination=../adapter/http/handlers/mocks/crew_ledger_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

// maxLedgerConcurrency bounds parallel crew document writes.
const maxLedgerConcurrency = 4

// ICrewLedgerUseCase is the only writer of crew hours and earnings.
//
// Errors returned by the apply methods are joined per crew: ErrCrewNotFound
// legs were skipped, ErrPartialSyncFailure legs were queued for replay.
type ICrewLedgerUseCase interface {
	ApplyShare(ctx context.Context, booking entities.Booking, crewID string, sign int) error
	ApplyShares(ctx context.Context, booking entities.Booking, crewIDs []string, sign int) error
	TransferShare(ctx context.Context, booking entities.Booking, fromCrewID, toCrewID string) error
	Recalculate(ctx context.Context, before, after entities.Booking) error
	AdjustLedger(ctx context.Context, crewID string, hours, amount float64) error
	GetCrew(ctx context.Context, crewID string) (entities.Crew, error)
}

// ledgerLeg is one signed adjustment of one crew's ledger.
type ledgerLeg struct {
	crewID string
	hours  float64
	amount float64
}

type CrewLedgerUseCase struct {
	crews   interfaces.ICrewRepository
	queue   interfaces.IIntentQueue
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ ICrewLedgerUseCase = (*CrewLedgerUseCase)(nil)

func NewCrewLedgerUseCase(crews interfaces.ICrewRepository, queue interfaces.IIntentQueue, log logger.Logger, m *metrics.Metrics) *CrewLedgerUseCase {
	return &CrewLedgerUseCase{crews: crews, queue: queue, log: log, metrics: m, now: time.Now}
}

func shareLeg(b entities.Booking, crewID string, sign int) ledgerLeg {
	s := float64(sign)
	return ledgerLeg{crewID: crewID, hours: s * float64(b.Hours), amount: s * b.CrewShare()}
}

// ApplyShare adds (sign=+1) or removes (sign=-1) one crew's share of the booking.
func (u *CrewLedgerUseCase) ApplyShare(ctx context.Context, booking entities.Booking, crewID string, sign int) error {
	if err := validSign(sign); err != nil {
		return err
	}
	return u.applyLegs(ctx, booking, []ledgerLeg{shareLeg(booking, crewID, sign)})
}

// ApplyShares applies the same signed share to several crews concurrently.
func (u *CrewLedgerUseCase) ApplyShares(ctx context.Context, booking entities.Booking, crewIDs []string, sign int) error {
	if err := validSign(sign); err != nil {
		return err
	}
	legs := make([]ledgerLeg, 0, len(crewIDs))
	for _, id := range crewIDs {
		legs = append(legs, shareLeg(booking, id, sign))
	}
	return u.applyLegs(ctx, booking, legs)
}

// TransferShare moves a confirmed share from one crew to another without
// passing through zero on the booking side.
func (u *CrewLedgerUseCase) TransferShare(ctx context.Context, booking entities.Booking, fromCrewID, toCrewID string) error {
	return u.applyLegs(ctx, booking, []ledgerLeg{
		shareLeg(booking, fromCrewID, -1),
		shareLeg(booking, toCrewID, +1),
	})
}

// Recalculate reconciles ledgers after a booking edit: crews confirmed before
// and after get only the share delta, dropped crews lose their old share and
// added crews gain the new one.
func (u *CrewLedgerUseCase) Recalculate(ctx context.Context, before, after entities.Booking) error {
	prev := map[string]bool{}
	for _, id := range before.LedgerCrews() {
		prev[id] = true
	}
	next := map[string]bool{}
	for _, id := range after.LedgerCrews() {
		next[id] = true
	}

	var legs []ledgerLeg
	for _, id := range before.LedgerCrews() {
		if !next[id] {
			legs = append(legs, shareLeg(before, id, -1))
			continue
		}
		dh := float64(after.Hours - before.Hours)
		da := after.CrewShare() - before.CrewShare()
		if dh != 0 || da != 0 {
			legs = append(legs, ledgerLeg{crewID: id, hours: dh, amount: da})
		}
	}
	for _, id := range after.LedgerCrews() {
		if !prev[id] {
			legs = append(legs, shareLeg(after, id, +1))
		}
	}
	if len(legs) == 0 {
		return nil
	}
	return u.applyLegs(ctx, after, legs)
}

// AdjustLedger applies a raw delta without queueing on failure. The
// reconciliation worker replays ledger intents through it.
func (u *CrewLedgerUseCase) AdjustLedger(ctx context.Context, crewID string, hours, amount float64) error {
	crewID, err := trimID(crewID, ErrInvalidCrewID)
	if err != nil {
		return err
	}
	return u.adjust(ctx, ledgerLeg{crewID: crewID, hours: hours, amount: amount})
}

func (u *CrewLedgerUseCase) GetCrew(ctx context.Context, crewID string) (entities.Crew, error) {
	crewID, err := trimID(crewID, ErrInvalidCrewID)
	if err != nil {
		return entities.Crew{}, err
	}
	c, err := u.crews.GetByID(ctx, crewID)
	if err != nil {
		return entities.Crew{}, err
	}
	if c.ID == "" {
		return entities.Crew{}, ErrCrewNotFound
	}
	return c, nil
}

func (u *CrewLedgerUseCase) applyLegs(ctx context.Context, booking entities.Booking, legs []ledgerLeg) error {
	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)
	g.SetLimit(maxLedgerConcurrency)

	for _, leg := range legs {
		g.Go(func() error {
			if err := u.applyLeg(ctx, booking, leg); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

func (u *CrewLedgerUseCase) applyLeg(ctx context.Context, booking entities.Booking, leg ledgerLeg) error {
	direction := "credit"
	if leg.hours < 0 || leg.amount < 0 {
		direction = "debit"
	}

	err := u.adjust(ctx, leg)
	switch {
	case err == nil:
		u.metrics.LedgerAdjustments.WithLabelValues(direction, "success").Inc()
		return nil
	case errors.Is(err, ErrCrewNotFound):
		u.metrics.LedgerAdjustments.WithLabelValues(direction, "crew_not_found").Inc()
		u.log.Warn("[ledger][usecase] crew not found, skipping", "booking_id", booking.ID, "crew_id", leg.crewID)
		return err
	}

	u.metrics.LedgerAdjustments.WithLabelValues(direction, "failure").Inc()
	u.log.Error("[ledger][usecase] ledger update failed", "booking_id", booking.ID, "customer_id", booking.CustomerID, "crew_id", leg.crewID, "hours_delta", leg.hours, "amount_delta", leg.amount, "error", err)

	intent := entities.SyncIntent{
		Kind:        entities.IntentLedgerDelta,
		BookingID:   booking.ID,
		CustomerID:  booking.CustomerID,
		CrewID:      leg.crewID,
		HoursDelta:  leg.hours,
		AmountDelta: leg.amount,
	}
	if qErr := u.queue.Enqueue(ctx, intent); qErr != nil {
		u.log.Error("[ledger][usecase] enqueue ledger intent failed", "booking_id", booking.ID, "crew_id", leg.crewID, "error", qErr)
	}
	return partialf("ledger crew %s: %v", leg.crewID, err)
}

func (u *CrewLedgerUseCase) adjust(ctx context.Context, leg ledgerLeg) error {
	crew, err := u.crews.GetByID(ctx, leg.crewID)
	if err != nil {
		return err
	}
	if crew.ID == "" {
		return fmt.Errorf("%w: %s", ErrCrewNotFound, leg.crewID)
	}
	next := crew.Apply(leg.hours, leg.amount)
	err = u.crews.UpdateLedger(ctx, crew.ID, next.Hours, next.TotalAmount)
	if errors.Is(err, interfaces.ErrDocumentNotFound) {
		return fmt.Errorf("%w: %s", ErrCrewNotFound, leg.crewID)
	}
	return err
}

func validSign(sign int) error {
	if sign != 1 && sign != -1 {
		return fmt.Errorf("invalid ledger sign %d", sign)
	}
	return nil
}
