package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"

	"golang.org/x/time/rate"
)

// IIntentHandler replays one sync intent. A nil error marks it done.
type IIntentHandler interface {
	Handle(ctx context.Context, intent entities.SyncIntent) error
}

type ReconcileConfig struct {
	Interval      time.Duration
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Multiplier    float64
	Jitter        bool
	RatePerSecond float64
	BatchSize     int
	Buffer        int
}

func DefaultReconcileConfig() ReconcileConfig {
	return ReconcileConfig{
		Interval:      30 * time.Second,
		MaxAttempts:   8,
		InitialDelay:  time.Second,
		MaxDelay:      5 * time.Minute,
		Multiplier:    2,
		Jitter:        true,
		RatePerSecond: 20,
		BatchSize:     100,
		Buffer:        256,
	}
}

// ReconcileWorker is the outbox for mirror and ledger legs that failed after
// the master write. Enqueue persists the intent and hands it to Run over a
// buffered channel; Run also sweeps the outbox for due retries.
type ReconcileWorker struct {
	repo    interfaces.ISyncIntentRepository
	cfg     ReconcileConfig
	limiter *rate.Limiter
	intents chan entities.SyncIntent
	log     logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand
}

var _ interfaces.IIntentQueue = (*ReconcileWorker)(nil)

func NewReconcileWorker(repo interfaces.ISyncIntentRepository, cfg ReconcileConfig, log logger.Logger, m *metrics.Metrics) *ReconcileWorker {
	def := DefaultReconcileConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = def.InitialDelay
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = def.Multiplier
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = def.RatePerSecond
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = def.BatchSize
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = def.Buffer
	}
	burst := int(math.Ceil(cfg.RatePerSecond))
	return &ReconcileWorker{
		repo:    repo,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst),
		intents: make(chan entities.SyncIntent, cfg.Buffer),
		log:     log,
		metrics: m,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Enqueue persists a pending intent. The channel hand-off is best effort: a
// full buffer leaves the intent for the next sweep.
func (w *ReconcileWorker) Enqueue(ctx context.Context, intent entities.SyncIntent) error {
	now := w.now().UTC()
	intent.ID = ""
	intent.State = entities.IntentStatePending
	intent.Attempts = 0
	intent.LastError = ""
	intent.CreatedAt = now
	intent.UpdatedAt = now
	intent.NextAttemptAt = now

	created, err := w.repo.Create(context.WithoutCancel(ctx), intent)
	if err != nil {
		w.log.Error("[reconcile][worker] persist intent failed", "kind", intent.Kind, "booking_id", intent.BookingID, "error", err)
		return err
	}
	w.metrics.IntentsEnqueued.WithLabelValues(string(created.Kind)).Inc()
	w.log.Info("[reconcile][worker] intent enqueued", "intent_id", created.ID, "kind", created.Kind,
		"booking_id", created.BookingID, "customer_id", created.CustomerID, "crew_id", created.CrewID)

	select {
	case w.intents <- created:
	default:
		w.log.Debug("[reconcile][worker] buffer full, intent left for sweep", "intent_id", created.ID)
	}
	return nil
}

// Run processes handed-off intents and sweeps due retries until ctx is done.
func (w *ReconcileWorker) Run(ctx context.Context, h IIntentHandler) {
	w.log.Info("[reconcile][worker] started", "interval", w.cfg.Interval, "max_attempts", w.cfg.MaxAttempts)
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	w.sweep(ctx, h)
	for {
		select {
		case <-ctx.Done():
			w.log.Info("[reconcile][worker] stopped")
			return
		case intent := <-w.intents:
			if err := w.attempt(ctx, h, intent.ID); err != nil && ctx.Err() == nil {
				w.log.Error("[reconcile][worker] attempt failed", "intent_id", intent.ID, "error", err)
			}
		case <-ticker.C:
			w.sweep(ctx, h)
		}
	}
}

func (w *ReconcileWorker) sweep(ctx context.Context, h IIntentHandler) {
	n, err := w.ProcessDue(ctx, h)
	if err != nil && ctx.Err() == nil {
		w.log.Error("[reconcile][worker] sweep failed", "processed", n, "error", err)
		return
	}
	if n > 0 {
		w.log.Debug("[reconcile][worker] sweep done", "processed", n)
	}
}

// ProcessDue attempts every pending intent whose retry time has come and
// returns how many were attempted.
func (w *ReconcileWorker) ProcessDue(ctx context.Context, h IIntentHandler) (int, error) {
	due, err := w.repo.ListDue(ctx, w.now().UTC(), w.cfg.BatchSize)
	if err != nil {
		return 0, err
	}
	var errs []error
	n := 0
	for _, intent := range due {
		if ctx.Err() != nil {
			break
		}
		if err := w.attempt(ctx, h, intent.ID); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}

// attempt re-reads the intent so a copy delivered twice (channel and sweep)
// is replayed once.
func (w *ReconcileWorker) attempt(ctx context.Context, h IIntentHandler, id string) error {
	intent, err := w.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if intent.ID == "" || intent.State != entities.IntentStatePending || intent.NextAttemptAt.After(w.now().UTC()) {
		return nil
	}
	if err := w.limiter.Wait(ctx); err != nil {
		return err
	}

	intent.Attempts++
	herr := h.Handle(ctx, intent)
	now := w.now().UTC()
	intent.UpdatedAt = now

	switch {
	case herr == nil:
		intent.State = entities.IntentStateDone
		intent.LastError = ""
		w.metrics.IntentsProcessed.WithLabelValues(string(intent.Kind), "done").Inc()
		w.log.Info("[reconcile][worker] intent replayed", "intent_id", intent.ID, "kind", intent.Kind,
			"booking_id", intent.BookingID, "attempts", intent.Attempts)
	case intent.Attempts >= w.cfg.MaxAttempts:
		intent.State = entities.IntentStateFailed
		intent.LastError = herr.Error()
		w.metrics.IntentsProcessed.WithLabelValues(string(intent.Kind), "failed").Inc()
		w.log.Error("[reconcile][worker] intent gave up", "intent_id", intent.ID, "kind", intent.Kind,
			"booking_id", intent.BookingID, "customer_id", intent.CustomerID, "attempts", intent.Attempts, "error", herr)
	default:
		intent.LastError = herr.Error()
		intent.NextAttemptAt = now.Add(w.NextBackoffDelay(intent.Attempts))
		w.metrics.IntentsProcessed.WithLabelValues(string(intent.Kind), "retry").Inc()
		w.log.Warn("[reconcile][worker] intent retry scheduled", "intent_id", intent.ID, "kind", intent.Kind,
			"booking_id", intent.BookingID, "attempts", intent.Attempts, "next_attempt_at", intent.NextAttemptAt, "error", herr)
	}
	return w.repo.Save(ctx, intent)
}

// NextBackoffDelay is InitialDelay * Multiplier^(attempt-1), capped at
// MaxDelay, scaled by a jitter factor in [0.5, 1.5) when enabled.
func (w *ReconcileWorker) NextBackoffDelay(attempt int) time.Duration {
	cfg := w.cfg
	delay := float64(cfg.InitialDelay)
	if attempt > 1 {
		delay *= math.Pow(cfg.Multiplier, float64(attempt-1))
	}
	if cfg.MaxDelay > 0 && delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	if cfg.Jitter {
		w.rngMu.Lock()
		delay *= 0.5 + w.rng.Float64()
		w.rngMu.Unlock()
	}
	return time.Duration(delay)
}

// IntentReplayer rolls a failed leg forward from the current master rather
// than from the state captured when it failed.
type IntentReplayer struct {
	bookings interfaces.IBookingRepository
	mirror   IMirrorUseCase
	sync     IStatusSyncUseCase
	ledger   ICrewLedgerUseCase
	log      logger.Logger
}

var _ IIntentHandler = (*IntentReplayer)(nil)

func NewIntentReplayer(bookings interfaces.IBookingRepository, mirror IMirrorUseCase, sync IStatusSyncUseCase, ledger ICrewLedgerUseCase, log logger.Logger) *IntentReplayer {
	return &IntentReplayer{bookings: bookings, mirror: mirror, sync: sync, ledger: ledger, log: log}
}

func (r *IntentReplayer) Handle(ctx context.Context, intent entities.SyncIntent) error {
	switch intent.Kind {
	case entities.IntentMirrorSync:
		master, err := r.bookings.GetByID(ctx, intent.BookingID)
		if err != nil {
			return err
		}
		if master.ID == "" {
			r.log.Info("[reconcile][replay] master gone, nothing to sync", "booking_id", intent.BookingID)
			return nil
		}
		fields := master.AssignmentFields()
		for k, v := range master.FinancialFields() {
			fields[k] = v
		}
		for k, v := range scheduleFields(master) {
			fields[k] = v
		}
		err = r.sync.SyncStatus(ctx, master.ID, master.CustomerID, master.AssignedStatus, fields)
		if errors.Is(err, ErrMasterNotFound) {
			return nil
		}
		return err

	case entities.IntentMirrorRepair:
		_, err := r.mirror.RepairMirror(ctx, intent.BookingID, intent.CustomerID)
		if errors.Is(err, ErrMasterNotFound) {
			return nil
		}
		return err

	case entities.IntentMirrorDelete:
		return r.mirror.DeleteMirror(ctx, intent.BookingID, intent.CustomerID)

	case entities.IntentLedgerDelta:
		err := r.ledger.AdjustLedger(ctx, intent.CrewID, intent.HoursDelta, intent.AmountDelta)
		if errors.Is(err, ErrCrewNotFound) {
			r.log.Warn("[reconcile][replay] crew gone, dropping ledger delta", "crew_id", intent.CrewID, "booking_id", intent.BookingID)
			return nil
		}
		return err
	}
	return fmt.Errorf("unknown sync intent kind %q", intent.Kind)
}
