package usecase

import (
	"context"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"
)

// DefaultNotifyTimeout bounds a notification publish.
const DefaultNotifyTimeout = 3 * time.Second

// TransitionResult is the master state after an operation, plus descriptions of
// mirror or ledger legs that did not complete.
type TransitionResult struct {
	Booking  entities.Booking `json:"booking"`
	Warnings []string         `json:"warnings,omitempty"`
}

// propagator runs the legs that follow a master write: the mirror sync, the
// outbox fallback and the notification.
type propagator struct {
	sync          IStatusSyncUseCase
	queue         interfaces.IIntentQueue
	notifier      interfaces.INotifier
	notifyTimeout time.Duration
	log           logger.Logger
	metrics       *metrics.Metrics
}

func newPropagator(sync IStatusSyncUseCase, queue interfaces.IIntentQueue, notifier interfaces.INotifier, notifyTimeout time.Duration, log logger.Logger, m *metrics.Metrics) propagator {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return propagator{sync: sync, queue: queue, notifier: notifier, notifyTimeout: notifyTimeout, log: log, metrics: m}
}

// syncMirror calls SyncStatus once with the master's status and the given
// fields. A failure is logged, queued and returned as a warning.
func (p propagator) syncMirror(ctx context.Context, b entities.Booking, fields map[string]any) []string {
	err := p.sync.SyncStatus(ctx, b.ID, b.CustomerID, b.AssignedStatus, fields)
	if err == nil {
		return nil
	}
	p.log.Error("[sync][propagation] mirror sync failed, master kept",
		"booking_id", b.ID, "customer_id", b.CustomerID, "status", b.AssignedStatus, "error", err)
	p.enqueue(ctx, entities.SyncIntent{
		Kind:       entities.IntentMirrorSync,
		BookingID:  b.ID,
		CustomerID: b.CustomerID,
		Status:     b.AssignedStatus,
		Fields:     fields,
	})
	return []string{partialf("mirror sync booking %s status %s: %v", b.ID, b.AssignedStatus, err).Error()}
}

func (p propagator) enqueue(ctx context.Context, intent entities.SyncIntent) {
	if p.queue == nil {
		return
	}
	if err := p.queue.Enqueue(ctx, intent); err != nil {
		p.log.Error("[sync][propagation] enqueue intent failed", "kind", intent.Kind, "booking_id", intent.BookingID, "error", err)
	}
}

// notify publishes synchronously with a bounded timeout. Failures are logged
// and never reach the caller.
func (p propagator) notify(ctx context.Context, routingKey string, payload any) {
	if p.notifier == nil {
		return
	}
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.notifyTimeout)
	defer cancel()
	if err := p.notifier.Notify(nctx, routingKey, payload); err != nil {
		p.log.Warn("[notify][propagation] notification dropped", "routing_key", routingKey, "error", err)
	}
}
