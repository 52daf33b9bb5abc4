package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"limpeza_xpto/internal/adapter/persistence/documentstore"
	"limpeza_xpto/internal/adapter/persistence/repository"
	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"
	"limpeza_xpto/pkg/logger"
	"limpeza_xpto/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var errStoreDown = errors.New("store unavailable")

// faultyStore fails writes under registered path prefixes.
type faultyStore struct {
	interfaces.IDocumentStore

	mu    sync.Mutex
	fails map[string]error
}

func (s *faultyStore) failWrites(prefix string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails[prefix] = err
}

func (s *faultyStore) heal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fails = map[string]error{}
}

func (s *faultyStore) check(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for prefix, err := range s.fails {
		if strings.HasPrefix(path, prefix) {
			return err
		}
	}
	return nil
}

func (s *faultyStore) Set(ctx context.Context, path string, fields map[string]any, merge bool) error {
	if err := s.check(path); err != nil {
		return err
	}
	return s.IDocumentStore.Set(ctx, path, fields, merge)
}

func (s *faultyStore) Update(ctx context.Context, path string, fields map[string]any) error {
	if err := s.check(path); err != nil {
		return err
	}
	return s.IDocumentStore.Update(ctx, path, fields)
}

func (s *faultyStore) Delete(ctx context.Context, path string) error {
	if err := s.check(path); err != nil {
		return err
	}
	return s.IDocumentStore.Delete(ctx, path)
}

type recordingQueue struct {
	mu      sync.Mutex
	intents []entities.SyncIntent
}

func (q *recordingQueue) Enqueue(_ context.Context, intent entities.SyncIntent) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.intents = append(q.intents, intent)
	return nil
}

func (q *recordingQueue) all() []entities.SyncIntent {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]entities.SyncIntent(nil), q.intents...)
}

type recordingNotifier struct {
	mu   sync.Mutex
	keys []string
}

func (n *recordingNotifier) Notify(_ context.Context, routingKey string, _ any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.keys = append(n.keys, routingKey)
	return nil
}

func (n *recordingNotifier) sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.keys...)
}

var testClock = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func fixedNow() time.Time { return testClock }

// harness wires every use case over one in-memory document store.
type harness struct {
	store    *faultyStore
	bookings *repository.BookingDocumentRepository
	mirrors  *repository.MirrorDocumentRepository
	crews    *repository.CrewDocumentRepository
	queue    *recordingQueue
	notifier *recordingNotifier
	metrics  *metrics.Metrics

	mirror      *MirrorUseCase
	sync        *StatusSyncUseCase
	ledger      *CrewLedgerUseCase
	assign      *AssignmentUseCase
	booking     *BookingUseCase
	consistency *ConsistencyUseCase
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := &faultyStore{IDocumentStore: documentstore.NewMemoryStore(), fails: map[string]error{}}
	log := logger.NewNop()
	m := metrics.NewMetrics("test", prometheus.NewRegistry())

	h := &harness{
		store:    store,
		bookings: repository.NewBookingDocumentRepository(store),
		mirrors:  repository.NewMirrorDocumentRepository(store),
		crews:    repository.NewCrewDocumentRepository(store),
		queue:    &recordingQueue{},
		notifier: &recordingNotifier{},
		metrics:  m,
	}
	h.mirror = NewMirrorUseCase(h.bookings, h.mirrors, log, m)
	h.mirror.now = fixedNow
	h.sync = NewStatusSyncUseCase(h.bookings, h.mirrors, h.mirror, log, m)
	h.sync.now = fixedNow
	h.ledger = NewCrewLedgerUseCase(h.crews, h.queue, log, m)
	h.ledger.now = fixedNow
	h.assign = NewAssignmentUseCase(h.bookings, h.sync, h.ledger, h.queue, h.notifier, time.Second, log, m)
	h.assign.now = fixedNow
	h.booking = NewBookingUseCase(h.bookings, h.mirrors, h.mirror, h.sync, h.ledger, h.queue, h.notifier, time.Second, log, m)
	h.booking.now = fixedNow
	h.consistency = NewConsistencyUseCase(h.bookings, h.mirrors, h.mirror, log, m)
	return h
}

func (h *harness) createBooking(t *testing.T, professionals, hours int, total float64) entities.Booking {
	t.Helper()
	res, err := h.booking.CreateBooking(context.Background(), entities.Booking{
		CustomerID:    "cust-1",
		Date:          "2026-05-10",
		StartTime:     "09:00",
		EndTime:       "13:00",
		Hours:         hours,
		Professionals: professionals,
		TotalAmount:   total,
	})
	require.NoError(t, err)
	require.Empty(t, res.Warnings)
	return res.Booking
}

// seedBooking writes a master and its mirror as-is, bypassing the use cases.
func (h *harness) seedBooking(t *testing.T, b entities.Booking) entities.Booking {
	t.Helper()
	ctx := context.Background()
	b.CreatedAt, b.UpdatedAt = testClock, testClock
	saved, err := h.bookings.Create(ctx, b)
	require.NoError(t, err)
	require.NoError(t, h.mirrors.Put(ctx, entities.NewMirror(saved, testClock)))
	return saved
}

func (h *harness) seedCrews(t *testing.T, ids ...string) {
	t.Helper()
	for _, id := range ids {
		_, err := h.crews.Create(context.Background(), entities.Crew{ID: id, Name: "crew " + id, UpdatedAt: testClock})
		require.NoError(t, err)
	}
}

func (h *harness) crew(t *testing.T, id string) entities.Crew {
	t.Helper()
	c, err := h.crews.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotEmpty(t, c.ID, "crew %s missing", id)
	return c
}

func (h *harness) master(t *testing.T, id string) entities.Booking {
	t.Helper()
	b, err := h.bookings.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotEmpty(t, b.ID, "booking %s missing", id)
	return b
}

func (h *harness) mirrorOf(t *testing.T, b entities.Booking) entities.MirrorBooking {
	t.Helper()
	m, err := h.mirrors.Get(context.Background(), b.CustomerID, b.ID)
	require.NoError(t, err)
	return m
}

// requireInvariants checks the count and subset rules on a stored booking.
func requireInvariants(t *testing.T, b entities.Booking) {
	t.Helper()
	require.Equal(t, len(b.ConfirmedCrews), b.ProfessionalsConfirmed, "confirmed count")
	require.Equal(t, b.AssignedCount(), b.ProfessionalsAssigned, "assigned count")
	seen := map[string]bool{}
	for _, c := range b.ConfirmedCrews {
		require.False(t, seen[c], "crew %s confirmed twice", c)
		seen[c] = true
		require.True(t, b.IsAssigned(c), "confirmed crew %s not assigned", c)
	}
	if b.Professionals >= 2 && b.AssignedStatus != entities.AssignmentStatusDrop {
		want := entities.DeriveStatus(len(b.AssignedCrews), b.Professionals, len(b.ConfirmedCrews))
		require.Equal(t, want, b.AssignedStatus, "derived status")
	}
}
