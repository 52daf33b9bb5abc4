package usecase

import (
	"context"
	"testing"

	"limpeza_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBookingUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("writes master and mirror", func(t *testing.T) {
		h := newHarness(t)
		res, err := h.booking.CreateBooking(ctx, entities.Booking{
			CustomerID:     " cust-1 ",
			Date:           "2026-05-10",
			Hours:          2,
			Professionals:  1,
			TotalAmount:    100,
			AssignedTo:     "sneaky",
			AssignedStatus: entities.AssignmentStatusConfirm,
		})
		require.NoError(t, err)
		b := res.Booking
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, "cust-1", b.CustomerID)
		assert.Equal(t, entities.AssignmentStatusUnassigned, b.AssignedStatus)
		assert.Empty(t, b.AssignedTo)
		assert.Equal(t, 100.0, b.DueBalance)
		assert.Equal(t, entities.PaymentStateDue, b.PaymentStatus)

		m := h.mirrorOf(t, b)
		assert.Equal(t, b.ID, m.ID)
		assert.Equal(t, testClock, m.MirroredAt)
		assert.Equal(t, []string{entities.RKBookingCreated}, h.notifier.sent())

		list, err := h.booking.ListCustomerBookings(ctx, "cust-1")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, b.ID, list[0].ID)
	})

	t.Run("mirror failure keeps master", func(t *testing.T) {
		h := newHarness(t)
		h.store.failWrites("customers/", errStoreDown)
		res, err := h.booking.CreateBooking(ctx, entities.Booking{CustomerID: "cust-1", Date: "2026-05-10", Hours: 2, Professionals: 1, TotalAmount: 100})
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, res.Booking.ID, h.master(t, res.Booking.ID).ID)

		intents := h.queue.all()
		require.Len(t, intents, 1)
		assert.Equal(t, entities.IntentMirrorRepair, intents[0].Kind)
	})

	t.Run("validation", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.booking.CreateBooking(ctx, entities.Booking{Date: "2026-05-10", Hours: 2, Professionals: 1})
		require.ErrorIs(t, err, ErrInvalidCustomerID)
		_, err = h.booking.CreateBooking(ctx, entities.Booking{CustomerID: "u1", Date: "2026-05-10", Hours: 2, Professionals: 0})
		require.ErrorIs(t, err, ErrInvalidBooking)
		_, err = h.booking.CreateBooking(ctx, entities.Booking{CustomerID: "u1", Hours: 2, Professionals: 1})
		require.ErrorIs(t, err, ErrInvalidBooking)
		_, err = h.booking.CreateBooking(ctx, entities.Booking{CustomerID: "u1", Date: "2026-05-10", Hours: -1, Professionals: 1})
		require.ErrorIs(t, err, ErrInvalidBooking)
	})

	t.Run("zero hours", func(t *testing.T) {
		h := newHarness(t)
		res, err := h.booking.CreateBooking(ctx, entities.Booking{CustomerID: "u1", Date: "2026-05-10", Hours: 0, Professionals: 1, TotalAmount: 80})
		require.NoError(t, err)
		assert.Zero(t, h.master(t, res.Booking.ID).Hours)

		_, err = h.booking.EditBooking(ctx, res.Booking.ID, BookingChanges{Hours: ptr(0)})
		require.NoError(t, err)
	})
}

func TestBookingUseCase_EditRecalculatesConfirmedShares(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.seedCrews(t, "c1", "c2")
	b := h.createBooking(t, 2, 2, 100)
	for _, c := range []string{"c1", "c2"} {
		_, err := h.assign.AssignCrew(ctx, b.ID, c)
		require.NoError(t, err)
	}
	_, err := h.assign.ConfirmCrew(ctx, b.ID, "c1")
	require.NoError(t, err)

	res, err := h.booking.EditBooking(ctx, b.ID, BookingChanges{
		Hours:       ptr(3),
		TotalAmount: ptr(180.0),
		Notes:       ptr("bring ladder"),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 180.0, res.Booking.DueBalance)

	c1 := h.crew(t, "c1")
	assert.Equal(t, 3.0, c1.Hours)
	assert.Equal(t, 90.0, c1.TotalAmount)
	assert.Zero(t, h.crew(t, "c2").TotalAmount, "unconfirmed crew untouched")

	m := h.mirrorOf(t, b)
	assert.Equal(t, 3, m.Hours)
	assert.Equal(t, 180.0, m.TotalAmount)
	assert.Equal(t, "bring ladder", m.Notes)
	requireInvariants(t, h.master(t, b.ID))
}

func TestBookingUseCase_EditPreconditions(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.seedCrews(t, "c1", "c2")
	b := h.createBooking(t, 2, 2, 100)
	for _, c := range []string{"c1", "c2"} {
		_, err := h.assign.AssignCrew(ctx, b.ID, c)
		require.NoError(t, err)
	}

	_, err := h.booking.EditBooking(ctx, b.ID, BookingChanges{Professionals: ptr(1)})
	require.ErrorIs(t, err, ErrPreconditionViolation)

	paid := h.master(t, b.ID)
	paid.DueBalance = 40
	_, err = h.bookings.Save(ctx, paid)
	require.NoError(t, err)
	_, err = h.booking.EditBooking(ctx, b.ID, BookingChanges{TotalAmount: ptr(50.0)})
	require.ErrorIs(t, err, ErrPreconditionViolation)

	res, err := h.booking.EditBooking(ctx, b.ID, BookingChanges{TotalAmount: ptr(120.0)})
	require.NoError(t, err)
	assert.Equal(t, 60.0, res.Booking.DueBalance, "collected amount preserved")
	assert.Equal(t, entities.PaymentStatePartial, res.Booking.PaymentStatus)

	_, err = h.assign.DropBooking(ctx, b.ID)
	require.NoError(t, err)
	_, err = h.booking.EditBooking(ctx, b.ID, BookingChanges{Hours: ptr(5)})
	require.ErrorIs(t, err, ErrPreconditionViolation)
}

func TestBookingUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("reverses ledger and removes mirror", func(t *testing.T) {
		h := newHarness(t)
		h.seedCrews(t, "c1")
		b := h.createBooking(t, 1, 2, 100)
		_, err := h.assign.AssignCrew(ctx, b.ID, "c1")
		require.NoError(t, err)
		_, err = h.assign.ConfirmCrew(ctx, b.ID, "c1")
		require.NoError(t, err)

		res, err := h.booking.DeleteBooking(ctx, b.ID)
		require.NoError(t, err)
		assert.Empty(t, res.Warnings)
		assert.Zero(t, h.crew(t, "c1").TotalAmount)
		assert.Empty(t, h.mirrorOf(t, b).ID)

		_, err = h.booking.GetBooking(ctx, b.ID)
		require.ErrorIs(t, err, ErrMasterNotFound)
		assert.Contains(t, h.notifier.sent(), entities.RKBookingDeleted)
	})

	t.Run("mirror delete failure is queued", func(t *testing.T) {
		h := newHarness(t)
		b := h.createBooking(t, 1, 2, 100)
		h.store.failWrites("customers/", errStoreDown)

		res, err := h.booking.DeleteBooking(ctx, b.ID)
		require.NoError(t, err)
		require.Len(t, res.Warnings, 1)
		intents := h.queue.all()
		require.Len(t, intents, 1)
		assert.Equal(t, entities.IntentMirrorDelete, intents[0].Kind)
		assert.Equal(t, b.CustomerID, intents[0].CustomerID)
	})

	t.Run("unknown booking", func(t *testing.T) {
		h := newHarness(t)
		_, err := h.booking.DeleteBooking(ctx, "ghost")
		require.ErrorIs(t, err, ErrMasterNotFound)
	})
}
