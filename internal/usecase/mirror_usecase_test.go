package usecase

import (
	"context"
	"testing"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errDocumentNotFound() error { return interfaces.ErrDocumentNotFound }

func TestMirrorUseCase_RepairIsIdempotent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.seedCrews(t, "c1")
	b := h.createBooking(t, 1, 2, 100)
	_, err := h.assign.AssignCrew(ctx, b.ID, "c1")
	require.NoError(t, err)

	require.NoError(t, h.store.Update(ctx, "customers/"+b.CustomerID+"/bookings/"+b.ID, map[string]any{
		"assignedStatus": "unassigned",
		"hours":          9,
	}))

	first, err := h.mirror.RepairMirror(ctx, b.ID, b.CustomerID)
	require.NoError(t, err)
	doc1, err := h.store.Get(ctx, "customers/"+b.CustomerID+"/bookings/"+b.ID)
	require.NoError(t, err)

	second, err := h.mirror.RepairMirror(ctx, b.ID, "")
	require.NoError(t, err)
	doc2, err := h.store.Get(ctx, "customers/"+b.CustomerID+"/bookings/"+b.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, doc1, doc2)
	assert.Equal(t, entities.AssignmentStatusAssigned, second.AssignedStatus)
	assert.Equal(t, 2, second.Hours)
}

func TestMirrorUseCase_RepairUnknownMaster(t *testing.T) {
	h := newHarness(t)
	_, err := h.mirror.RepairMirror(context.Background(), "ghost", "cust-1")
	require.ErrorIs(t, err, ErrMasterNotFound)
}

func TestMirrorUseCase_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	b := h.createBooking(t, 1, 2, 100)

	require.NoError(t, h.mirror.DeleteMirror(ctx, b.ID, b.CustomerID))
	require.NoError(t, h.mirror.DeleteMirror(ctx, b.ID, b.CustomerID))
	assert.Empty(t, h.mirrorOf(t, b).ID)
}

func TestMirrorUseCase_CreateValidatesIDs(t *testing.T) {
	h := newHarness(t)
	err := h.mirror.CreateMirror(context.Background(), "b1", "a/b", entities.Booking{})
	require.ErrorIs(t, err, ErrInvalidCustomerID)
	err = h.mirror.CreateMirror(context.Background(), "", "u1", entities.Booking{})
	require.ErrorIs(t, err, ErrInvalidBookingID)
}
