package repository

import (
	"sync"
	"testing"
	"time"

	"limpeza_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestSyncIntentModelSchema(t *testing.T) {
	s, err := schema.Parse(&syncIntentModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	assert.Equal(t, "sync_intents", s.Table)
	require.NotNil(t, s.PrioritizedPrimaryField)
	assert.Equal(t, "id", s.PrioritizedPrimaryField.DBName)

	for field, column := range map[string]string{
		"BookingID":     "booking_id",
		"NextAttemptAt": "next_attempt_at",
		"State":         "state",
		"Fields":        "fields",
	} {
		f := s.LookUpField(field)
		require.NotNil(t, f, field)
		assert.Equal(t, column, f.DBName)
	}
}

func TestSyncIntentModelMapping(t *testing.T) {
	local := time.FixedZone("BRT", -3*60*60)
	in := entities.SyncIntent{
		ID:            "intent-1",
		Kind:          entities.IntentMirrorSync,
		BookingID:     "bk-1",
		CustomerID:    "cust-1",
		Status:        entities.AssignmentStatusConfirm,
		Fields:        map[string]any{"professionalsConfirmed": float64(2)},
		State:         entities.IntentStatePending,
		Attempts:      2,
		LastError:     "mirror timeout",
		CreatedAt:     time.Date(2026, 5, 4, 6, 0, 0, 0, local),
		NextAttemptAt: time.Date(2026, 5, 4, 6, 5, 0, 0, local),
	}

	m := toSyncIntentModel(in)
	assert.Equal(t, "mirror_sync", m.Kind)
	assert.Equal(t, "pending", m.State)
	assert.Equal(t, time.UTC, m.CreatedAt.Location())

	out := fromSyncIntentModel(m)
	assert.Equal(t, in.Kind, out.Kind)
	assert.Equal(t, in.Status, out.Status)
	assert.Equal(t, in.Fields, out.Fields)
	assert.Equal(t, in.Attempts, out.Attempts)
	assert.True(t, in.NextAttemptAt.Equal(out.NextAttemptAt))

	ledger := fromSyncIntentModel(toSyncIntentModel(entities.SyncIntent{
		Kind:        entities.IntentLedgerDelta,
		CrewID:      "crew-a",
		HoursDelta:  -2,
		AmountDelta: -50,
	}))
	assert.Equal(t, "crew-a", ledger.CrewID)
	assert.Equal(t, -2.0, ledger.HoursDelta)
	assert.Equal(t, -50.0, ledger.AmountDelta)
}
