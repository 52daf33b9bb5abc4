package entities

import "time"

// SyncIntentKind names the downstream leg a sync intent replays.
type SyncIntentKind string

const (
	IntentMirrorSync   SyncIntentKind = "mirror_sync"
	IntentMirrorRepair SyncIntentKind = "mirror_repair"
	IntentMirrorDelete SyncIntentKind = "mirror_delete"
	IntentLedgerDelta  SyncIntentKind = "ledger_delta"
)

type SyncIntentState string

const (
	IntentStatePending SyncIntentState = "pending"
	IntentStateDone    SyncIntentState = "done"
	IntentStateFailed  SyncIntentState = "failed"
)

// SyncIntent is an outbox record for a mirror or ledger write that failed after
// the master booking was already updated.
type SyncIntent struct {
	ID         string           `json:"id"`
	Kind       SyncIntentKind   `json:"kind"`
	BookingID  string           `json:"bookingId"`
	CustomerID string           `json:"customerId,omitempty"`
	Status     AssignmentStatus `json:"status,omitempty"`
	Fields     map[string]any   `json:"fields,omitempty"`

	CrewID      string  `json:"crewId,omitempty"`
	HoursDelta  float64 `json:"hoursDelta,omitempty"`
	AmountDelta float64 `json:"amountDelta,omitempty"`

	State         SyncIntentState `json:"state"`
	Attempts      int             `json:"attempts"`
	LastError     string          `json:"lastError,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	NextAttemptAt time.Time       `json:"nextAttemptAt"`
}
