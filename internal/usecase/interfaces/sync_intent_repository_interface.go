package interfaces

//go:generate mockgen -source=sync_intent_repository_interface.go -destination=mocks/sync_intent_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"

	"limpeza_xpto/internal/domain/entities"
)

// ISyncIntentRepository is the outbox of failed mirror and ledger legs.
type ISyncIntentRepository interface {
	Create(ctx context.Context, i entities.SyncIntent) (entities.SyncIntent, error)
	// Save removes intents that reached IntentStateDone; GetByID then
	// returns the zero value for them.
	Save(ctx context.Context, i entities.SyncIntent) error
	GetByID(ctx context.Context, id string) (entities.SyncIntent, error)
	// ListDue returns pending intents whose NextAttemptAt is not after now.
	ListDue(ctx context.Context, now time.Time, limit int) ([]entities.SyncIntent, error)
}
