package interfaces

//go:generate mockgen -source=intent_queue_interface.go -destination=mocks/intent_queue_interface_mock.go -package=mock_interfaces

import (
	"context"

	"limpeza_xpto/internal/domain/entities"
)

// IIntentQueue hands a failed mirror or ledger leg to the reconciliation worker.
type IIntentQueue interface {
	Enqueue(ctx context.Context, intent entities.SyncIntent) error
}
