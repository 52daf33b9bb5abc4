package interfaces

//go:generate mockgen -source=mirror_repository_interface.go -destination=mocks/mirror_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"limpeza_xpto/internal/domain/entities"
)

// IMirrorRepository persists customer-scoped booking mirrors.
//
//   - Get returns a zero-value mirror (ID == "") when absent.
//   - Update returns ErrDocumentNotFound when the mirror is absent.
//   - Delete is idempotent.
type IMirrorRepository interface {
	Get(ctx context.Context, customerID, bookingID string) (entities.MirrorBooking, error)
	Put(ctx context.Context, m entities.MirrorBooking) error
	Update(ctx context.Context, customerID, bookingID string, fields map[string]any) error
	Delete(ctx context.Context, customerID, bookingID string) error
	ListByCustomer(ctx context.Context, customerID string) ([]entities.MirrorBooking, error)
}
