package interfaces

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"limpeza_xpto/internal/domain/entities"
)

// IPaymentRepository persists payments under their booking.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.Payment, error)
}
