package interfaces

//go:generate mockgen -source=booking_repository_interface.go -destination=mocks/booking_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"limpeza_xpto/internal/domain/entities"
)

// IBookingRepository persists master bookings. GetByID returns a zero-value
// booking (ID == "") when absent.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	Save(ctx context.Context, b entities.Booking) (entities.Booking, error)
	Delete(ctx context.Context, id string) error
}
