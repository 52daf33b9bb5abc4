package repository

import (
	"context"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// BookingDocumentRepository persists master bookings at bookings/{id}.
type BookingDocumentRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.IBookingRepository = (*BookingDocumentRepository)(nil)

func NewBookingDocumentRepository(store interfaces.IDocumentStore) *BookingDocumentRepository {
	return &BookingDocumentRepository{store: store}
}

func (r *BookingDocumentRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return r.Save(ctx, b)
}

func (r *BookingDocumentRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	doc, err := r.store.Get(ctx, bookingPath(id))
	if err != nil {
		return entities.Booking{}, err
	}
	if doc == nil {
		return entities.Booking{}, nil
	}
	var b entities.Booking
	if err := fromFields(doc, &b); err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		b.ID = id
	}
	return b, nil
}

// Save fully replaces the master document.
func (r *BookingDocumentRepository) Save(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	fields, err := toFields(b)
	if err != nil {
		return entities.Booking{}, err
	}
	if err := r.store.Set(ctx, bookingPath(b.ID), fields, false); err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDocumentRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, bookingPath(id))
}
