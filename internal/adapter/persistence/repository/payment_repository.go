package repository

import (
	"context"
	"sort"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// PaymentDocumentRepository persists payments at bookings/{bookingId}/payments/{id}.
type PaymentDocumentRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.IPaymentRepository = (*PaymentDocumentRepository)(nil)

func NewPaymentDocumentRepository(store interfaces.IDocumentStore) *PaymentDocumentRepository {
	return &PaymentDocumentRepository{store: store}
}

func (r *PaymentDocumentRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	fields, err := toFields(p)
	if err != nil {
		return entities.Payment{}, err
	}
	if err := r.store.Set(ctx, paymentPath(p.BookingID, p.ID), fields, false); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDocumentRepository) ListByBookingID(ctx context.Context, bookingID string) ([]entities.Payment, error) {
	docs, err := r.store.List(ctx, paymentCollection(bookingID))
	if err != nil {
		return nil, err
	}
	items := make([]entities.Payment, 0, len(docs))
	for _, doc := range docs {
		var p entities.Payment
		if err := fromFields(doc, &p); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.Before(items[j].Date) })
	return items, nil
}
