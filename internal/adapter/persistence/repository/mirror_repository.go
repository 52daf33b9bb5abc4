package repository

import (
	"context"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"
)

// MirrorDocumentRepository persists mirrors at customers/{customerId}/bookings/{id}.
type MirrorDocumentRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.IMirrorRepository = (*MirrorDocumentRepository)(nil)

func NewMirrorDocumentRepository(store interfaces.IDocumentStore) *MirrorDocumentRepository {
	return &MirrorDocumentRepository{store: store}
}

func (r *MirrorDocumentRepository) Get(ctx context.Context, customerID, bookingID string) (entities.MirrorBooking, error) {
	doc, err := r.store.Get(ctx, mirrorPath(customerID, bookingID))
	if err != nil {
		return entities.MirrorBooking{}, err
	}
	if doc == nil {
		return entities.MirrorBooking{}, nil
	}
	var m entities.MirrorBooking
	if err := fromFields(doc, &m); err != nil {
		return entities.MirrorBooking{}, err
	}
	if m.ID == "" {
		m.ID = bookingID
	}
	return m, nil
}

// Put overwrites the whole mirror document.
func (r *MirrorDocumentRepository) Put(ctx context.Context, m entities.MirrorBooking) error {
	fields, err := toFields(m)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, mirrorPath(m.CustomerID, m.ID), fields, false)
}

func (r *MirrorDocumentRepository) Update(ctx context.Context, customerID, bookingID string, fields map[string]any) error {
	return r.store.Update(ctx, mirrorPath(customerID, bookingID), fields)
}

func (r *MirrorDocumentRepository) Delete(ctx context.Context, customerID, bookingID string) error {
	return r.store.Delete(ctx, mirrorPath(customerID, bookingID))
}

func (r *MirrorDocumentRepository) ListByCustomer(ctx context.Context, customerID string) ([]entities.MirrorBooking, error) {
	docs, err := r.store.List(ctx, mirrorCollection(customerID))
	if err != nil {
		return nil, err
	}
	items := make([]entities.MirrorBooking, 0, len(docs))
	for _, doc := range docs {
		var m entities.MirrorBooking
		if err := fromFields(doc, &m); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, nil
}
