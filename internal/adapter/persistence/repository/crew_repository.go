package repository

import (
	"context"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CrewDocumentRepository persists crew ledgers at crews/{id}.
type CrewDocumentRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.ICrewRepository = (*CrewDocumentRepository)(nil)

func NewCrewDocumentRepository(store interfaces.IDocumentStore) *CrewDocumentRepository {
	return &CrewDocumentRepository{store: store}
}

func (r *CrewDocumentRepository) Create(ctx context.Context, c entities.Crew) (entities.Crew, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now().UTC()
	}
	fields, err := toFields(c)
	if err != nil {
		return entities.Crew{}, err
	}
	if err := r.store.Set(ctx, crewPath(c.ID), fields, false); err != nil {
		return entities.Crew{}, err
	}
	return c, nil
}

func (r *CrewDocumentRepository) GetByID(ctx context.Context, id string) (entities.Crew, error) {
	doc, err := r.store.Get(ctx, crewPath(id))
	if err != nil {
		return entities.Crew{}, err
	}
	if doc == nil {
		return entities.Crew{}, nil
	}
	var c entities.Crew
	if err := fromFields(doc, &c); err != nil {
		return entities.Crew{}, err
	}
	if c.ID == "" {
		c.ID = id
	}
	return c, nil
}

func (r *CrewDocumentRepository) UpdateLedger(ctx context.Context, id string, hours, totalAmount float64) error {
	return r.store.Update(ctx, crewPath(id), map[string]any{
		"hours":       hours,
		"totalAmount": totalAmount,
		"updatedAt":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}
