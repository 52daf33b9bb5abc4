package repository

import (
	"context"
	"sort"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// SyncIntentDocumentRepository keeps pending intents in the document store at
// syncIntents/{id}. Replayed intents are deleted and intents that gave up move
// to failedSyncIntents/{id}, so a sweep only reads work still outstanding.
type SyncIntentDocumentRepository struct {
	store interfaces.IDocumentStore
}

var _ interfaces.ISyncIntentRepository = (*SyncIntentDocumentRepository)(nil)

func NewSyncIntentDocumentRepository(store interfaces.IDocumentStore) *SyncIntentDocumentRepository {
	return &SyncIntentDocumentRepository{store: store}
}

func (r *SyncIntentDocumentRepository) Create(ctx context.Context, i entities.SyncIntent) (entities.SyncIntent, error) {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if err := r.Save(ctx, i); err != nil {
		return entities.SyncIntent{}, err
	}
	return i, nil
}

func (r *SyncIntentDocumentRepository) Save(ctx context.Context, i entities.SyncIntent) error {
	switch i.State {
	case entities.IntentStateDone:
		return r.store.Delete(ctx, syncIntentPath(i.ID))
	case entities.IntentStateFailed:
		fields, err := toFields(i)
		if err != nil {
			return err
		}
		if err := r.store.Set(ctx, failedSyncIntentPath(i.ID), fields, false); err != nil {
			return err
		}
		return r.store.Delete(ctx, syncIntentPath(i.ID))
	}
	fields, err := toFields(i)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, syncIntentPath(i.ID), fields, false)
}

// GetByID looks in the pending collection, then the failed one. A replayed
// intent is gone and comes back as the zero value.
func (r *SyncIntentDocumentRepository) GetByID(ctx context.Context, id string) (entities.SyncIntent, error) {
	doc, err := r.store.Get(ctx, syncIntentPath(id))
	if err != nil {
		return entities.SyncIntent{}, err
	}
	if doc == nil {
		doc, err = r.store.Get(ctx, failedSyncIntentPath(id))
		if err != nil {
			return entities.SyncIntent{}, err
		}
	}
	if doc == nil {
		return entities.SyncIntent{}, nil
	}
	var i entities.SyncIntent
	if err := fromFields(doc, &i); err != nil {
		return entities.SyncIntent{}, err
	}
	return i, nil
}

func (r *SyncIntentDocumentRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]entities.SyncIntent, error) {
	docs, err := r.store.List(ctx, syncIntentsCollection)
	if err != nil {
		return nil, err
	}
	due := make([]entities.SyncIntent, 0)
	for _, doc := range docs {
		var i entities.SyncIntent
		if err := fromFields(doc, &i); err != nil {
			return nil, err
		}
		if i.State == entities.IntentStatePending && !i.NextAttemptAt.After(now) {
			due = append(due, i)
		}
	}
	sort.SliceStable(due, func(a, b int) bool { return due[a].CreatedAt.Before(due[b].CreatedAt) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}
