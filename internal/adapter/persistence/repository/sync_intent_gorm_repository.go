package repository

import (
	"context"
	"errors"
	"time"

	"limpeza_xpto/internal/domain/entities"
	"limpeza_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// syncIntentModel is the Postgres row of the outbox (table sync_intents).
type syncIntentModel struct {
	ID            string         `gorm:"primaryKey;type:varchar(64)"`
	Kind          string         `gorm:"type:varchar(32);not null"`
	BookingID     string         `gorm:"type:varchar(64);index;not null"`
	CustomerID    string         `gorm:"type:varchar(64)"`
	Status        string         `gorm:"type:varchar(32)"`
	Fields        map[string]any `gorm:"serializer:json"`
	CrewID        string         `gorm:"type:varchar(64)"`
	HoursDelta    float64
	AmountDelta   float64
	State         string `gorm:"type:varchar(16);index:idx_sync_intents_due,priority:1;not null"`
	Attempts      int
	LastError     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	NextAttemptAt time.Time `gorm:"index:idx_sync_intents_due,priority:2"`
}

func (syncIntentModel) TableName() string { return "sync_intents" }

// SyncIntentGormRepository keeps the outbox in Postgres when
// OUTBOX_POSTGRES_DSN is configured.
type SyncIntentGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ISyncIntentRepository = (*SyncIntentGormRepository)(nil)

func NewSyncIntentGormRepository(db *gorm.DB) *SyncIntentGormRepository {
	return &SyncIntentGormRepository{db: db}
}

func (r *SyncIntentGormRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&syncIntentModel{})
}

func (r *SyncIntentGormRepository) Create(ctx context.Context, i entities.SyncIntent) (entities.SyncIntent, error) {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	m := toSyncIntentModel(i)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.SyncIntent{}, err
	}
	return i, nil
}

// Save deletes the row once the intent has been replayed. Failed rows stay for
// inspection and fall outside the due index.
func (r *SyncIntentGormRepository) Save(ctx context.Context, i entities.SyncIntent) error {
	if i.State == entities.IntentStateDone {
		return r.db.WithContext(ctx).Delete(&syncIntentModel{}, "id = ?", i.ID).Error
	}
	m := toSyncIntentModel(i)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *SyncIntentGormRepository) GetByID(ctx context.Context, id string) (entities.SyncIntent, error) {
	var m syncIntentModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.SyncIntent{}, nil
	}
	if err != nil {
		return entities.SyncIntent{}, err
	}
	return fromSyncIntentModel(m), nil
}

func (r *SyncIntentGormRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]entities.SyncIntent, error) {
	var rows []syncIntentModel
	q := r.db.WithContext(ctx).
		Where("state = ? AND next_attempt_at <= ?", string(entities.IntentStatePending), now).
		Order("created_at ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entities.SyncIntent, 0, len(rows))
	for _, m := range rows {
		out = append(out, fromSyncIntentModel(m))
	}
	return out, nil
}

func toSyncIntentModel(i entities.SyncIntent) syncIntentModel {
	return syncIntentModel{
		ID:            i.ID,
		Kind:          string(i.Kind),
		BookingID:     i.BookingID,
		CustomerID:    i.CustomerID,
		Status:        string(i.Status),
		Fields:        i.Fields,
		CrewID:        i.CrewID,
		HoursDelta:    i.HoursDelta,
		AmountDelta:   i.AmountDelta,
		State:         string(i.State),
		Attempts:      i.Attempts,
		LastError:     i.LastError,
		CreatedAt:     i.CreatedAt.UTC(),
		UpdatedAt:     i.UpdatedAt.UTC(),
		NextAttemptAt: i.NextAttemptAt.UTC(),
	}
}

func fromSyncIntentModel(m syncIntentModel) entities.SyncIntent {
	return entities.SyncIntent{
		ID:            m.ID,
		Kind:          entities.SyncIntentKind(m.Kind),
		BookingID:     m.BookingID,
		CustomerID:    m.CustomerID,
		Status:        entities.AssignmentStatus(m.Status),
		Fields:        m.Fields,
		CrewID:        m.CrewID,
		HoursDelta:    m.HoursDelta,
		AmountDelta:   m.AmountDelta,
		State:         entities.SyncIntentState(m.State),
		Attempts:      m.Attempts,
		LastError:     m.LastError,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		NextAttemptAt: m.NextAttemptAt,
	}
}
