package interfaces

//go:generate mockgen -source=crew_repository_interface.go -destination=mocks/crew_repository_interface_mock.go -package=mock_interfaces

import (
	"context"
	"limpeza_xpto/internal/domain/entities"
)

// ICrewRepository persists crew ledgers. UpdateLedger writes the new totals
// and returns ErrDocumentNotFound when the crew is absent.
type ICrewRepository interface {
	Create(ctx context.Context, c entities.Crew) (entities.Crew, error)
	GetByID(ctx context.Context, id string) (entities.Crew, error)
	UpdateLedger(ctx context.Context, id string, hours, totalAmount float64) error
}
