package response

import (
	"time"

	"limpeza_xpto/internal/domain/entities"
)

type CrewResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	Hours       float64   `json:"hours"`
	TotalAmount float64   `json:"total_amount"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromCrew(c entities.Crew) CrewResponse {
	return CrewResponse{
		ID:          c.ID,
		Name:        c.Name,
		Hours:       c.Hours,
		TotalAmount: c.TotalAmount,
		UpdatedAt:   c.UpdatedAt,
	}
}
