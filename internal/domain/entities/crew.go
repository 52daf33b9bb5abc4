package entities

import "time"

// Crew is a service professional's ledger, stored at crews/{id}.
// Hours and TotalAmount accrue only on confirmed assignments.
type Crew struct {
	ID          string    `json:"id"`
	Name        string    `json:"name,omitempty"`
	Hours       float64   `json:"hours"`
	TotalAmount float64   `json:"totalAmount"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Apply adds a signed share to the ledger, flooring both totals at zero.
func (c Crew) Apply(hours, amount float64) Crew {
	c.Hours = floorZero(c.Hours + hours)
	c.TotalAmount = floorZero(c.TotalAmount + amount)
	return c
}

func floorZero(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
