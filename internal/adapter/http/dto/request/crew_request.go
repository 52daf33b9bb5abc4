package request

import "strings"

type AssignCrewRequest struct {
	CrewID string `json:"crew_id" binding:"required"`
}

func (r AssignCrewRequest) ResolveCrewID() string {
	return strings.TrimSpace(r.CrewID)
}

// MoveCrewRequest replaces from_crew_id with to_crew_id in place, keeping the
// confirmation if the old crew was confirmed.
type MoveCrewRequest struct {
	FromCrewID string `json:"from_crew_id" binding:"required"`
	ToCrewID   string `json:"to_crew_id" binding:"required"`
}

func (r MoveCrewRequest) Resolve() (string, string) {
	return strings.TrimSpace(r.FromCrewID), strings.TrimSpace(r.ToCrewID)
}
