package entities

import "time"

// PaymentState tracks how much of a booking's total has been collected.
type PaymentState string

const (
	PaymentStateDue     PaymentState = "due"
	PaymentStatePartial PaymentState = "partial"
	PaymentStatePaid    PaymentState = "paid"
)

// Booking is the master booking record, stored at bookings/{id}.
//
// Field names are the document field names shared with the customer mirror.
// AssignedTo is the single-crew legacy field; an empty string is stored as null.
type Booking struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Hours         int    `json:"hours"`
	Professionals int    `json:"professionals"`
	ServiceType   string `json:"serviceType,omitempty"`
	Address       string `json:"address,omitempty"`
	ZoneID        string `json:"zoneId,omitempty"`
	Notes         string `json:"notes,omitempty"`

	AssignedTo             string           `json:"assignedTo"`
	AssignedCrews          []string         `json:"assignedCrews"`
	ConfirmedCrews         []string         `json:"confirmedCrews"`
	ProfessionalsAssigned  int              `json:"professionalsAssigned"`
	ProfessionalsConfirmed int              `json:"professionalsConfirmed"`
	AssignedStatus         AssignmentStatus `json:"assignedStatus"`

	TotalAmount   float64      `json:"totalAmount"`
	DueBalance    float64      `json:"dueBalance"`
	PaymentStatus PaymentState `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsLegacySingleCrew reports whether the booking still carries its crew only in
// the legacy assignedTo field.
func (b Booking) IsLegacySingleCrew() bool {
	return b.Professionals == 1 && len(b.AssignedCrews) == 0 && b.AssignedTo != ""
}

// AssignedCount is the number of assigned crews, counting the legacy field as one.
func (b Booking) AssignedCount() int {
	if b.IsLegacySingleCrew() {
		return 1
	}
	return len(b.AssignedCrews)
}

func (b Booking) IsAssigned(crewID string) bool {
	if b.IsLegacySingleCrew() {
		return b.AssignedTo == crewID
	}
	return containsCrew(b.AssignedCrews, crewID)
}

func (b Booking) IsConfirmed(crewID string) bool {
	return containsCrew(b.ConfirmedCrews, crewID)
}

// LedgerCrews are the crews whose share is currently booked in their ledgers.
// A legacy single-crew booking in confirm status counts its assignedTo crew.
func (b Booking) LedgerCrews() []string {
	if b.IsLegacySingleCrew() && b.AssignedStatus == AssignmentStatusConfirm {
		return []string{b.AssignedTo}
	}
	return crewList(b.ConfirmedCrews)
}

// CrewShare is each crew's portion of the booking total.
func (b Booking) CrewShare() float64 {
	if b.Professionals < 1 {
		return 0
	}
	return b.TotalAmount / float64(b.Professionals)
}

// DerivedStatus applies the status rule to the current crew sets. Single-crew
// bookings keep an explicit assigned/confirm toggle.
func (b Booking) DerivedStatus() AssignmentStatus {
	if b.AssignedStatus == AssignmentStatusDrop {
		return AssignmentStatusDrop
	}
	if b.IsLegacySingleCrew() {
		if b.AssignedStatus == AssignmentStatusConfirm {
			return AssignmentStatusConfirm
		}
		return AssignmentStatusAssigned
	}
	return DeriveStatus(b.AssignedCount(), b.Professionals, len(b.ConfirmedCrews))
}

// SyncCounts recomputes the assigned/confirmed counters from the crew sets.
func (b *Booking) SyncCounts() {
	b.ProfessionalsAssigned = b.AssignedCount()
	b.ProfessionalsConfirmed = len(b.ConfirmedCrews)
}

// AssignmentFields is the complete crew-state delta carried with every status sync.
func (b Booking) AssignmentFields() map[string]any {
	var assignedTo any
	if b.AssignedTo != "" {
		assignedTo = b.AssignedTo
	}
	return map[string]any{
		"assignedTo":             assignedTo,
		"assignedCrews":          crewList(b.AssignedCrews),
		"confirmedCrews":         crewList(b.ConfirmedCrews),
		"professionalsAssigned":  b.ProfessionalsAssigned,
		"professionalsConfirmed": b.ProfessionalsConfirmed,
	}
}

// FinancialFields is the payment delta synced to the mirror.
func (b Booking) FinancialFields() map[string]any {
	return map[string]any{
		"totalAmount":   b.TotalAmount,
		"dueBalance":    b.DueBalance,
		"paymentStatus": string(b.PaymentStatus),
	}
}

// DerivePaymentState maps a due balance onto due/partial/paid.
func DerivePaymentState(totalAmount, dueBalance float64) PaymentState {
	switch {
	case dueBalance <= 0:
		return PaymentStatePaid
	case dueBalance < totalAmount:
		return PaymentStatePartial
	default:
		return PaymentStateDue
	}
}

// AddCrew appends crewID to the set if missing.
func AddCrew(crews []string, crewID string) []string {
	if containsCrew(crews, crewID) {
		return crews
	}
	return append(crewList(crews), crewID)
}

// RemoveCrew returns a copy of crews without crewID.
func RemoveCrew(crews []string, crewID string) []string {
	out := make([]string, 0, len(crews))
	for _, c := range crews {
		if c != crewID {
			out = append(out, c)
		}
	}
	return out
}

func containsCrew(crews []string, crewID string) bool {
	for _, c := range crews {
		if c == crewID {
			return true
		}
	}
	return false
}

func crewList(crews []string) []string {
	if crews == nil {
		return []string{}
	}
	out := make([]string, len(crews))
	copy(out, crews)
	return out
}
