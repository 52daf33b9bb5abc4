package request

import "testing"

func TestCreateBookingRequest_ToEntity(t *testing.T) {
	hours := 2
	r := CreateBookingRequest{
		CustomerID:    " cust-1 ",
		Date:          " 2026-05-04 ",
		StartTime:     "09:00",
		EndTime:       "11:00",
		Hours:         &hours,
		Professionals: 3,
		TotalAmount:   150,
		ZoneID:        "zone-a",
	}

	b := r.ToEntity()
	if b.CustomerID != "cust-1" || b.Date != "2026-05-04" {
		t.Fatalf("expected trimmed ids, got %+v", b)
	}
	if b.Hours != 2 || b.Professionals != 3 || b.TotalAmount != 150 || b.ZoneID != "zone-a" {
		t.Fatalf("unexpected fields: %+v", b)
	}
	if b.ID != "" || b.AssignedTo != "" || len(b.AssignedCrews) != 0 {
		t.Fatalf("assignment must not be set from the request: %+v", b)
	}
}

func TestEditBookingRequest_ToChanges(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if !(EditBookingRequest{}).IsEmpty() {
			t.Fatalf("expected empty request")
		}
	})

	t.Run("partial", func(t *testing.T) {
		date := " 2026-06-01 "
		total := 300.0
		r := EditBookingRequest{Date: &date, TotalAmount: &total}
		if r.IsEmpty() {
			t.Fatalf("expected non-empty request")
		}

		c := r.ToChanges()
		if c.Date == nil || *c.Date != "2026-06-01" {
			t.Fatalf("expected trimmed date, got %v", c.Date)
		}
		if c.TotalAmount == nil || *c.TotalAmount != 300 {
			t.Fatalf("expected total 300, got %v", c.TotalAmount)
		}
		if c.Hours != nil || c.Professionals != nil || c.StartTime != nil {
			t.Fatalf("absent fields must stay nil: %+v", c)
		}
		if date != " 2026-06-01 " {
			t.Fatalf("request value mutated: %q", date)
		}
	})
}

func TestMoveCrewRequest_Resolve(t *testing.T) {
	from, to := MoveCrewRequest{FromCrewID: " crew-a ", ToCrewID: "crew-b "}.Resolve()
	if from != "crew-a" || to != "crew-b" {
		t.Fatalf("unexpected ids %q %q", from, to)
	}
	if got := (AssignCrewRequest{CrewID: "  "}).ResolveCrewID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
