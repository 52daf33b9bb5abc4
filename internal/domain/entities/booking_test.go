package entities

import (
	"reflect"
	"testing"
	"time"
)

func TestBooking_LegacySingleCrew(t *testing.T) {
	b := Booking{Professionals: 1, AssignedTo: "c1", AssignedStatus: AssignmentStatusConfirm}

	if !b.IsLegacySingleCrew() {
		t.Fatalf("expected legacy booking")
	}
	if b.AssignedCount() != 1 || !b.IsAssigned("c1") || b.IsAssigned("c2") {
		t.Fatalf("legacy assignedTo should count as one assigned crew")
	}
	if got := b.DerivedStatus(); got != AssignmentStatusConfirm {
		t.Fatalf("expected legacy confirm toggle kept, got %s", got)
	}

	b.AssignedStatus = AssignmentStatusAssigned
	if got := b.DerivedStatus(); got != AssignmentStatusAssigned {
		t.Fatalf("expected assigned, got %s", got)
	}

	b.AssignedCrews = []string{"c1"}
	if b.IsLegacySingleCrew() {
		t.Fatalf("migrated booking is not legacy")
	}
}

func TestBooking_DerivedStatus(t *testing.T) {
	t.Run("multi crew follows the rule", func(t *testing.T) {
		b := Booking{Professionals: 3, AssignedCrews: []string{"c1", "c2"}, ConfirmedCrews: []string{"c1"}}
		if got := b.DerivedStatus(); got != AssignmentStatusPartiallyAssigned {
			t.Fatalf("expected partially_assigned, got %s", got)
		}
	})

	t.Run("drop stays drop", func(t *testing.T) {
		b := Booking{Professionals: 2, AssignedStatus: AssignmentStatusDrop}
		if got := b.DerivedStatus(); got != AssignmentStatusDrop {
			t.Fatalf("expected drop, got %s", got)
		}
	})
}

func TestBooking_AssignmentFields(t *testing.T) {
	b := Booking{AssignedCrews: []string{"c1"}}
	b.SyncCounts()
	fields := b.AssignmentFields()

	if fields["assignedTo"] != nil {
		t.Fatalf("empty assignedTo should be null, got %v", fields["assignedTo"])
	}
	if !reflect.DeepEqual(fields["assignedCrews"], []string{"c1"}) {
		t.Fatalf("unexpected assignedCrews: %v", fields["assignedCrews"])
	}
	if !reflect.DeepEqual(fields["confirmedCrews"], []string{}) {
		t.Fatalf("expected empty confirmedCrews, got %v", fields["confirmedCrews"])
	}
	if fields["professionalsAssigned"] != 1 || fields["professionalsConfirmed"] != 0 {
		t.Fatalf("unexpected counts: %v", fields)
	}

	b.AssignedCrews[0] = "mutated"
	if fields["assignedCrews"].([]string)[0] != "c1" {
		t.Fatalf("fields must not alias the booking slice")
	}
}

func TestBooking_CrewShare(t *testing.T) {
	if got := (Booking{TotalAmount: 150, Professionals: 3}).CrewShare(); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}
	if got := (Booking{TotalAmount: 150}).CrewShare(); got != 0 {
		t.Fatalf("expected 0 for zero professionals, got %v", got)
	}
}

func TestDerivePaymentState(t *testing.T) {
	cases := []struct {
		total, due float64
		want       PaymentState
	}{
		{100, 100, PaymentStateDue},
		{100, 40, PaymentStatePartial},
		{100, 0, PaymentStatePaid},
		{0, 0, PaymentStatePaid},
	}
	for _, tc := range cases {
		if got := DerivePaymentState(tc.total, tc.due); got != tc.want {
			t.Fatalf("DerivePaymentState(%v,%v) = %s, want %s", tc.total, tc.due, got, tc.want)
		}
	}
}

func TestCrewSetHelpers(t *testing.T) {
	crews := AddCrew(nil, "c1")
	crews = AddCrew(crews, "c2")
	crews = AddCrew(crews, "c1")
	if !reflect.DeepEqual(crews, []string{"c1", "c2"}) {
		t.Fatalf("unexpected set: %v", crews)
	}
	if got := RemoveCrew(crews, "c1"); !reflect.DeepEqual(got, []string{"c2"}) {
		t.Fatalf("unexpected remove result: %v", got)
	}
	if got := RemoveCrew(crews, "missing"); len(got) != 2 {
		t.Fatalf("removing a missing crew should keep the set, got %v", got)
	}
}

func TestCrew_ApplyFloorsAtZero(t *testing.T) {
	c := Crew{ID: "c1", Hours: 2, TotalAmount: 50}
	c = c.Apply(-4, -100)
	if c.Hours != 0 || c.TotalAmount != 0 {
		t.Fatalf("expected floor at zero, got %+v", c)
	}
	c = c.Apply(3, 25.5)
	if c.Hours != 3 || c.TotalAmount != 25.5 {
		t.Fatalf("unexpected ledger: %+v", c)
	}
}

func TestNewMirror(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	b := Booking{ID: "b1", CustomerID: "u1", AssignedCrews: []string{"c1"}}
	m := NewMirror(b, now)
	if m.ID != "b1" || !m.MirroredAt.Equal(now) || !m.LastSyncAt.Equal(now) {
		t.Fatalf("unexpected mirror: %+v", m)
	}
	if m.ConfirmedCrews == nil {
		t.Fatalf("expected non-nil confirmedCrews")
	}
	b.AssignedCrews[0] = "changed"
	if m.AssignedCrews[0] != "c1" {
		t.Fatalf("mirror must not alias the master slice")
	}
}

func TestBooking_LedgerCrews(t *testing.T) {
	legacy := Booking{Professionals: 1, AssignedTo: "c1", AssignedStatus: AssignmentStatusConfirm}
	if got := legacy.LedgerCrews(); !reflect.DeepEqual(got, []string{"c1"}) {
		t.Fatalf("expected legacy confirmed crew, got %v", got)
	}
	legacy.AssignedStatus = AssignmentStatusAssigned
	if got := legacy.LedgerCrews(); len(got) != 0 {
		t.Fatalf("unconfirmed legacy crew has no ledger share, got %v", got)
	}
	multi := Booking{Professionals: 2, AssignedCrews: []string{"c1", "c2"}, ConfirmedCrews: []string{"c2"}}
	if got := multi.LedgerCrews(); !reflect.DeepEqual(got, []string{"c2"}) {
		t.Fatalf("expected confirmed crews, got %v", got)
	}
}
