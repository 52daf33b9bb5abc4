package entities

import "testing"

func TestAssignmentTransitions_Exhaustive(t *testing.T) {
	u, p, a, c, d := AssignmentStatusUnassigned, AssignmentStatusPartiallyAssigned, AssignmentStatusAssigned, AssignmentStatusConfirm, AssignmentStatusDrop
	allowed := map[AssignmentAction][]AssignmentStatus{
		ActionAssign:           {u, p},
		ActionUnassign:         {p, a, c},
		ActionConfirm:          {p, a},
		ActionUnconfirm:        {p, a, c},
		ActionMove:             {p, a, c},
		ActionConfirmAll:       {p, a},
		ActionMoveToUnassigned: {u, p, a, c},
		ActionDrop:             {u, p, a, c},
	}

	if len(AssignmentTransitions) != len(AssignmentActions) {
		t.Fatalf("expected a row for every action, got %d rows", len(AssignmentTransitions))
	}

	for _, action := range AssignmentActions {
		want := map[AssignmentStatus]bool{}
		for _, st := range allowed[action] {
			want[st] = true
		}
		for _, from := range AssignmentStatuses {
			t.Run(string(action)+" from "+string(from), func(t *testing.T) {
				if got := CanApply(action, from); got != want[from] {
					t.Fatalf("CanApply(%s, %s) = %v, want %v", action, from, got, want[from])
				}
			})
		}
		if CanApply(action, d) {
			t.Fatalf("drop must be terminal, %s allowed", action)
		}
	}
}

func TestCanApply_EmptyStatusIsUnassigned(t *testing.T) {
	if !CanApply(ActionAssign, "") {
		t.Fatalf("expected assign from empty status")
	}
	if CanApply(ActionUnassign, "") {
		t.Fatalf("expected unassign from empty status to be rejected")
	}
}

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		assigned, needed, confirmed int
		want                        AssignmentStatus
	}{
		{0, 3, 0, AssignmentStatusUnassigned},
		{1, 3, 0, AssignmentStatusPartiallyAssigned},
		{2, 3, 1, AssignmentStatusPartiallyAssigned},
		{3, 3, 0, AssignmentStatusAssigned},
		{3, 3, 2, AssignmentStatusAssigned},
		{3, 3, 3, AssignmentStatusConfirm},
		{2, 2, 2, AssignmentStatusConfirm},
		{1, 1, 0, AssignmentStatusAssigned},
		{1, 1, 1, AssignmentStatusConfirm},
	}
	for _, tc := range cases {
		if got := DeriveStatus(tc.assigned, tc.needed, tc.confirmed); got != tc.want {
			t.Fatalf("DeriveStatus(%d,%d,%d) = %s, want %s", tc.assigned, tc.needed, tc.confirmed, got, tc.want)
		}
	}
}

func TestAssignmentStatus_IsValid(t *testing.T) {
	for _, st := range AssignmentStatuses {
		if !st.IsValid() {
			t.Fatalf("expected %s valid", st)
		}
	}
	if AssignmentStatus("pending").IsValid() {
		t.Fatalf("expected unknown status invalid")
	}
	if !AssignmentStatusDrop.IsTerminal() || AssignmentStatusConfirm.IsTerminal() {
		t.Fatalf("only drop is terminal")
	}
}
