package entities

// AssignmentStatus is the crew assignment lifecycle of a booking.
//
// unassigned -> partially_assigned -> assigned -> confirm, with drop reachable
// from every non-terminal state. drop is terminal.
type AssignmentStatus string

const (
	AssignmentStatusUnassigned        AssignmentStatus = "unassigned"
	AssignmentStatusPartiallyAssigned AssignmentStatus = "partially_assigned"
	AssignmentStatusAssigned          AssignmentStatus = "assigned"
	AssignmentStatusConfirm           AssignmentStatus = "confirm"
	AssignmentStatusDrop              AssignmentStatus = "drop"
)

// AssignmentStatuses lists every status in lifecycle order.
var AssignmentStatuses = []AssignmentStatus{
	AssignmentStatusUnassigned,
	AssignmentStatusPartiallyAssigned,
	AssignmentStatusAssigned,
	AssignmentStatusConfirm,
	AssignmentStatusDrop,
}

func (s AssignmentStatus) IsValid() bool {
	for _, st := range AssignmentStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func (s AssignmentStatus) IsTerminal() bool {
	return s == AssignmentStatusDrop
}

// AssignmentAction names an operation of the assignment state machine.
type AssignmentAction string

const (
	ActionAssign           AssignmentAction = "assign"
	ActionUnassign         AssignmentAction = "unassign"
	ActionConfirm          AssignmentAction = "confirm"
	ActionUnconfirm        AssignmentAction = "unconfirm"
	ActionMove             AssignmentAction = "move"
	ActionConfirmAll       AssignmentAction = "confirm_all"
	ActionMoveToUnassigned AssignmentAction = "move_to_unassigned"
	ActionDrop             AssignmentAction = "drop"
)

var AssignmentActions = []AssignmentAction{
	ActionAssign,
	ActionUnassign,
	ActionConfirm,
	ActionUnconfirm,
	ActionMove,
	ActionConfirmAll,
	ActionMoveToUnassigned,
	ActionDrop,
}

// AssignmentTransitions is the explicit table of which action may start from
// which status. Per-crew preconditions (already assigned, not confirmed,
// capacity) are checked by the caller on top of this table.
var AssignmentTransitions = map[AssignmentAction]map[AssignmentStatus]bool{
	ActionAssign: {
		AssignmentStatusUnassigned:        true,
		AssignmentStatusPartiallyAssigned: true,
	},
	ActionUnassign: {
		AssignmentStatusPartiallyAssigned: true,
		AssignmentStatusAssigned:          true,
		AssignmentStatusConfirm:           true,
	},
	ActionConfirm: {
		AssignmentStatusPartiallyAssigned: true,
		AssignmentStatusAssigned:          true,
	},
	ActionUnconfirm: {
		AssignmentStatusPartiallyAssigned: true,
		AssignmentStatusAssigned:          true,
		AssignmentStatusConfirm:           true,
	},
	ActionMove: {
		AssignmentStatusPartiallyAssigned: true,
		AssignmentStatusAssigned:          true,
		AssignmentStatusConfirm:           true,
	},
	ActionConfirmAll: {
		AssignmentStatusPartiallyAssigned: true,
		AssignmentStatusAssigned:          true,
	},
	ActionMoveToUnassigned: {
		AssignmentStatusUnassigned:        true,
		AssignmentStatusPartiallyAssigned: true,
		AssignmentStatusAssigned:          true,
		AssignmentStatusConfirm:           true,
	},
	ActionDrop: {
		AssignmentStatusUnassigned:        true,
		AssignmentStatusPartiallyAssigned: true,
		AssignmentStatusAssigned:          true,
		AssignmentStatusConfirm:           true,
	},
}

// CanApply reports whether action is allowed from status. An empty status is
// treated as unassigned, which is how bookings created before the status field
// existed are stored.
func CanApply(action AssignmentAction, from AssignmentStatus) bool {
	if from == "" {
		from = AssignmentStatusUnassigned
	}
	return AssignmentTransitions[action][from]
}

// DeriveStatus computes the assignment status from the crew counts.
func DeriveStatus(assigned, needed, confirmed int) AssignmentStatus {
	switch {
	case assigned == 0:
		return AssignmentStatusUnassigned
	case confirmed == needed:
		return AssignmentStatusConfirm
	case assigned < needed:
		return AssignmentStatusPartiallyAssigned
	default:
		return AssignmentStatusAssigned
	}
}
