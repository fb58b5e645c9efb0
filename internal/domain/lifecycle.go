package domain

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusApproved  OrderStatus = "approved"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
	StatusVoid      OrderStatus = "void"
)

type OrderActionType string

const (
	ActionPlace    OrderActionType = "place"
	ActionApprove  OrderActionType = "approve"
	ActionPrepare  OrderActionType = "preparing"
	ActionReady    OrderActionType = "ready"
	ActionComplete OrderActionType = "complete"
	ActionCancel   OrderActionType = "cancel"
	ActionVoid     OrderActionType = "void"
	ActionRefund   OrderActionType = "refund"
	ActionDiscount OrderActionType = "discount"
)

// transitions is the single authoritative table every caller consults.
// An action maps the current status to the next one; actions absent for a
// status are rejected. Approval is optional: the cashier flow may send an
// order straight from pending to preparing.
var transitions = map[OrderStatus]map[OrderActionType]OrderStatus{
	StatusPending: {
		ActionApprove: StatusApproved,
		ActionPrepare: StatusPreparing,
		ActionCancel:  StatusCancelled,
		ActionVoid:    StatusVoid,
	},
	StatusApproved: {
		ActionPrepare: StatusPreparing,
		ActionCancel:  StatusCancelled,
		ActionVoid:    StatusVoid,
	},
	StatusPreparing: {
		ActionReady: StatusReady,
		ActionVoid:  StatusVoid,
	},
	StatusReady: {
		ActionComplete: StatusCompleted,
		ActionVoid:     StatusVoid,
	},
	StatusCompleted: {},
	StatusCancelled: {},
	StatusVoid:      {},
}

// recordOnly actions never move the status; they are legal on the listed
// statuses and only append audit rows.
var recordOnly = map[OrderActionType]map[OrderStatus]bool{
	ActionRefund: {
		StatusReady:     true,
		StatusCompleted: true,
	},
	ActionDiscount: {
		StatusPending:   true,
		StatusApproved:  true,
		StatusPreparing: true,
		StatusReady:     true,
		StatusCompleted: true,
	},
}

// NextStatus resolves an action against the current status. The second
// return reports whether the action is legal at all; record-only actions
// return the unchanged status.
func NextStatus(current OrderStatus, action OrderActionType) (OrderStatus, bool) {
	if allowed, ok := recordOnly[action]; ok {
		if allowed[current] {
			return current, true
		}
		return current, false
	}
	next, ok := transitions[current][action]
	if !ok {
		return current, false
	}
	return next, true
}

// ChangesStatus reports whether the action moves the order to a new status.
func ChangesStatus(action OrderActionType) bool {
	_, ok := recordOnly[action]
	return !ok
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusVoid
}

// ActiveStatuses are the statuses shown on the order-management screen.
func ActiveStatuses() []OrderStatus {
	return []OrderStatus{StatusPending, StatusApproved, StatusPreparing, StatusReady}
}

func ValidStatus(s OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}
