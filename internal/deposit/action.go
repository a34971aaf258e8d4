package deposit

import "errors"

// ErrInvalidAction indicates a reconciliation action outside the closed set.
var ErrInvalidAction = errors.New("invalid reconciliation action")

// Action is the closed set of reconciliation decisions. Using a typed
// constant instead of free-form strings means invalid actions fail before any
// store access.
type Action int

const (
	// ActionApprove confirms the deposit and credits the wallet.
	ActionApprove Action = iota + 1
	// ActionReject denies the deposit and releases the pending amount.
	ActionReject
)

// ParseAction maps the wire representation onto the closed action set.
func ParseAction(s string) (Action, error) {
	switch s {
	case "approve":
		return ActionApprove, nil
	case "reject":
		return ActionReject, nil
	default:
		return 0, ErrInvalidAction
	}
}

func (a Action) String() string {
	switch a {
	case ActionApprove:
		return "approve"
	case ActionReject:
		return "reject"
	default:
		return "unknown"
	}
}

// TerminalStatus returns the request status this action commits.
func (a Action) TerminalStatus() Status {
	if a == ActionApprove {
		return StatusApproved
	}
	return StatusRejected
}

func (a Action) valid() bool {
	return a == ActionApprove || a == ActionReject
}
