package boundary

import (
	"errors"
	"fmt"
)

// State is the inclusion state of one boundary.
type State uint8

const (
	// Included boundaries take part in correction.
	Included State = iota
	// Excluded boundaries are inert.
	Excluded
	// Active is a visual variant of Included.
	Active
	// DelayedActive marks a press awaiting release; it counts as included.
	DelayedActive
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Included:
		return "included"
	case Excluded:
		return "excluded"
	case Active:
		return "active"
	case DelayedActive:
		return "delayed-active"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Included reports whether boundaries in state s participate in correction.
func (s State) Included() bool {
	return s != Excluded
}

// Event is an operation requested on a boundary.
type Event uint8

const (
	EventInclude Event = iota
	EventExclude
	EventActivate
	EventDelayedActivate
	EventDeactivate
)

// String returns the operation name.
func (e Event) String() string {
	switch e {
	case EventInclude:
		return "include"
	case EventExclude:
		return "exclude"
	case EventActivate:
		return "activate"
	case EventDelayedActivate:
		return "delayed-activate"
	case EventDeactivate:
		return "deactivate"
	default:
		return fmt.Sprintf("event(%d)", uint8(e))
	}
}

// ErrInvalidTransition is returned when an event is not legal in the
// current state.
var ErrInvalidTransition = errors.New("invalid boundary state transition")

// TransitionError describes a rejected transition.
type TransitionError struct {
	Slot  int
	From  State
	Event Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("boundary %d: cannot %s while %s", e.Slot, e.Event, e.From)
}

// Is matches [ErrInvalidTransition].
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// effect is the side effect of a transition.
type effect uint8

const (
	// noop leaves the state untouched.
	noop effect = iota
	// silent changes the state without a selection notification.
	silent
	// notify changes the state and fires selection listeners.
	notify
	// invalid rejects the event.
	invalid
)

type transition struct {
	next   State
	effect effect
}

// transitions is indexed by [State][Event].
//
// Deactivating an Active boundary re-includes it and notifies, even though
// the selection is unchanged. Deactivating a pending press completes it.
var transitions = [4][5]transition{
	Included: {
		EventInclude:         {Included, notify},
		EventExclude:         {Excluded, notify},
		EventActivate:        {Active, silent},
		EventDelayedActivate: {DelayedActive, silent},
		EventDeactivate:      {Included, noop},
	},
	Excluded: {
		EventInclude:         {Included, notify},
		EventExclude:         {Excluded, notify},
		EventActivate:        {Excluded, invalid},
		EventDelayedActivate: {Excluded, noop},
		EventDeactivate:      {Excluded, noop},
	},
	Active: {
		EventInclude:         {Included, notify},
		EventExclude:         {Excluded, notify},
		EventActivate:        {Active, invalid},
		EventDelayedActivate: {Active, noop},
		EventDeactivate:      {Included, notify},
	},
	DelayedActive: {
		EventInclude:         {Included, notify},
		EventExclude:         {Excluded, notify},
		EventActivate:        {Active, silent},
		EventDelayedActivate: {DelayedActive, noop},
		EventDeactivate:      {Active, silent},
	},
}

// next looks up the transition for (from, ev).
func next(from State, ev Event) transition {
	if int(from) >= len(transitions) || int(ev) >= len(transitions[0]) {
		return transition{next: from, effect: invalid}
	}

	return transitions[from][ev]
}
