// Package boundary tracks which detected chip transitions take part in
// stitching.
//
// Every detected boundary gets one slot in a [Registry], created in the
// [Included] state. An operator may exclude or re-include boundaries, which
// changes the selection handed to the corrector. Two transient states,
// [Active] and [DelayedActive], carry press/click feedback for interactive
// hosts; they count as included and never alter the selection.
//
// All transitions are driven by a single table, so an illegal transition
// (activating an excluded boundary) is rejected in one place with
// [ErrInvalidTransition].
//
// A Registry is not safe for concurrent mutation. Detection always builds a
// fresh Registry; slots are never carried across detection runs.
package boundary
