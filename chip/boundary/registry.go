package boundary

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// ErrNoSuchBoundary is returned for a slot outside the registry.
var ErrNoSuchBoundary = errors.New("no such boundary")

// Boundary is one detected chip transition.
type Boundary struct {
	// Index is the ordered-column gap: between columns Index and Index+1.
	Index int
	// Wavenumber is the midpoint label used for display.
	Wavenumber float64
	// State is the current inclusion state.
	State State
}

// Position is a display summary of a boundary.
type Position struct {
	Wavenumber float64
	Included   bool
}

// Listener receives the new selection after an inclusion change. Errors are
// logged and otherwise ignored.
type Listener func(selected []int) error

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for listener failures.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// WithListener registers a selection listener at construction time.
func WithListener(fn Listener) Option {
	return func(r *Registry) {
		if fn != nil {
			r.listeners = append(r.listeners, fn)
		}
	}
}

// Registry holds one state slot per detected boundary.
type Registry struct {
	slots     []Boundary
	listeners []Listener
	log       zerolog.Logger
}

// NewRegistry creates a registry with one Included slot per index.
// wavenumbers gives the display midpoint of each index; it may be nil.
func NewRegistry(indices []int, wavenumbers []float64, opts ...Option) (*Registry, error) {
	if wavenumbers != nil && len(wavenumbers) != len(indices) {
		return nil, fmt.Errorf("boundary: %d wavenumbers for %d indices", len(wavenumbers), len(indices))
	}

	r := &Registry{
		slots: make([]Boundary, len(indices)),
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	for i, idx := range indices {
		r.slots[i] = Boundary{Index: idx, State: Included}
		if wavenumbers != nil {
			r.slots[i].Wavenumber = wavenumbers[i]
		}
	}

	return r, nil
}

// OnSelectionChange registers a listener fired after every include or
// exclude.
func (r *Registry) OnSelectionChange(fn Listener) {
	if fn != nil {
		r.listeners = append(r.listeners, fn)
	}
}

// Len returns the number of boundaries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.slots)
}

// Boundary returns the boundary in slot i.
func (r *Registry) Boundary(i int) (Boundary, error) {
	if err := r.check(i); err != nil {
		return Boundary{}, err
	}

	return r.slots[i], nil
}

// State returns the state of slot i.
func (r *Registry) State(i int) (State, error) {
	b, err := r.Boundary(i)

	return b.State, err
}

// Boundaries returns a copy of all slots.
func (r *Registry) Boundaries() []Boundary {
	if r == nil {
		return nil
	}

	out := make([]Boundary, len(r.slots))
	copy(out, r.slots)

	return out
}

// Positions returns the display wavenumber and inclusion flag of every slot.
func (r *Registry) Positions() []Position {
	out := make([]Position, r.Len())
	for i := range out {
		out[i] = Position{
			Wavenumber: r.slots[i].Wavenumber,
			Included:   r.slots[i].State.Included(),
		}
	}

	return out
}

// Selected returns the ascending gap indices of all included-family
// boundaries. The result is a fresh slice the caller may keep.
func (r *Registry) Selected() []int {
	out := []int{}
	if r == nil {
		return out
	}

	for _, b := range r.slots {
		if b.State.Included() {
			out = append(out, b.Index)
		}
	}

	// Detection emits ascending indices, but a registry built by hand
	// need not.
	slices.Sort(out)

	return out
}

// Include marks slot i as included.
func (r *Registry) Include(i int) error {
	return r.fire(i, EventInclude)
}

// Exclude marks slot i as excluded.
func (r *Registry) Exclude(i int) error {
	return r.fire(i, EventExclude)
}

// SetIncluded includes or excludes slot i.
func (r *Registry) SetIncluded(i int, included bool) error {
	if included {
		return r.Include(i)
	}

	return r.Exclude(i)
}

// Toggle includes slot i if it is excluded and excludes it otherwise.
func (r *Registry) Toggle(i int) error {
	s, err := r.State(i)
	if err != nil {
		return err
	}

	return r.SetIncluded(i, !s.Included())
}

// DelayedActivate marks a press on slot i. It only has an effect on an
// Included boundary.
func (r *Registry) DelayedActivate(i int) error {
	return r.fire(i, EventDelayedActivate)
}

// Activate highlights slot i. It fails with [ErrInvalidTransition] unless
// the boundary is Included or DelayedActive.
func (r *Registry) Activate(i int) error {
	return r.fire(i, EventActivate)
}

// Deactivate clears the highlight on slot i. A pending press is promoted
// to Active.
func (r *Registry) Deactivate(i int) error {
	return r.fire(i, EventDeactivate)
}

// DeactivateAll calls Deactivate on every slot.
func (r *Registry) DeactivateAll() {
	for i := range r.Len() {
		_ = r.Deactivate(i)
	}
}

// SetInclusions applies included[i] to slot i for every given flag.
func (r *Registry) SetInclusions(included []bool) error {
	if len(included) > r.Len() {
		return fmt.Errorf("%w: %d flags for %d boundaries", ErrNoSuchBoundary, len(included), r.Len())
	}

	for i, inc := range included {
		if err := r.SetIncluded(i, inc); err != nil {
			return err
		}
	}

	return nil
}

func (r *Registry) check(i int) error {
	if i < 0 || i >= r.Len() {
		return fmt.Errorf("%w: slot %d of %d", ErrNoSuchBoundary, i, r.Len())
	}

	return nil
}

func (r *Registry) fire(i int, ev Event) error {
	if err := r.check(i); err != nil {
		return err
	}

	from := r.slots[i].State
	t := next(from, ev)

	switch t.effect {
	case invalid:
		return &TransitionError{Slot: i, From: from, Event: ev}
	case noop:
		return nil
	}

	r.slots[i].State = t.next

	if t.effect == notify {
		r.notify()
	}

	return nil
}

// notify delivers the current selection to every listener. A failing or
// panicking listener does not stop the others.
func (r *Registry) notify() {
	if len(r.listeners) == 0 {
		return
	}

	selected := r.Selected()
	for n, fn := range r.listeners {
		if err := r.call(fn, selected); err != nil {
			r.log.Warn().Err(err).Int("listener", n).Msg("selection listener failed")
		}
	}
}

func (r *Registry) call(fn Listener, selected []int) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("listener panic: %v", p)
		}
	}()

	// Each listener gets its own copy.
	cp := make([]int, len(selected))
	copy(cp, selected)

	return fn(cp)
}
