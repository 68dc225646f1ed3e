package boundary

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	r, err := NewRegistry([]int{3, 8, 15}, []float64{1000.5, 1500.5, 2100.5}, opts...)
	require.NoError(t, err)

	return r
}

func TestNewRegistryStartsIncluded(t *testing.T) {
	r := newTestRegistry(t)

	require.Equal(t, 3, r.Len())
	for i := range r.Len() {
		s, err := r.State(i)
		require.NoError(t, err)
		assert.Equal(t, Included, s)
	}
	assert.Equal(t, []int{3, 8, 15}, r.Selected())
}

func TestNewRegistryLabelMismatch(t *testing.T) {
	_, err := NewRegistry([]int{1, 2}, []float64{1})
	require.Error(t, err)

	r, err := NewRegistry([]int{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}

func TestExcludeAndInclude(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Exclude(1))
	assert.Equal(t, []int{3, 15}, r.Selected())

	require.NoError(t, r.Include(1))
	assert.Equal(t, []int{3, 8, 15}, r.Selected())
}

func TestToggle(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.Toggle(0))
	s, _ := r.State(0)
	assert.Equal(t, Excluded, s)

	require.NoError(t, r.Toggle(0))
	s, _ = r.State(0)
	assert.Equal(t, Included, s)

	// An active boundary is in the included family, so toggling excludes it.
	require.NoError(t, r.Activate(2))
	require.NoError(t, r.Toggle(2))
	s, _ = r.State(2)
	assert.Equal(t, Excluded, s)
}

func TestDelayedActivateThenDeactivateActivates(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.DelayedActivate(0))
	s, _ := r.State(0)
	assert.Equal(t, DelayedActive, s)

	require.NoError(t, r.Deactivate(0))
	s, _ = r.State(0)
	assert.Equal(t, Active, s)

	require.NoError(t, r.Deactivate(0))
	s, _ = r.State(0)
	assert.Equal(t, Included, s)
}

func TestDelayedActivateIgnoredWhenExcluded(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Exclude(1))

	require.NoError(t, r.DelayedActivate(1))
	s, _ := r.State(1)
	assert.Equal(t, Excluded, s)
}

func TestActivateExcludedFails(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Exclude(2))

	err := r.Activate(2)
	require.ErrorIs(t, err, ErrInvalidTransition)

	var te *TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, 2, te.Slot)
	assert.Equal(t, Excluded, te.From)
	assert.Equal(t, EventActivate, te.Event)
	assert.Contains(t, err.Error(), "cannot activate while excluded")

	s, _ := r.State(2)
	assert.Equal(t, Excluded, s)
}

func TestActivateTwiceFails(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Activate(0))
	require.ErrorIs(t, r.Activate(0), ErrInvalidTransition)
}

func TestTransientStatesKeepSelection(t *testing.T) {
	r := newTestRegistry(t)
	want := r.Selected()

	require.NoError(t, r.Activate(0))
	require.NoError(t, r.DelayedActivate(1))
	assert.Equal(t, want, r.Selected())

	r.DeactivateAll()
	assert.Equal(t, want, r.Selected())

	s0, _ := r.State(0)
	s1, _ := r.State(1)
	assert.Equal(t, Included, s0)
	assert.Equal(t, Active, s1)
}

func TestDeactivateAllLeavesExcluded(t *testing.T) {
	r := newTestRegistry(t)
	require.NoError(t, r.Exclude(0))

	r.DeactivateAll()

	s, _ := r.State(0)
	assert.Equal(t, Excluded, s)
}

func TestSlotOutOfRange(t *testing.T) {
	r := newTestRegistry(t)

	require.ErrorIs(t, r.Include(3), ErrNoSuchBoundary)
	require.ErrorIs(t, r.Toggle(-1), ErrNoSuchBoundary)
	_, err := r.State(99)
	require.ErrorIs(t, err, ErrNoSuchBoundary)
}

func TestSetInclusions(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.SetInclusions([]bool{false, true, false}))
	assert.Equal(t, []int{8}, r.Selected())
	assert.Equal(t, []Position{
		{Wavenumber: 1000.5, Included: false},
		{Wavenumber: 1500.5, Included: true},
		{Wavenumber: 2100.5, Included: false},
	}, r.Positions())

	require.ErrorIs(t, r.SetInclusions(make([]bool, 4)), ErrNoSuchBoundary)
}

func TestSelectedIsSortedCopy(t *testing.T) {
	r, err := NewRegistry([]int{9, 2, 5}, nil)
	require.NoError(t, err)

	sel := r.Selected()
	assert.Equal(t, []int{2, 5, 9}, sel)

	sel[0] = 100
	assert.Equal(t, []int{2, 5, 9}, r.Selected())
}

func TestBoundariesIsCopy(t *testing.T) {
	r := newTestRegistry(t)
	bs := r.Boundaries()
	bs[0].State = Excluded

	s, _ := r.State(0)
	assert.Equal(t, Included, s)
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Selected())
	assert.Nil(t, r.Boundaries())
	assert.Empty(t, r.Positions())
}

func TestListenersNotified(t *testing.T) {
	var got [][]int
	r := newTestRegistry(t, WithListener(func(sel []int) error {
		got = append(got, sel)
		return nil
	}))

	require.NoError(t, r.Exclude(0))
	require.NoError(t, r.Activate(1))   // silent
	require.NoError(t, r.Deactivate(1)) // re-include notifies
	require.NoError(t, r.DelayedActivate(2))
	require.NoError(t, r.Deactivate(2)) // promotes silently

	assert.Equal(t, [][]int{{8, 15}, {8, 15}}, got)
}

func TestFailingListenerDoesNotBlockTransition(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	calls := 0
	r := newTestRegistry(t, WithLogger(log))
	r.OnSelectionChange(func([]int) error { return errors.New("boom") })
	r.OnSelectionChange(func([]int) error { panic("kaboom") })
	r.OnSelectionChange(func([]int) error {
		calls++
		return nil
	})

	require.NoError(t, r.Exclude(0))

	s, _ := r.State(0)
	assert.Equal(t, Excluded, s)
	assert.Equal(t, 1, calls)
	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "kaboom")
}
