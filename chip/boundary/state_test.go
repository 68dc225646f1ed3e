package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateIncludedFamily(t *testing.T) {
	assert.True(t, Included.Included())
	assert.True(t, Active.Included())
	assert.True(t, DelayedActive.Included())
	assert.False(t, Excluded.Included())
}

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "included", Included.String())
	assert.Equal(t, "excluded", Excluded.String())
	assert.Equal(t, "active", Active.String())
	assert.Equal(t, "delayed-active", DelayedActive.String())
	assert.Equal(t, "state(9)", State(9).String())
	assert.Equal(t, "deactivate", EventDeactivate.String())
	assert.Equal(t, "event(9)", Event(9).String())
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		from   State
		ev     Event
		want   State
		effect effect
	}{
		{Included, EventInclude, Included, notify},
		{Included, EventExclude, Excluded, notify},
		{Included, EventActivate, Active, silent},
		{Included, EventDelayedActivate, DelayedActive, silent},
		{Included, EventDeactivate, Included, noop},

		{Excluded, EventInclude, Included, notify},
		{Excluded, EventExclude, Excluded, notify},
		{Excluded, EventActivate, Excluded, invalid},
		{Excluded, EventDelayedActivate, Excluded, noop},
		{Excluded, EventDeactivate, Excluded, noop},

		{Active, EventInclude, Included, notify},
		{Active, EventExclude, Excluded, notify},
		{Active, EventActivate, Active, invalid},
		{Active, EventDelayedActivate, Active, noop},
		{Active, EventDeactivate, Included, notify},

		{DelayedActive, EventInclude, Included, notify},
		{DelayedActive, EventExclude, Excluded, notify},
		{DelayedActive, EventActivate, Active, silent},
		{DelayedActive, EventDelayedActivate, DelayedActive, noop},
		{DelayedActive, EventDeactivate, Active, silent},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.ev.String(), func(t *testing.T) {
			got := next(tt.from, tt.ev)
			assert.Equal(t, tt.want, got.next)
			assert.Equal(t, tt.effect, got.effect)
		})
	}
}

func TestTransitionOutOfTable(t *testing.T) {
	assert.Equal(t, invalid, next(State(7), EventInclude).effect)
	assert.Equal(t, invalid, next(Included, Event(7)).effect)
}
