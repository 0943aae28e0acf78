package joker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStoreBasics(t *testing.T) {
	s := NewStateStore()
	key := StateKey{ID: GreenJoker, Slot: 0}

	_, ok := s.Get(key, "mult")
	assert.False(t, ok)

	s.Set(key, "mult", 3)
	v, ok := s.Get(key, "mult")
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	assert.Equal(t, 5.0, s.Add(key, "mult", 2))

	// Same kind in another slot is independent state.
	other := StateKey{ID: GreenJoker, Slot: 1}
	_, ok = s.Get(other, "mult")
	assert.False(t, ok)

	s.Drop(key)
	_, ok = s.Get(key, "mult")
	assert.False(t, ok)
}

func TestStateStoreDeterministicMarshal(t *testing.T) {
	mk := func() []byte {
		s := NewStateStore()
		s.Set(StateKey{ID: "b", Slot: 1}, "x", 1)
		s.Set(StateKey{ID: "a", Slot: 2}, "y", 2)
		s.Set(StateKey{ID: "a", Slot: 0}, "z", 3)
		raw, err := json.Marshal(s)
		require.NoError(t, err)
		return raw
	}
	assert.Equal(t, mk(), mk())
}

func TestStateStoreRoundTrip(t *testing.T) {
	s := NewStateStore()
	s.Set(StateKey{ID: GreenJoker, Slot: 0}, "mult", 7)
	s.Set(StateKey{ID: RideTheBus, Slot: 1}, "streak", 2)

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	restored := NewStateStore()
	require.NoError(t, json.Unmarshal(raw, restored))
	v, ok := restored.Get(StateKey{ID: GreenJoker, Slot: 0}, "mult")
	require.True(t, ok)
	assert.Equal(t, 7.0, v)
	assert.Equal(t, 2, restored.Len())
}

func TestStateStoreBadPayloadLeavesStore(t *testing.T) {
	s := NewStateStore()
	s.Set(StateKey{ID: "a", Slot: 0}, "n", 1)
	require.Error(t, json.Unmarshal([]byte(`{broken`), s))
	v, ok := s.Get(StateKey{ID: "a", Slot: 0}, "n")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestStateStoreShiftDown(t *testing.T) {
	s := NewStateStore()
	s.Set(StateKey{ID: "a", Slot: 0}, "n", 1)
	s.Set(StateKey{ID: "b", Slot: 2}, "n", 2)
	s.Set(StateKey{ID: "c", Slot: 3}, "n", 3)

	// Slot 1 was removed: 0 stays, 2 and 3 close the gap.
	s.ShiftDown(1)

	v, ok := s.Get(StateKey{ID: "a", Slot: 0}, "n")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = s.Get(StateKey{ID: "b", Slot: 1}, "n")
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = s.Get(StateKey{ID: "c", Slot: 2}, "n")
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	_, ok = s.Get(StateKey{ID: "b", Slot: 2}, "n")
	assert.False(t, ok)
}
