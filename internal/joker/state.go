package joker

import (
	"encoding/json"
	"fmt"
	"sort"
)

// StateKey addresses persistent data in the run's state store: the joker
// kind plus the run-local instance slot, so two copies of the same joker
// keep independent counters.
type StateKey struct {
	ID   ID  `json:"id"`
	Slot int `json:"slot"`
}

func (k StateKey) String() string {
	return fmt.Sprintf("%s#%d", k.ID, k.Slot)
}

// StateStore holds named counters published by joker instances. Instances
// own their in-memory state; counters published here are readable by other
// jokers (cross-joker conditions) and survive in the run save.
//
// The store belongs to exactly one game instance and is never shared across
// goroutines, so it needs no locking.
type StateStore struct {
	counters map[StateKey]map[string]float64
}

// NewStateStore returns an empty store.
func NewStateStore() *StateStore {
	return &StateStore{counters: make(map[StateKey]map[string]float64)}
}

// Get reads a published counter.
func (s *StateStore) Get(key StateKey, name string) (float64, bool) {
	m, ok := s.counters[key]
	if !ok {
		return 0, false
	}
	v, ok := m[name]
	return v, ok
}

// Set publishes a counter value.
func (s *StateStore) Set(key StateKey, name string, value float64) {
	m, ok := s.counters[key]
	if !ok {
		m = make(map[string]float64)
		s.counters[key] = m
	}
	m[name] = value
}

// Add increments a published counter and returns the new value.
func (s *StateStore) Add(key StateKey, name string, delta float64) float64 {
	v, _ := s.Get(key, name)
	v += delta
	s.Set(key, name, v)
	return v
}

// Drop removes every counter published under the key. Called when an
// instance is sold or destroyed.
func (s *StateStore) Drop(key StateKey) {
	delete(s.counters, key)
}

// Len returns the number of keys with published counters.
func (s *StateStore) Len() int { return len(s.counters) }

// ShiftDown rekeys counters published under slots above the removed slot,
// keeping keys aligned after the active list closes a gap.
func (s *StateStore) ShiftDown(removed int) {
	next := make(map[StateKey]map[string]float64, len(s.counters))
	for k, m := range s.counters {
		if k.Slot > removed {
			k.Slot--
		}
		next[k] = m
	}
	s.counters = next
}

type storeEntry struct {
	Key      StateKey           `json:"key"`
	Counters map[string]float64 `json:"counters"`
}

// MarshalJSON writes entries in deterministic key order so identical stores
// produce identical bytes.
func (s *StateStore) MarshalJSON() ([]byte, error) {
	entries := make([]storeEntry, 0, len(s.counters))
	for k, m := range s.counters {
		entries = append(entries, storeEntry{Key: k, Counters: m})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Key.ID != entries[j].Key.ID {
			return entries[i].Key.ID < entries[j].Key.ID
		}
		return entries[i].Key.Slot < entries[j].Key.Slot
	})
	return json.Marshal(entries)
}

// UnmarshalJSON replaces the store contents. A decode failure leaves the
// store unchanged.
func (s *StateStore) UnmarshalJSON(data []byte) error {
	var entries []storeEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("state store: %w", err)
	}
	next := make(map[StateKey]map[string]float64, len(entries))
	for _, e := range entries {
		next[e.Key] = e.Counters
	}
	s.counters = next
	return nil
}
