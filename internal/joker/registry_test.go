package joker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryPopulated(t *testing.T) {
	reg := Default()
	assert.Greater(t, reg.Len(), 100, "roster should cover the full catalog")

	e, ok := reg.Lookup(TheJoker)
	require.True(t, ok)
	assert.Equal(t, "Joker", e.Name)
	assert.Equal(t, Common, e.Rarity)

	// Deck-composition and skip-scaling kinds construct through the
	// registry like everything else.
	for _, id := range []ID{RedCard, SteelJoker, Erosion, Throwback} {
		_, ok := reg.Lookup(id)
		assert.True(t, ok, "%s missing from the default roster", id)
	}
}

func TestRegistryUnknownID(t *testing.T) {
	_, err := Default().New("no_such_joker", nil)
	require.ErrorIs(t, err, ErrUnknownJoker)
}

func TestNewReturnsFreshInstances(t *testing.T) {
	a, err := New(GreenJoker)
	require.NoError(t, err)
	b, err := New(GreenJoker)
	require.NoError(t, err)
	assert.NotSame(t, a, b, "instances must not share state")
}

func TestRegistryConcurrentAccess(t *testing.T) {
	// Parallel lookups and constructions against the shared registry; the
	// race detector flags any unsynchronized mutation.
	reg := Default()
	ids := reg.IDs()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range ids {
				e, ok := reg.Lookup(id)
				if !ok {
					t.Errorf("lookup %s failed", id)
					return
				}
				if e.ID == CustomScripted {
					continue // requires args
				}
				if _, err := reg.New(id, nil); err != nil {
					t.Errorf("construct %s: %v", id, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestByRarityPartition(t *testing.T) {
	reg := Default()
	total := 0
	for _, tier := range Rarities() {
		total += len(reg.ByRarity(tier))
	}
	assert.Equal(t, reg.Len(), total)
}

func TestUnlockGating(t *testing.T) {
	u := Unlock{MinAnte: 4, MinHandsPlayed: 50}
	assert.False(t, u.Satisfied(Progress{Ante: 1}))
	assert.False(t, u.Satisfied(Progress{Ante: 4, HandsPlayed: 10}))
	assert.True(t, u.Satisfied(Progress{Ante: 4, HandsPlayed: 50}))

	win := Unlock{RequiresWin: true}
	assert.False(t, win.Satisfied(Progress{Ante: 9}))
	assert.True(t, win.Satisfied(Progress{HasWon: true}))
}

func TestEligibleFor(t *testing.T) {
	reg := Default()
	prog := Progress{Ante: 1}
	locked := 0
	for _, e := range reg.All() {
		if !e.Unlock.Satisfied(prog) {
			locked++
		}
	}
	eligible := reg.EligibleFor(func(e Entry) bool { return e.Unlock.Satisfied(prog) })
	assert.Equal(t, reg.Len()-locked, len(eligible))
	assert.Greater(t, locked, 0, "roster includes unlockable kinds")
}

func TestParseID(t *testing.T) {
	id, err := ParseID("joker")
	require.NoError(t, err)
	assert.Equal(t, TheJoker, id)

	_, err = ParseID("definitely_not_real")
	require.ErrorIs(t, err, ErrUnknownJoker)
}

func TestCustomScriptedRequiresScript(t *testing.T) {
	_, err := NewWithArgs(CustomScripted, nil)
	require.Error(t, err)

	j, err := NewWithArgs(CustomScripted, Args{"script": `({chips: 10, mult: 2})`})
	require.NoError(t, err)
	assert.Equal(t, CustomScripted, j.ID())
}
