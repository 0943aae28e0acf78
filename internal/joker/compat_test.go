package joker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jokersim/joker-engine-go/internal/cards"
	"github.com/jokersim/joker-engine-go/internal/effect"
)

// oldStyleJoker is a monolithic implementation in the legacy shape: +3 mult
// per hand, +5 chips per heart, one extra discard, a counter in Save/Load.
type oldStyleJoker struct {
	plays int
}

func (o *oldStyleJoker) Ident() ID           { return "old_style" }
func (o *oldStyleJoker) DisplayName() string { return "Old Style" }
func (o *oldStyleJoker) Desc() string        { return "legacy-shaped behavior" }
func (o *oldStyleJoker) Tier() Rarity        { return Uncommon }
func (o *oldStyleJoker) Cost() int64         { return 6 }

func (o *oldStyleJoker) OnPlay(*Context) effect.Effect {
	o.plays++
	return effect.AddMult(3)
}

func (o *oldStyleJoker) OnScore(_ *Context, card cards.Card) effect.Effect {
	if card.Suit == cards.Heart {
		return effect.AddChips(5)
	}
	return effect.Identity()
}

func (o *oldStyleJoker) OnBought(*Context)      {}
func (o *oldStyleJoker) OnSold(*Context)        {}
func (o *oldStyleJoker) OnRoundBegin(*Context)  {}
func (o *oldStyleJoker) OnRoundFinish(*Context) {}

func (o *oldStyleJoker) HandSizeDelta() int { return 0 }
func (o *oldStyleJoker) DiscardDelta() int  { return 1 }

func (o *oldStyleJoker) Save() ([]byte, error) {
	return json.Marshal(map[string]int{"plays": o.plays})
}

func (o *oldStyleJoker) Load(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	o.plays = m["plays"]
	return nil
}

func testContext(hand cards.Hand) *Context {
	return NewContext(ContextParams{Hand: hand, Round: 1})
}

func TestBridgeForwardsEveryCapability(t *testing.T) {
	legacy := &oldStyleJoker{}
	b := WrapLegacy(legacy)

	assert.Equal(t, ID("old_style"), b.ID())
	assert.Equal(t, "Old Style", b.Name())
	assert.Equal(t, Uncommon, b.Rarity())
	assert.Equal(t, int64(6), b.BaseCost())

	ctx := testContext(cards.NewHand(cards.NewCard(cards.Ace, cards.Heart)))

	e, err := b.OnHandPlayed(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), e.Mult)

	e, err = b.OnCardScored(ctx, cards.NewCard(cards.Ace, cards.Heart), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), e.Chips)

	e, err = b.OnCardScored(ctx, cards.NewCard(cards.Ace, cards.Spade), 0)
	require.NoError(t, err)
	assert.True(t, e.IsIdentity())

	assert.Equal(t, 0, b.HandSizeModifier())
	assert.Equal(t, 1, b.DiscardModifier())
}

func TestBridgeMatchesDirectInvocation(t *testing.T) {
	// The same legacy implementation invoked directly and through the
	// bridge must produce identical effects for identical inputs.
	direct := &oldStyleJoker{}
	bridged := WrapLegacy(&oldStyleJoker{})

	hand := cards.NewHand(
		cards.NewCard(cards.Ten, cards.Heart),
		cards.NewCard(cards.Ten, cards.Spade),
	)
	ctx := testContext(hand)

	want := direct.OnPlay(ctx)
	got, err := bridged.OnHandPlayed(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	for i, c := range hand.Cards {
		want := direct.OnScore(ctx, c)
		got, err := bridged.OnCardScored(ctx, c, i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "card %d", i)
	}
}

func TestBridgeStateRoundTrip(t *testing.T) {
	legacy := &oldStyleJoker{}
	b := WrapLegacy(legacy)
	ctx := testContext(cards.Hand{})

	for i := 0; i < 3; i++ {
		_, err := b.OnHandPlayed(ctx)
		require.NoError(t, err)
	}

	raw, err := b.SerializeState()
	require.NoError(t, err)

	restoredLegacy := &oldStyleJoker{}
	restored := WrapLegacy(restoredLegacy)
	require.NoError(t, restored.DeserializeState(raw))
	assert.Equal(t, 3, restoredLegacy.plays)
}

func TestBridgeSatisfiesAllProbes(t *testing.T) {
	var j Joker = WrapLegacy(&oldStyleJoker{})
	_, ok := SupportsGameplay(j)
	assert.True(t, ok)
	_, ok = SupportsLifecycle(j)
	assert.True(t, ok)
	_, ok = SupportsModifiers(j)
	assert.True(t, ok)
	_, ok = SupportsState(j)
	assert.True(t, ok)
}

func TestCollectionOrderAndRemoval(t *testing.T) {
	col := NewCollection()
	a, err := New(TheJoker)
	require.NoError(t, err)
	col.Add(a)
	col.AddLegacy(&oldStyleJoker{})
	b, err := New(GreenJoker)
	require.NoError(t, err)
	col.Add(b)

	assert.Equal(t, []ID{TheJoker, "old_style", GreenJoker}, col.IDs())

	require.True(t, col.Remove(1))
	assert.Equal(t, []ID{TheJoker, GreenJoker}, col.IDs())
	assert.False(t, col.Remove(5))
	assert.Nil(t, col.At(9))
}
