package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idolplan/idolplan/internal/accessory"
	"github.com/idolplan/idolplan/internal/card"
)

func TestAdvanceFullCycle(t *testing.T) {
	a := New()
	const ordinal = 42

	want := []CardStatus{
		{Idolized: false, LimitBreak: 0},
		{Idolized: true, LimitBreak: 0},
		{Idolized: true, LimitBreak: 1},
		{Idolized: true, LimitBreak: 2},
		{Idolized: true, LimitBreak: 3},
		{Idolized: true, LimitBreak: 4},
		{Idolized: true, LimitBreak: 5},
	}
	for i, w := range want {
		a.Advance(ordinal, false)
		got, owned := a.Status(ordinal)
		require.True(t, owned, "step %d", i+1)
		assert.Equal(t, w, got, "step %d", i+1)
	}

	// owned -> idolized, five limit breaks, then discard: seven steps from owned
	a.Advance(ordinal, false)
	_, owned := a.Status(ordinal)
	assert.False(t, owned)
	assert.Empty(t, a.Album)
}

func TestAdvanceFastFromUnowned(t *testing.T) {
	a := New()
	a.Advance(7, true)
	s, owned := a.Status(7)
	require.True(t, owned)
	assert.Equal(t, CardStatus{Idolized: true, LimitBreak: 0}, s)
}

func TestAdvanceFastIgnoredWhenIdolizing(t *testing.T) {
	a := New()
	a.Advance(7, false)
	a.Advance(7, true)
	s, _ := a.Status(7)
	assert.Equal(t, CardStatus{Idolized: true, LimitBreak: 0}, s)
}

func TestAdvanceFastJumpsToMaxLimitBreak(t *testing.T) {
	for start := 0; start < MaxLimitBreak; start++ {
		a := New()
		a.Album[9] = CardStatus{Idolized: true, LimitBreak: start}
		a.Advance(9, true)
		s, owned := a.Status(9)
		require.True(t, owned)
		assert.Equal(t, MaxLimitBreak, s.LimitBreak, "from lb%d", start)
	}
}

func TestAdvanceFastDiscardsAtMax(t *testing.T) {
	a := New()
	a.Album[9] = CardStatus{Idolized: true, LimitBreak: MaxLimitBreak}
	a.Advance(9, true)
	_, owned := a.Status(9)
	assert.False(t, owned)
}

func TestAdvanceOnZeroAccount(t *testing.T) {
	var a Account
	a.Advance(1, false)
	_, owned := a.Status(1)
	assert.True(t, owned)
}

func TestOwnedSorted(t *testing.T) {
	a := New()
	for _, o := range []uint32{30, 4, 100, 12} {
		a.Advance(o, false)
	}
	assert.Equal(t, []uint32{4, 12, 30, 100}, a.Owned())
}

func TestInsertAccessory(t *testing.T) {
	a := New()

	_, err := a.InsertAccessory(accessory.Candidate{Kind: "choker", Rarity: card.R, Attribute: card.Smile, Level: 40, SkillLevel: 1})
	assert.ErrorIs(t, err, accessory.ErrInvalidAccessorySelection)
	assert.Empty(t, a.Accs)

	acc, err := a.InsertAccessory(accessory.Candidate{Kind: "choker", Rarity: card.UR, Attribute: card.Smile, Level: 60, SkillLevel: 1})
	require.NoError(t, err)
	assert.Equal(t, []accessory.Accessory{acc}, a.Accs)

	// duplicates are fine
	_, err = a.InsertAccessory(accessory.Candidate{Kind: "choker", Rarity: card.UR, Attribute: card.Smile, Level: 60, SkillLevel: 1})
	require.NoError(t, err)
	assert.Len(t, a.Accs, 2)
}

func TestInsertAccessoryClamps(t *testing.T) {
	a := New()
	acc, err := a.InsertAccessory(accessory.Candidate{Kind: "belt", Rarity: card.UR, Attribute: card.Cool, Level: 999, SkillLevel: 1})
	require.NoError(t, err)
	assert.Equal(t, 60, acc.Level)
	assert.Equal(t, 60, a.Accs[0].Level)
}

func TestRemoveAccessoryAt(t *testing.T) {
	a := New()
	for _, kind := range []string{"brooch", "necklace", "towel"} {
		rule, _ := accessory.RuleFor(kind)
		_, err := a.InsertAccessory(accessory.Candidate{Kind: kind, Rarity: card.R, Attribute: rule.Attributes[0], Level: 1, SkillLevel: 1})
		require.NoError(t, err)
	}

	before := append([]accessory.Accessory(nil), a.Accs...)
	assert.False(t, a.RemoveAccessoryAt(3))
	assert.False(t, a.RemoveAccessoryAt(-1))
	assert.Equal(t, before, a.Accs)

	assert.True(t, a.RemoveAccessoryAt(1))
	require.Len(t, a.Accs, 2)
	assert.Equal(t, "brooch", a.Accs[0].Kind)
	assert.Equal(t, "towel", a.Accs[1].Kind)
}
