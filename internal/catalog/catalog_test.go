package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idolplan/idolplan/internal/card"
)

func sampleEntries() []card.Entry {
	return []card.Entry{
		{Ordinal: 1, Character: 1, Rarity: card.R},
		{Ordinal: 2, Character: 1, Rarity: card.SR},
		{Ordinal: 3, Character: 2, Rarity: card.R},
		{Ordinal: 4, Character: 1, Rarity: card.SR},
		{Ordinal: 5, Character: 101, Rarity: card.UR},
		{Ordinal: 6, Character: 1, Rarity: card.UR},
		{Ordinal: 7, Character: 210, Rarity: card.UR},
		{Ordinal: 8, Character: 101, Rarity: card.UR},
	}
}

func TestEnumerateLemmas(t *testing.T) {
	e, err := Enumerate(sampleEntries())
	require.NoError(t, err)

	want := map[uint32]string{
		1: "honoka-r1",
		2: "honoka-sr1",
		3: "eli-r1",
		4: "honoka-sr2",
		5: "chika-ur1",
		6: "honoka-ur1",
		7: "shioriko-ur1",
		8: "chika-ur2",
	}
	for ordinal, lemma := range want {
		got, ok := e.Lemma(ordinal)
		require.True(t, ok, "ordinal %d", ordinal)
		assert.Equal(t, lemma, got)
	}
	assert.Equal(t, len(want), e.Len())
}

func TestEnumerateBijection(t *testing.T) {
	entries := sampleEntries()
	e, err := Enumerate(entries)
	require.NoError(t, err)

	for _, entry := range entries {
		lemma, ok := e.Lemma(entry.Ordinal)
		require.True(t, ok)
		back, ok := e.Ordinal(lemma)
		require.True(t, ok)
		assert.Equal(t, entry.Ordinal, back)
	}
}

func TestEnumerateCounts(t *testing.T) {
	entries := sampleEntries()
	e, err := Enumerate(entries)
	require.NoError(t, err)

	for _, c := range card.Roster {
		for _, r := range card.Rarities {
			n := 0
			for _, entry := range entries {
				if entry.Character == c.ID && entry.Rarity == r {
					n++
				}
			}
			assert.Equal(t, n, e.Count(c.ID, r), "%s %s", c.Slug, r)
		}
	}
	assert.Equal(t, 2, e.MaxCount())
}

func TestEnumerateUnknownCharacter(t *testing.T) {
	entries := append(sampleEntries(), card.Entry{Ordinal: 99, Character: 301, Rarity: card.R})
	_, err := Enumerate(entries)
	assert.ErrorIs(t, err, ErrUnknownCatalogEntity)
}

func TestEnumerateDuplicateOrdinal(t *testing.T) {
	entries := append(sampleEntries(), card.Entry{Ordinal: 1, Character: 2, Rarity: card.UR})
	_, err := Enumerate(entries)
	assert.Error(t, err)
}

func TestParseObjectOrdersByNumericKey(t *testing.T) {
	// "10" sorts before "9" as text; catalog order must follow the numbers
	data := []byte(`{
		"10": {"ordinal": 10, "member": 1, "rarity": 10, "max_level": 40},
		"9":  {"ordinal": 9,  "member": 1, "rarity": 10, "max_level": 40}
	}`)
	c, err := Parse(data)
	require.NoError(t, err)

	lemma, _ := c.Lemma(9)
	assert.Equal(t, "honoka-r1", lemma)
	lemma, _ = c.Lemma(10)
	assert.Equal(t, "honoka-r2", lemma)
	assert.Equal(t, data, c.Raw)
}

func TestParseArrayKeepsOrder(t *testing.T) {
	data := []byte(`[
		{"ordinal": 10, "member": 1, "rarity": 10},
		{"ordinal": 9,  "member": 1, "rarity": 10}
	]`)
	c, err := Parse(data)
	require.NoError(t, err)

	lemma, _ := c.Lemma(10)
	assert.Equal(t, "honoka-r1", lemma)
}

func TestParseRejectsBadInput(t *testing.T) {
	for name, data := range map[string]string{
		"empty":      "",
		"garbage":    "not json",
		"bad key":    `{"x": {"ordinal": 1, "member": 1, "rarity": 10}}`,
		"bad member": `[{"ordinal": 1, "member": 404, "rarity": 10}]`,
		"bad rarity": `[{"ordinal": 1, "member": 1, "rarity": 40}]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalogAndGetCard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"ordinal": 1, "member": 5, "rarity": 10},
		{"ordinal": 2, "member": 5, "rarity": 30}
	]`), 0644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, path, c.Path)

	e, err := c.GetCard("rin-ur1")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), e.Ordinal)

	e, err = c.GetCard("1")
	require.NoError(t, err)
	assert.Equal(t, card.R, e.Rarity)

	_, err = c.GetCard("rin-ur2")
	assert.Error(t, err)
	_, err = c.GetCard("3")
	assert.Error(t, err)

	assert.True(t, c.Has(1))
	assert.False(t, c.Has(3))
}

func TestNiceName(t *testing.T) {
	tests := map[string]string{
		"honoka-ur3": "Honoka3",
		"eli-sr2":    "Eli SR2",
		"riko-r1":    "Riko R1",
		"":           "",
	}
	for lemma, want := range tests {
		assert.Equal(t, want, NiceName(lemma), lemma)
	}
}

func TestThumbnail(t *testing.T) {
	assert.Equal(t, "umi-sr1.png", Thumbnail("umi-sr1", false))
	assert.Equal(t, "umi-sr1-i.png", Thumbnail("umi-sr1", true))
}
