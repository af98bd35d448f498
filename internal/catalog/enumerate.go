package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/idolplan/idolplan/internal/card"
)

// ErrUnknownCatalogEntity is returned when a catalog entry references a
// character outside card.Roster. Every lemma depends on full roster
// coverage, so callers must treat it as fatal.
var ErrUnknownCatalogEntity = errors.New("unknown catalog entity")

// Enumeration is the ordinal <-> lemma mapping derived from a catalog
type Enumeration struct {
	counts   map[uint32]map[card.Rarity]int
	lemmas   map[uint32]string
	ordinals map[string]uint32
}

// Enumerate walks entries in the supplied order and assigns each card the
// lemma <character>-<rarity><n>, where n is the card's 1-based rank among
// entries sharing its character and rarity.
func Enumerate(entries []card.Entry) (*Enumeration, error) {
	e := &Enumeration{
		counts:   make(map[uint32]map[card.Rarity]int, len(card.Roster)),
		lemmas:   make(map[uint32]string, len(entries)),
		ordinals: make(map[string]uint32, len(entries)),
	}
	for _, c := range card.Roster {
		e.counts[c.ID] = map[card.Rarity]int{card.R: 0, card.SR: 0, card.UR: 0}
	}

	for _, entry := range entries {
		counters, ok := e.counts[entry.Character]
		if !ok {
			return nil, fmt.Errorf("%w: card %d references character %d", ErrUnknownCatalogEntity, entry.Ordinal, entry.Character)
		}
		if !entry.Rarity.Valid() {
			return nil, fmt.Errorf("%w: card %d has rarity %d", ErrUnknownCatalogEntity, entry.Ordinal, entry.Rarity)
		}

		counters[entry.Rarity]++
		lemma := LemmaFor(entry.Character, entry.Rarity, counters[entry.Rarity])

		if prev, dup := e.ordinals[lemma]; dup {
			return nil, fmt.Errorf("lemma %s assigned to both card %d and card %d", lemma, prev, entry.Ordinal)
		}
		if prev, dup := e.lemmas[entry.Ordinal]; dup {
			return nil, fmt.Errorf("ordinal %d appears twice (%s)", entry.Ordinal, prev)
		}
		e.lemmas[entry.Ordinal] = lemma
		e.ordinals[lemma] = entry.Ordinal
	}
	return e, nil
}

// Lemma returns the lemma of a catalog ordinal
func (e *Enumeration) Lemma(ordinal uint32) (string, bool) {
	lemma, ok := e.lemmas[ordinal]
	return lemma, ok
}

// Ordinal returns the catalog ordinal named by a lemma
func (e *Enumeration) Ordinal(lemma string) (uint32, bool) {
	ordinal, ok := e.ordinals[lemma]
	return ordinal, ok
}

// Count returns how many catalog cards share a character and rarity
func (e *Enumeration) Count(character uint32, rarity card.Rarity) int {
	return e.counts[character][rarity]
}

// MaxCount returns the largest per-character, per-rarity count, which is
// the width of the album grid.
func (e *Enumeration) MaxCount() int {
	max := 0
	for _, row := range e.counts {
		for _, n := range row {
			if n > max {
				max = n
			}
		}
	}
	return max
}

// Len returns the number of enumerated cards
func (e *Enumeration) Len() int {
	return len(e.lemmas)
}

// LemmaFor builds the lemma for a roster slot without consulting the catalog.
// The result only names a real card when n <= Count(character, rarity).
func LemmaFor(character uint32, rarity card.Rarity, n int) string {
	slug, _ := card.CharacterSlug(character)
	return fmt.Sprintf("%s-%s%d", slug, rarity.Slug(), n)
}

// NiceName turns a lemma into a display name: "honoka-sr2" becomes
// "Honoka SR2" and the UR suffix is dropped ("honoka-ur3" -> "Honoka3").
func NiceName(lemma string) string {
	if lemma == "" {
		return ""
	}
	name := strings.ToUpper(lemma[:1]) + lemma[1:]
	name = strings.Replace(name, "-ur", "", 1)
	name = strings.Replace(name, "-sr", " SR", 1)
	name = strings.Replace(name, "-r", " R", 1)
	return name
}

// Thumbnail returns the thumbnail asset name for a card in a given state
func Thumbnail(lemma string, idolized bool) string {
	if idolized {
		return lemma + "-i.png"
	}
	return lemma + ".png"
}
