package catalog

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/idolplan/idolplan/internal/card"
)

// Catalog is the static card catalog together with its enumeration
type Catalog struct {
	Path    string
	Entries []card.Entry

	// Raw is the catalog text exactly as loaded; the solver consumes it verbatim.
	Raw []byte

	*Enumeration
}

// LoadCatalog loads and enumerates the catalog file at path
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog %s: %w", path, err)
	}
	c.Path = path

	log.Debug().Str("path", path).Int("cards", c.Len()).Msg("catalog loaded")
	return c, nil
}

// Parse decodes catalog text and enumerates it.
//
// Two shapes are accepted: a JSON array of entries, used in the given order,
// or a JSON object keyed by ordinal, ordered by ascending numeric key.
func Parse(data []byte) (*Catalog, error) {
	entries, err := decodeEntries(data)
	if err != nil {
		return nil, err
	}

	enum, err := Enumerate(entries)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		Entries:     entries,
		Raw:         data,
		Enumeration: enum,
	}, nil
}

func decodeEntries(data []byte) ([]card.Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	if trimmed[0] == '[' {
		var entries []card.Entry
		if err := sonic.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("error parsing catalog: %w", err)
		}
		return entries, nil
	}

	var byKey map[string]card.Entry
	if err := sonic.Unmarshal(trimmed, &byKey); err != nil {
		return nil, fmt.Errorf("error parsing catalog: %w", err)
	}

	type keyed struct {
		key   uint64
		entry card.Entry
	}
	ordered := make([]keyed, 0, len(byKey))
	for k, entry := range byKey {
		n, err := strconv.ParseUint(k, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("catalog key %q is not an ordinal", k)
		}
		ordered = append(ordered, keyed{n, entry})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].key < ordered[j].key })

	entries := make([]card.Entry, len(ordered))
	for i, k := range ordered {
		entries[i] = k.entry
	}
	return entries, nil
}

// GetCard resolves a card by lemma ("honoka-ur1") or by ordinal ("123")
func (c *Catalog) GetCard(id string) (card.Entry, error) {
	ordinal, ok := c.Ordinal(id)
	if !ok {
		n, err := strconv.ParseUint(id, 10, 32)
		if err != nil {
			return card.Entry{}, fmt.Errorf("card not found: %s", id)
		}
		ordinal = uint32(n)
	}

	for _, e := range c.Entries {
		if e.Ordinal == ordinal {
			return e, nil
		}
	}
	return card.Entry{}, fmt.Errorf("card not found: %s", id)
}

// Has reports whether an ordinal belongs to the catalog
func (c *Catalog) Has(ordinal uint32) bool {
	_, ok := c.Lemma(ordinal)
	return ok
}
