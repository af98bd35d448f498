package card

import (
	"fmt"
	"strings"
)

// Rarity is a card or accessory rarity as it appears in the game data
type Rarity uint8

const (
	R  Rarity = 10
	SR Rarity = 20
	UR Rarity = 30
)

// Rarities lists every rarity in ascending order
var Rarities = []Rarity{R, SR, UR}

// Slug returns the lowercase short name used in lemmas (r, sr, ur)
func (r Rarity) Slug() string {
	switch r {
	case R:
		return "r"
	case SR:
		return "sr"
	case UR:
		return "ur"
	}
	return ""
}

// Valid reports whether r is one of R, SR or UR
func (r Rarity) Valid() bool {
	return r.Slug() != ""
}

func (r Rarity) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rarity(%d)", uint8(r))
	}
	return strings.ToUpper(r.Slug())
}

// ParseRarity accepts either the numeric value (10, 20, 30) or the slug (r, sr, ur)
func ParseRarity(s string) (Rarity, error) {
	switch s {
	case "10", "r", "R":
		return R, nil
	case "20", "sr", "SR":
		return SR, nil
	case "30", "ur", "UR":
		return UR, nil
	}
	return 0, fmt.Errorf("unknown rarity: %s", s)
}

// Attribute is the element of a card or accessory
type Attribute uint8

const (
	Smile   Attribute = 1
	Pure    Attribute = 2
	Cool    Attribute = 3
	Active  Attribute = 4
	Natural Attribute = 5
	Elegant Attribute = 6
	Neutral Attribute = 9
)

var attributeNames = map[Attribute]string{
	Smile:   "smile",
	Pure:    "pure",
	Cool:    "cool",
	Active:  "active",
	Natural: "natural",
	Elegant: "elegant",
	Neutral: "neutral",
}

func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("attribute(%d)", uint8(a))
}

// ParseAttribute accepts either the numeric value or the attribute name
func ParseAttribute(s string) (Attribute, error) {
	for a, name := range attributeNames {
		if name == s || fmt.Sprint(uint8(a)) == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown attribute: %s", s)
}

// Entry is one card of the static catalog
type Entry struct {
	Ordinal   uint32 `json:"ordinal"`
	Character uint32 `json:"member"`
	Rarity    Rarity `json:"rarity"`
}

// Character is a member of the roster
type Character struct {
	ID   uint32
	Slug string
}

// Roster is every character a catalog entry may reference, in display order
var Roster = []Character{
	{1, "honoka"},
	{2, "eli"},
	{3, "kotori"},
	{4, "umi"},
	{5, "rin"},
	{6, "maki"},
	{7, "nozomi"},
	{8, "hanayo"},
	{9, "nico"},
	{101, "chika"},
	{102, "riko"},
	{103, "kanan"},
	{104, "dia"},
	{105, "you"},
	{106, "yohane"},
	{107, "hanamaru"},
	{108, "mari"},
	{109, "ruby"},
	{201, "ayumu"},
	{202, "kasumi"},
	{203, "shizuku"},
	{204, "karin"},
	{205, "ai"},
	{206, "kanata"},
	{207, "setsuna"},
	{208, "emma"},
	{209, "rina"},
	{210, "shioriko"},
}

// CharacterSlug returns the roster slug for a character ID
func CharacterSlug(id uint32) (string, bool) {
	for _, c := range Roster {
		if c.ID == id {
			return c.Slug, true
		}
	}
	return "", false
}
