package accessory

import (
	"errors"
	"fmt"
	"slices"

	"github.com/idolplan/idolplan/internal/card"
)

// ErrInvalidAccessorySelection is returned when a kind is unknown or the
// requested rarity or attribute is not offered for that kind.
var ErrInvalidAccessorySelection = errors.New("invalid accessory selection")

const (
	MinLimitBreak = 0
	MaxLimitBreak = 5
	MinLevel      = 1
	MinSkillLevel = 1
	MaxSkillLevel = 20
)

// Accessory is one owned accessory. The JSON names are the ones the solver reads.
type Accessory struct {
	Kind       string         `json:"kind" validate:"required"`
	Rarity     card.Rarity    `json:"rarity" validate:"oneof=10 20 30"`
	Attribute  card.Attribute `json:"attribute"`
	LimitBreak int            `json:"lb" validate:"gte=0,lte=5"`
	Level      int            `json:"lv" validate:"gte=1,lte=60"`
	SkillLevel int            `json:"sl" validate:"gte=1,lte=20"`
}

// Candidate holds user-supplied accessory fields before sanitizing
type Candidate struct {
	Kind       string
	Rarity     card.Rarity
	Attribute  card.Attribute
	LimitBreak int
	Level      int
	SkillLevel int
}

// Rule lists the rarities and attributes a kind comes in
type Rule struct {
	Rarities   []card.Rarity
	Attributes []card.Attribute
}

var all = []card.Rarity{card.R, card.SR, card.UR}
var urOnly = []card.Rarity{card.UR}

// Kinds is the accessory kind table in display order
var Kinds = []string{
	"brooch", "bracelet", "necklace", "choker", "belt", "bangle",
	"keychain", "hairpin", "earring", "pouch", "ribbon", "wristband", "towel",
}

var rules = map[string]Rule{
	"brooch":    {all, []card.Attribute{card.Smile, card.Cool, card.Natural}},
	"bracelet":  {all, []card.Attribute{card.Smile, card.Active, card.Elegant}},
	"necklace":  {all, []card.Attribute{card.Active, card.Natural, card.Elegant}},
	"choker":    {urOnly, []card.Attribute{card.Smile, card.Elegant}},
	"belt":      {urOnly, []card.Attribute{card.Cool, card.Natural}},
	"bangle":    {urOnly, []card.Attribute{card.Pure, card.Active}},
	"keychain":  {all, []card.Attribute{card.Pure, card.Active, card.Elegant}},
	"hairpin":   {all, []card.Attribute{card.Pure, card.Cool, card.Natural}},
	"earring":   {all, []card.Attribute{card.Smile, card.Pure, card.Cool}},
	"pouch":     {all, []card.Attribute{card.Cool, card.Active, card.Elegant}},
	"ribbon":    {all, []card.Attribute{card.Smile, card.Pure, card.Natural}},
	"wristband": {all, []card.Attribute{card.Smile, card.Cool, card.Elegant}},
	"towel":     {all, []card.Attribute{card.Pure, card.Active, card.Natural}},
}

// RuleFor returns the rule for a kind
func RuleFor(kind string) (Rule, bool) {
	r, ok := rules[kind]
	return r, ok
}

// MaxLevel returns the level cap of an accessory rarity, or 0 for an unknown rarity
func MaxLevel(r card.Rarity) int {
	switch r {
	case card.R:
		return 40
	case card.SR:
		return 50
	case card.UR:
		return 60
	}
	return 0
}

// Check reports whether kind, rarity and attribute form a legal combination
func Check(kind string, rarity card.Rarity, attribute card.Attribute) error {
	rule, ok := rules[kind]
	if !ok {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidAccessorySelection, kind)
	}
	if !slices.Contains(rule.Rarities, rarity) {
		return fmt.Errorf("%w: %s does not come in %s", ErrInvalidAccessorySelection, kind, rarity)
	}
	if !slices.Contains(rule.Attributes, attribute) {
		return fmt.Errorf("%w: %s does not come in %s", ErrInvalidAccessorySelection, kind, attribute)
	}
	return nil
}

// ValidateAndClamp turns a candidate into an Accessory. The kind, rarity and
// attribute must be legal together; lb, lv and sl are clamped into range.
func ValidateAndClamp(c Candidate) (Accessory, error) {
	if err := Check(c.Kind, c.Rarity, c.Attribute); err != nil {
		return Accessory{}, err
	}
	return Accessory{
		Kind:       c.Kind,
		Rarity:     c.Rarity,
		Attribute:  c.Attribute,
		LimitBreak: clamp(c.LimitBreak, MinLimitBreak, MaxLimitBreak),
		Level:      clamp(c.Level, MinLevel, MaxLevel(c.Rarity)),
		SkillLevel: clamp(c.SkillLevel, MinSkillLevel, MaxSkillLevel),
	}, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// String gives the one-line summary used in listings, e.g. "UR cool belt LB5 SL1 Lv60"
func (a Accessory) String() string {
	return fmt.Sprintf("%s %s %s LB%d SL%d Lv%d", a.Rarity, a.Attribute, a.Kind, a.LimitBreak, a.SkillLevel, a.Level)
}
