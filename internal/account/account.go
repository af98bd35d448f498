package account

import (
	"encoding/json"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/idolplan/idolplan/internal/accessory"
)

// MaxLimitBreak is the highest limit break a card can reach
const MaxLimitBreak = 5

// CardStatus is the upgrade state of an owned card
type CardStatus struct {
	Idolized   bool `json:"idolized"`
	LimitBreak int  `json:"lb" validate:"gte=0,lte=5"`
}

// Account is everything a player records about their collection.
//
// Album only holds owned cards; a card leaves the album when it is
// discarded. Accessories carry no identity and are addressed by position.
type Account struct {
	// Bond is passed through untouched; its shape belongs to the solver.
	Bond  json.RawMessage
	Album map[uint32]CardStatus
	Accs  []accessory.Accessory
}

// New returns an empty account
func New() *Account {
	return &Account{
		Bond:  json.RawMessage(`{}`),
		Album: make(map[uint32]CardStatus),
		Accs:  []accessory.Accessory{},
	}
}

// Status returns the state of a card and whether it is owned
func (a *Account) Status(ordinal uint32) (CardStatus, bool) {
	s, ok := a.Album[ordinal]
	return s, ok
}

// Advance moves a card one step around its upgrade cycle:
//
//	unowned -> owned -> idolized -> LB1 .. LB5 -> unowned
//
// With fast set, an unowned card is added already idolized and an idolized
// card below LB5 jumps straight to LB5. Idolizing itself is always a single step.
func (a *Account) Advance(ordinal uint32, fast bool) {
	if a.Album == nil {
		a.Album = make(map[uint32]CardStatus)
	}

	s, owned := a.Album[ordinal]
	switch {
	case !owned:
		s = CardStatus{Idolized: fast}
	case !s.Idolized:
		s.Idolized = true
	case s.LimitBreak < MaxLimitBreak:
		if fast {
			s.LimitBreak = MaxLimitBreak
		} else {
			s.LimitBreak++
		}
	default:
		delete(a.Album, ordinal)
		log.Debug().Uint32("ordinal", ordinal).Msg("card discarded")
		return
	}
	a.Album[ordinal] = s
	log.Debug().Uint32("ordinal", ordinal).Bool("idolized", s.Idolized).Int("lb", s.LimitBreak).Msg("card advanced")
}

// Owned returns the ordinals of every owned card in ascending order
func (a *Account) Owned() []uint32 {
	ordinals := make([]uint32, 0, len(a.Album))
	for ordinal := range a.Album {
		ordinals = append(ordinals, ordinal)
	}
	sort.Slice(ordinals, func(i, j int) bool { return ordinals[i] < ordinals[j] })
	return ordinals
}

// InsertAccessory sanitizes a candidate and appends it to the inventory.
// Duplicates are allowed.
func (a *Account) InsertAccessory(c accessory.Candidate) (accessory.Accessory, error) {
	acc, err := accessory.ValidateAndClamp(c)
	if err != nil {
		return accessory.Accessory{}, err
	}
	a.Accs = append(a.Accs, acc)
	return acc, nil
}

// RemoveAccessoryAt removes the accessory at position i. A position outside
// the inventory is ignored and reported as false.
func (a *Account) RemoveAccessoryAt(i int) bool {
	if i < 0 || i >= len(a.Accs) {
		log.Debug().Int("index", i).Int("len", len(a.Accs)).Msg("stale accessory removal ignored")
		return false
	}
	a.Accs = append(a.Accs[:i], a.Accs[i+1:]...)
	return true
}
