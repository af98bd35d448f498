package solver

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/idolplan/idolplan/internal/accessory"
	"github.com/idolplan/idolplan/internal/account"
	"github.com/idolplan/idolplan/internal/catalog"
)

// DisplayOrder is the slot order a team is shown in: the middle strategy first
var DisplayOrder = [TeamSize]int{3, 4, 5, 0, 1, 2, 6, 7, 8}

// Result is a proposed team
type Result struct {
	Voltage float64
	// Cards holds catalog ordinals, three per strategy.
	Cards [TeamSize]uint32
	// SP3 indexes into Cards: the SP center followed by two backups.
	SP3 [3]uint32
	// Accs indexes into the account's accessories; an index past the end
	// means the slot has no accessory.
	Accs [TeamSize]uint32
}

type wireResult struct {
	Voltage *float64 `json:"voltage"`
	Cards   []uint32 `json:"cards"`
	SP3     []uint32 `json:"sp3"`
	Accs    []uint32 `json:"accs"`
}

// DecodeResult parses solver output
func DecodeResult(data []byte) (Result, error) {
	var w wireResult
	if err := sonic.Unmarshal(data, &w); err != nil {
		return Result{}, fmt.Errorf("error parsing solver result: %w", err)
	}
	if w.Voltage == nil {
		return Result{}, fmt.Errorf("solver result has no voltage")
	}
	if len(w.Cards) != TeamSize || len(w.Accs) != TeamSize {
		return Result{}, fmt.Errorf("solver result must list %d cards and %d accessories, got %d and %d",
			TeamSize, TeamSize, len(w.Cards), len(w.Accs))
	}
	if len(w.SP3) != 0 && len(w.SP3) != 3 {
		return Result{}, fmt.Errorf("solver result lists %d sp3 entries", len(w.SP3))
	}

	res := Result{Voltage: *w.Voltage}
	copy(res.Cards[:], w.Cards)
	copy(res.Accs[:], w.Accs)
	if len(w.SP3) == 3 {
		copy(res.SP3[:], w.SP3)
	} else {
		res.SP3 = [3]uint32{TeamSize, TeamSize, TeamSize}
	}
	return res, nil
}

// SPRole is a slot's part in the SP skill
type SPRole int

const (
	SPNone SPRole = iota
	SPCenter
	SPBackup
)

// Slot is one resolved team position
type Slot struct {
	Index     int
	Ordinal   uint32
	Lemma     string
	Idolized  bool
	SP        SPRole
	Accessory *accessory.Accessory
}

// Team resolves a result against the catalog and the account it was solved
// for, in DisplayOrder.
func Team(res Result, c *catalog.Catalog, a *account.Account) []Slot {
	slots := make([]Slot, 0, TeamSize)
	for _, i := range DisplayOrder {
		s := Slot{Index: i, Ordinal: res.Cards[i]}
		s.Lemma, _ = c.Lemma(s.Ordinal)
		if status, ok := a.Status(s.Ordinal); ok {
			s.Idolized = status.Idolized
		}

		switch uint32(i) {
		case res.SP3[0]:
			s.SP = SPCenter
		case res.SP3[1], res.SP3[2]:
			s.SP = SPBackup
		}

		if j := res.Accs[i]; int(j) < len(a.Accs) {
			acc := a.Accs[j]
			s.Accessory = &acc
		}
		slots = append(slots, s)
	}
	return slots
}
