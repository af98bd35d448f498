package account

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/bytedance/sonic"

	"github.com/idolplan/idolplan/internal/accessory"
)

// ErrInvalidAccount is returned by Unmarshal for anything that is not a
// well-formed account. Nothing is partially applied.
var ErrInvalidAccount = errors.New("not a real account")

// wireAccount is the exchanged text form. Album keys are text because JSON
// object keys are.
type wireAccount struct {
	Bond  json.RawMessage       `json:"bond"`
	Album map[string]CardStatus `json:"album"`
	Accs  []accessory.Accessory `json:"accs"`
}

// Marshal serializes an account to its exchange text
func Marshal(a *Account) ([]byte, error) {
	w := wireAccount{
		Bond:  a.Bond,
		Album: make(map[string]CardStatus, len(a.Album)),
		Accs:  a.Accs,
	}
	if len(w.Bond) == 0 {
		w.Bond = json.RawMessage(`{}`)
	}
	if w.Accs == nil {
		w.Accs = []accessory.Accessory{}
	}
	for ordinal, status := range a.Album {
		w.Album[strconv.FormatUint(uint64(ordinal), 10)] = status
	}

	data, err := sonic.ConfigStd.Marshal(&w)
	if err != nil {
		return nil, fmt.Errorf("error encoding account: %w", err)
	}
	return data, nil
}

// Unmarshal parses exchange text into a new account.
//
// The text must be valid UTF-8 and an object with exactly the fields bond,
// album and accs, none of them null. Every album key must be a decimal
// ordinal, and card statuses and accessories must carry exactly their own
// fields, none null. Ordinals are not checked against a catalog here; see
// the validator package.
func Unmarshal(data []byte) (*Account, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrInvalidAccount)
	}

	top, err := decodeRecord(data, accountFields)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccount, err)
	}

	var bond bytes.Buffer
	if err := json.Compact(&bond, top["bond"]); err != nil {
		return nil, fmt.Errorf("%w: bond: %v", ErrInvalidAccount, err)
	}

	var album map[string]json.RawMessage
	if err := sonic.ConfigStd.Unmarshal(top["album"], &album); err != nil {
		return nil, fmt.Errorf("%w: album: %v", ErrInvalidAccount, err)
	}

	a := &Account{
		Bond:  json.RawMessage(bond.Bytes()),
		Album: make(map[uint32]CardStatus, len(album)),
		Accs:  []accessory.Accessory{},
	}
	for key, raw := range album {
		ordinal, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: album key %q is not an ordinal", ErrInvalidAccount, key)
		}
		if _, dup := a.Album[uint32(ordinal)]; dup {
			return nil, fmt.Errorf("%w: ordinal %d listed twice", ErrInvalidAccount, ordinal)
		}

		var status CardStatus
		if err := decodeInto(raw, statusFields, &status); err != nil {
			return nil, fmt.Errorf("%w: album card %d: %v", ErrInvalidAccount, ordinal, err)
		}
		a.Album[uint32(ordinal)] = status
	}

	var accs []json.RawMessage
	if err := sonic.ConfigStd.Unmarshal(top["accs"], &accs); err != nil {
		return nil, fmt.Errorf("%w: accs: %v", ErrInvalidAccount, err)
	}
	for i, raw := range accs {
		var acc accessory.Accessory
		if err := decodeInto(raw, accessoryFields, &acc); err != nil {
			return nil, fmt.Errorf("%w: accessory %d: %v", ErrInvalidAccount, i, err)
		}
		a.Accs = append(a.Accs, acc)
	}

	return a, nil
}

var (
	accountFields   = []string{"bond", "album", "accs"}
	statusFields    = []string{"idolized", "lb"}
	accessoryFields = []string{"kind", "rarity", "attribute", "lb", "lv", "sl"}
)

// decodeRecord decodes a JSON object whose keys must be exactly fields,
// with no value null.
func decodeRecord(raw []byte, fields []string) (map[string]json.RawMessage, error) {
	if isNull(raw) {
		return nil, errors.New("null where an object is expected")
	}

	var rec map[string]json.RawMessage
	if err := sonic.ConfigStd.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	for key := range rec {
		if !slices.Contains(fields, key) {
			return nil, fmt.Errorf("unexpected field %q", key)
		}
	}
	for _, key := range fields {
		if v, ok := rec[key]; !ok || isNull(v) {
			return nil, fmt.Errorf("missing field %q", key)
		}
	}
	return rec, nil
}

// decodeInto checks the shape of raw with decodeRecord, then decodes it into v
func decodeInto(raw []byte, fields []string, v any) error {
	if _, err := decodeRecord(raw, fields); err != nil {
		return err
	}
	return sonic.ConfigStd.Unmarshal(raw, v)
}

func isNull(raw []byte) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
