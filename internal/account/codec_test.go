package account

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idolplan/idolplan/internal/accessory"
	"github.com/idolplan/idolplan/internal/card"
)

func sampleAccount(t *testing.T) *Account {
	t.Helper()
	a := New()
	a.Bond = json.RawMessage(`{"1":{"bond_lv":40,"board_appeal":3,"board_stamina":2,"board_technique":1}}`)
	a.Advance(101, false)
	a.Advance(9, true)
	a.Advance(9, true)
	_, err := a.InsertAccessory(accessory.Candidate{Kind: "belt", Rarity: card.UR, Attribute: card.Natural, LimitBreak: 2, Level: 55, SkillLevel: 4})
	require.NoError(t, err)
	_, err = a.InsertAccessory(accessory.Candidate{Kind: "brooch", Rarity: card.R, Attribute: card.Smile, LimitBreak: 0, Level: 40, SkillLevel: 1})
	require.NoError(t, err)
	return a
}

func TestRoundTrip(t *testing.T) {
	a := sampleAccount(t)

	data, err := Marshal(a)
	require.NoError(t, err)

	b, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRoundTripEmpty(t *testing.T) {
	data, err := Marshal(New())
	require.NoError(t, err)
	assert.JSONEq(t, `{"bond":{},"album":{},"accs":[]}`, string(data))

	b, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, New(), b)
}

func TestMarshalShape(t *testing.T) {
	data, err := Marshal(sampleAccount(t))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"bond": {"1": {"bond_lv": 40, "board_appeal": 3, "board_stamina": 2, "board_technique": 1}},
		"album": {
			"101": {"idolized": false, "lb": 0},
			"9":   {"idolized": true, "lb": 5}
		},
		"accs": [
			{"kind": "belt", "rarity": 30, "attribute": 5, "lb": 2, "lv": 55, "sl": 4},
			{"kind": "brooch", "rarity": 10, "attribute": 1, "lb": 0, "lv": 40, "sl": 1}
		]
	}`, string(data))
}

func TestUnmarshalNormalizesKeys(t *testing.T) {
	a, err := Unmarshal([]byte(`{"bond": { }, "album": {"12": {"idolized": true, "lb": 3}}, "accs": []}`))
	require.NoError(t, err)

	s, owned := a.Status(12)
	require.True(t, owned)
	assert.Equal(t, CardStatus{Idolized: true, LimitBreak: 3}, s)
	assert.Equal(t, json.RawMessage(`{}`), a.Bond)
}

func TestUnmarshalKeepsUnknownOrdinals(t *testing.T) {
	a, err := Unmarshal([]byte(`{"bond":{},"album":{"4000000":{"idolized":false,"lb":0}},"accs":[]}`))
	require.NoError(t, err)
	assert.Equal(t, []uint32{4000000}, a.Owned())
}

func TestUnmarshalRejects(t *testing.T) {
	tests := map[string]string{
		"extra field":        `{"bond":{},"album":{},"accs":[],"accs2":[]}`,
		"missing bond":       `{"album":{},"accs":[]}`,
		"missing album":      `{"bond":{},"accs":[]}`,
		"missing accs":       `{"bond":{},"album":{}}`,
		"null album":         `{"bond":{},"album":null,"accs":[]}`,
		"not json":           `bond album accs`,
		"not an object":      `[1, 2, 3]`,
		"null":               `null`,
		"bad album key":      `{"bond":{},"album":{"abc":{"idolized":true,"lb":0}},"accs":[]}`,
		"negative key":       `{"bond":{},"album":{"-3":{"idolized":true,"lb":0}},"accs":[]}`,
		"duplicate key":      `{"bond":{},"album":{"7":{"idolized":true,"lb":0},"07":{"idolized":false,"lb":0}},"accs":[]}`,
		"album not map":      `{"bond":{},"album":[],"accs":[]}`,
		"accs not list":      `{"bond":{},"album":{},"accs":{}}`,
		"bad card status":    `{"bond":{},"album":{"1":{"idolized":"yes","lb":0}},"accs":[]}`,
		"null card status":   `{"bond":{},"album":{"5":null},"accs":[]}`,
		"empty card status":  `{"bond":{},"album":{"5":{}},"accs":[]}`,
		"extra status field": `{"bond":{},"album":{"5":{"idolized":true,"lb":0,"fav":true}},"accs":[]}`,
		"bad utf8 bond":      "{\"bond\":{\"k\":\"\xff\"},\"album\":{},\"accs\":[]}",
		"bad utf8 kind":      "{\"bond\":{},\"album\":{},\"accs\":[{\"kind\":\"b\xffelt\",\"rarity\":30,\"attribute\":3,\"lb\":0,\"lv\":60,\"sl\":1}]}",
		"empty accessory":    `{"bond":{},"album":{},"accs":[{}]}`,
		"null accessory":     `{"bond":{},"album":{},"accs":[null]}`,
		"accessory no sl":    `{"bond":{},"album":{},"accs":[{"kind":"belt","rarity":30,"attribute":3,"lb":0,"lv":60}]}`,
		"accessory extra":    `{"bond":{},"album":{},"accs":[{"kind":"belt","rarity":30,"attribute":3,"lb":0,"lv":60,"sl":1,"id":4}]}`,
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			a, err := Unmarshal([]byte(text))
			assert.ErrorIs(t, err, ErrInvalidAccount)
			assert.Nil(t, a)
		})
	}
}

func TestUnmarshalMarshalIsStable(t *testing.T) {
	text := []byte(`{"bond":{"k":"é♪"},"album":{"3":{"idolized":true,"lb":1}},` +
		`"accs":[{"kind":"belt","rarity":30,"attribute":3,"lb":0,"lv":60,"sl":1}]}`)

	a, err := Unmarshal(text)
	require.NoError(t, err)
	data, err := Marshal(a)
	require.NoError(t, err)
	b, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
