package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idolplan/idolplan/internal/accessory"
	"github.com/idolplan/idolplan/internal/account"
	"github.com/idolplan/idolplan/internal/card"
	"github.com/idolplan/idolplan/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(`[
		{"ordinal": 1, "member": 1, "rarity": 10},
		{"ordinal": 2, "member": 1, "rarity": 30},
		{"ordinal": 3, "member": 2, "rarity": 20}
	]`))
	require.NoError(t, err)
	return c
}

func TestValidateCleanAccount(t *testing.T) {
	a := account.New()
	a.Advance(1, false)
	a.Advance(2, true)
	_, err := a.InsertAccessory(accessory.Candidate{Kind: "belt", Rarity: card.UR, Attribute: card.Cool, Level: 60, SkillLevel: 3})
	require.NoError(t, err)

	results, err := NewValidator(testCatalog(t), a).Validate()
	require.NoError(t, err)
	assert.True(t, results.Valid())
	assert.Empty(t, results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidateUnknownOrdinal(t *testing.T) {
	a := account.New()
	a.Album[77] = account.CardStatus{Idolized: true}

	results, err := NewValidator(testCatalog(t), a).Validate()
	require.NoError(t, err)
	assert.False(t, results.Valid())
	require.Len(t, results.Errors, 1)
	assert.Contains(t, results.Errors[0], "77")
}

func TestValidateCardStatus(t *testing.T) {
	a := account.New()
	a.Album[1] = account.CardStatus{Idolized: false, LimitBreak: 2}
	a.Album[2] = account.CardStatus{Idolized: true, LimitBreak: 9}

	results, err := NewValidator(testCatalog(t), a).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 1)
	assert.Contains(t, results.Errors[0], "honoka-ur1")
	require.Len(t, results.Warnings, 1)
	assert.Contains(t, results.Warnings[0], "honoka-r1")
}

func TestValidateAccessories(t *testing.T) {
	a := account.New()
	a.Accs = []accessory.Accessory{
		{Kind: "choker", Rarity: card.R, Attribute: card.Smile, Level: 10, SkillLevel: 1},
		{Kind: "brooch", Rarity: card.R, Attribute: card.Smile, Level: 55, SkillLevel: 1},
		{Kind: "brooch", Rarity: card.R, Attribute: card.Smile, Level: 10, SkillLevel: 0},
		{Kind: "brooch", Rarity: card.R, Attribute: card.Smile, Level: 10, SkillLevel: 1},
	}

	results, err := NewValidator(testCatalog(t), a).Validate()
	require.NoError(t, err)
	require.Len(t, results.Errors, 3)
	assert.Contains(t, results.Errors[0], "accessory 0")
	assert.Contains(t, results.Errors[1], "accessory 1")
	assert.Contains(t, results.Errors[2], "accessory 2")
}

func TestValidateBondShape(t *testing.T) {
	a := account.New()
	a.Bond = json.RawMessage(`[]`)

	results, err := NewValidator(testCatalog(t), a).Validate()
	require.NoError(t, err)
	assert.True(t, results.Valid())
	assert.Len(t, results.Warnings, 1)
}

func TestValidateNeedsInputs(t *testing.T) {
	_, err := NewValidator(nil, account.New()).Validate()
	assert.Error(t, err)
}
