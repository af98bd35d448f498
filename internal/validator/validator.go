package validator

import (
	"bytes"
	"fmt"

	playground "github.com/go-playground/validator/v10"

	"github.com/idolplan/idolplan/internal/accessory"
	"github.com/idolplan/idolplan/internal/account"
	"github.com/idolplan/idolplan/internal/catalog"
)

// fieldValidate checks the struct-tag bounds on card statuses and accessories
var fieldValidate = playground.New(playground.WithRequiredStructEnabled())

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found; warnings are allowed
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

// Validator is the semantic pass over a loaded account. Unmarshal only checks
// structure; this is where ordinals are matched against the live catalog.
type Validator struct {
	Catalog *catalog.Catalog
	Account *account.Account
	Results ValidationResults
}

func NewValidator(c *catalog.Catalog, a *account.Account) *Validator {
	return &Validator{
		Catalog: c,
		Account: a,
		Results: ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if v.Catalog == nil || v.Account == nil {
		return v.Results, fmt.Errorf("validator needs both a catalog and an account")
	}

	v.validateBond()
	v.validateAlbum()
	v.validateAccessories()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateBond only checks the outer shape; the contents belong to the solver
func (v *Validator) validateBond() {
	bond := bytes.TrimSpace(v.Account.Bond)
	if len(bond) == 0 || bond[0] != '{' {
		v.warnf("bond is not an object")
	}
}

// validateAlbum checks every owned card against the catalog
func (v *Validator) validateAlbum() {
	for _, ordinal := range v.Account.Owned() {
		status := v.Account.Album[ordinal]

		lemma, ok := v.Catalog.Lemma(ordinal)
		if !ok {
			v.errorf("album card %d is not in the catalog", ordinal)
			lemma = fmt.Sprint(ordinal)
		}

		if err := fieldValidate.Struct(status); err != nil {
			v.errorf("album card %s: limit break %d out of range 0-%d", lemma, status.LimitBreak, account.MaxLimitBreak)
			continue
		}

		if !status.Idolized && status.LimitBreak > 0 {
			v.warnf("album card %s has limit break %d but is not idolized", lemma, status.LimitBreak)
		}
	}
}

// validateAccessories checks kind legality and field bounds of every accessory
func (v *Validator) validateAccessories() {
	for i, acc := range v.Account.Accs {
		if err := accessory.Check(acc.Kind, acc.Rarity, acc.Attribute); err != nil {
			v.errorf("accessory %d: %v", i, err)
			continue
		}

		if err := fieldValidate.Struct(acc); err != nil {
			if errs, ok := err.(playground.ValidationErrors); ok {
				for _, fe := range errs {
					v.errorf("accessory %d: %s=%v fails %s", i, fe.Field(), fe.Value(), fe.Tag())
				}
			} else {
				v.errorf("accessory %d: %v", i, err)
			}
			continue
		}

		if acc.Level > accessory.MaxLevel(acc.Rarity) {
			v.errorf("accessory %d: level %d above %s cap %d", i, acc.Level, acc.Rarity, accessory.MaxLevel(acc.Rarity))
		}
	}
}
