package profile

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Unify maps spelling variants of a label onto one canonical attribute name:
// surrounding whitespace is dropped, letters are lowercased and inner
// whitespace runs become a single underscore ("Sweet  Food " -> "sweet_food").
//
// Unify is idempotent.
func Unify(attr string) string {
	// cases.Caser keeps internal state, so one per call.
	lowered := cases.Lower(language.Und).String(attr)
	return strings.Join(strings.Fields(lowered), "_")
}
