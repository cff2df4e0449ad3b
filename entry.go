package icd

import (
	"strings"

	"github.com/gofhir/fhir/r4"
)

// Entry is one catalog record: a raw classification code and its
// description. Entries are immutable values; two entries are the same
// catalog member exactly when both fields are equal. Normalized codes
// are a matching key only and play no part in entry identity.
type Entry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Normalized returns the matching key for the entry's code.
func (e Entry) Normalized() string {
	return NormalizeCode(e.Code)
}

// NormalizeCode strips every character outside ASCII [0-9A-Za-z] from
// code and uppercases the remainder. Find and Search match on
// normalized codes, so "A00.0", "a000" and "A000" all address the same
// entry. Normalization is ASCII-only; the catalog sources contain no
// other text.
func NormalizeCode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case c >= '0' && c <= '9', c >= 'A' && c <= 'Z':
			b.WriteByte(c)
		case c >= 'a' && c <= 'z':
			b.WriteByte(c - 'a' + 'A')
		}
	}
	return b.String()
}

// Coding returns the entry as a FHIR R4 Coding in the subset's
// canonical code system.
func (e Entry) Coding(subset Subset) r4.Coding {
	system := subset.System()
	code := e.Code
	display := e.Description
	return r4.Coding{
		System:  &system,
		Code:    &code,
		Display: &display,
	}
}

// CodeableConcept returns the entry as a FHIR R4 CodeableConcept with
// a single Coding and the description as text.
func (e Entry) CodeableConcept(subset Subset) r4.CodeableConcept {
	text := e.Description
	return r4.CodeableConcept{
		Coding: []r4.Coding{e.Coding(subset)},
		Text:   &text,
	}
}
