package fonts

import "strings"

// Traits is a set of symbolic font traits.
type Traits uint8

const (
	// TraitBold requests a bold cut of the family.
	TraitBold Traits = 1 << iota
	// TraitItalic requests an italic cut of the family.
	TraitItalic
)

// Has reports whether all of the given traits are set.
func (t Traits) Has(traits Traits) bool {
	return t&traits == traits
}

// With returns a copy of the set with the given traits added.
func (t Traits) With(traits Traits) Traits {
	return t | traits
}

// Without returns a copy of the set with the given traits removed.
func (t Traits) Without(traits Traits) Traits {
	return t &^ traits
}

// String returns a human-readable representation of the trait set.
func (t Traits) String() string {
	if t == 0 {
		return "none"
	}
	var parts []string
	if t.Has(TraitBold) {
		parts = append(parts, "bold")
	}
	if t.Has(TraitItalic) {
		parts = append(parts, "italic")
	}
	return strings.Join(parts, "|")
}
