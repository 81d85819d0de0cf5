package oxford

import (
	"errors"
	"strings"
)

// ErrInvalidConjunction is returned when a conjunction cannot be decoded.
var ErrInvalidConjunction = errors.New("invalid conjunction")

// Kind identifies a well-known conjunction. KindCustom covers everything else,
// including the empty conjunction.
type Kind int

const (
	KindCustom Kind = iota
	KindAnd
	KindOr
	KindAndOr
	KindNor
	KindAmpersand
	KindPlus
)

var kindNames = [...]string{
	KindCustom:    "custom",
	KindAnd:       "and",
	KindOr:        "or",
	KindAndOr:     "and/or",
	KindNor:       "nor",
	KindAmpersand: "ampersand",
	KindPlus:      "plus",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Conjunction is the word placed before the last item of a joined list.
//
// Its rendering always carries exactly one trailing space unless it is empty,
// so it can be written directly in front of the final item. The zero value is
// the empty conjunction, which joins the final item with a plain comma.
//
// Conjunction values are comparable; == agrees with [Conjunction.Equal].
type Conjunction struct {
	kind Kind
	text string // normalized custom text, trailing space included
}

// Well-known conjunctions.
var (
	And       = Conjunction{kind: KindAnd}
	Or        = Conjunction{kind: KindOr}
	AndOr     = Conjunction{kind: KindAndOr}
	Nor       = Conjunction{kind: KindNor}
	Ampersand = Conjunction{kind: KindAmpersand}
	Plus      = Conjunction{kind: KindPlus}
)

var conjunctions = []Conjunction{And, Or, AndOr, Nor, Ampersand, Plus}

// Conjunctions returns the well-known conjunctions.
func Conjunctions() []Conjunction {
	out := make([]Conjunction, len(conjunctions))
	copy(out, conjunctions)
	return out
}

// FromKind returns the well-known conjunction for k. KindCustom and unknown
// kinds yield the empty conjunction.
func FromKind(k Kind) Conjunction {
	switch k {
	case KindAnd, KindOr, KindAndOr, KindNor, KindAmpersand, KindPlus:
		return Conjunction{kind: k}
	default:
		return Conjunction{}
	}
}

// Custom returns a conjunction for arbitrary text. Surrounding whitespace is
// trimmed and a single trailing space appended; text that is empty after
// trimming yields the empty conjunction. Text matching a well-known word
// yields that conjunction, so Custom(" or ") == Or.
func Custom(text string) Conjunction {
	word := strings.TrimSpace(text)
	if word == "" {
		return Conjunction{}
	}
	for _, c := range conjunctions {
		if c.Word() == word {
			return c
		}
	}
	return Conjunction{text: word + " "}
}

// Kind reports which well-known conjunction c is, or KindCustom.
func (c Conjunction) Kind() Kind { return c.kind }

// Text returns the rendering used before the final item, including its
// trailing space. It is empty for the empty conjunction.
func (c Conjunction) Text() string {
	switch c.kind {
	case KindAnd:
		return "and "
	case KindOr:
		return "or "
	case KindAndOr:
		return "and/or "
	case KindNor:
		return "nor "
	case KindAmpersand:
		return "& "
	case KindPlus:
		return "+ "
	default:
		return c.text
	}
}

// Word returns the conjunction without its trailing space.
func (c Conjunction) Word() string {
	t := c.Text()
	if t == "" {
		return ""
	}
	return t[:len(t)-1]
}

// String returns [Conjunction.Word].
func (c Conjunction) String() string { return c.Word() }

// Len returns the byte length of [Conjunction.Text].
func (c Conjunction) Len() int {
	switch c.kind {
	case KindAnd, KindNor:
		return 4
	case KindOr:
		return 3
	case KindAndOr:
		return 7
	case KindAmpersand, KindPlus:
		return 2
	default:
		return len(c.text)
	}
}

// IsEmpty reports whether c has no text.
func (c Conjunction) IsEmpty() bool { return c.Len() == 0 }

// Equal reports whether c and other render the same text.
func (c Conjunction) Equal(other Conjunction) bool { return c.Text() == other.Text() }

// Compare orders conjunctions by their text.
func (c Conjunction) Compare(other Conjunction) int {
	return strings.Compare(c.Text(), other.Text())
}

// MarshalText implements [encoding.TextMarshaler]. The trailing space is
// omitted.
func (c Conjunction) MarshalText() ([]byte, error) {
	return []byte(c.Word()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [Custom].
func (c *Conjunction) UnmarshalText(text []byte) error {
	*c = Custom(string(text))
	return nil
}
