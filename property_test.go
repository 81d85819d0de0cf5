package oxford_test

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/bjaus/oxford"
)

// Property: len(Join(c, items)) == Capacity(c, items)
func TestProperty_CapacityIsExact(t *testing.T) {
	property := func(items []string, word string) bool {
		c := oxford.Custom(word)
		return len(oxford.Join(c, items...)) == oxford.Capacity(c, items...)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: every Lazy rendering equals Join, and rendering twice is stable.
func TestProperty_LazyMatchesJoin(t *testing.T) {
	property := func(items []string, word string) bool {
		c := oxford.Custom(word)
		want := oxford.Join(c, items...)
		l := oxford.LazyJoin(c, items...)

		var buf bytes.Buffer
		if _, err := l.WriteTo(&buf); err != nil {
			t.Logf("write failed: %v", err)
			return false
		}
		return buf.String() == want &&
			l.String() == want &&
			string(l.AppendTo(nil)) == want &&
			string(oxford.Marshal(c, items...)) == want
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: Custom(w) == Custom(w + " ") and Custom(Custom(w).Text()) == Custom(w)
func TestProperty_CustomNormalization(t *testing.T) {
	property := func(word string) bool {
		c := oxford.Custom(word)
		if c != oxford.Custom(word+" ") || c != oxford.Custom(c.Text()) {
			return false
		}
		text := c.Text()
		if c.IsEmpty() {
			return text == ""
		}
		return text[len(text)-1] == ' ' && c.Len() == len(text)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// Property: adding an item to a list of three or more grows it by the item
// plus one ", " separator.
func TestProperty_GrowthPerItem(t *testing.T) {
	property := func(a, b, c, next string, word string) bool {
		conj := oxford.Custom(word)
		before := oxford.Join(conj, a, b, c)
		after := oxford.Join(conj, a, b, c, next)
		return len(after)-len(before) == len(next)+2
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
