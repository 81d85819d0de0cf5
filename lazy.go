package oxford

import (
	"fmt"
	"io"
	"slices"
)

// Lazy is a deferred [Join]. It holds the items and conjunction it was built
// with and renders only when asked: written to an [io.Writer], appended to a
// byte slice, or formatted through the fmt package.
//
// Rendering never mutates a Lazy and may be repeated. The items slice is
// borrowed, so it must not be modified while the Lazy is in use.
//
//	fmt.Printf("missing %s\n", oxford.LazyAnd(names...))
type Lazy[S ~string] struct {
	items []S
	conj  Conjunction
}

// LazyJoin returns a deferred join of items with c. Nothing is computed or
// allocated until the result is rendered.
func LazyJoin[S ~string](c Conjunction, items ...S) Lazy[S] {
	return Lazy[S]{items: items, conj: c}
}

// LazyAnd is LazyJoin with [And].
func LazyAnd[S ~string](items ...S) Lazy[S] { return LazyJoin(And, items...) }

// LazyOr is LazyJoin with [Or].
func LazyOr[S ~string](items ...S) Lazy[S] { return LazyJoin(Or, items...) }

// LazyAndOr is LazyJoin with [AndOr].
func LazyAndOr[S ~string](items ...S) Lazy[S] { return LazyJoin(AndOr, items...) }

// LazyNor is LazyJoin with [Nor].
func LazyNor[S ~string](items ...S) Lazy[S] { return LazyJoin(Nor, items...) }

// Len returns the byte length of the rendered output.
func (l Lazy[S]) Len() int { return Capacity(l.conj, l.items...) }

// Conjunction returns the conjunction l joins with.
func (l Lazy[S]) Conjunction() Conjunction { return l.conj }

// String renders l into a new string.
func (l Lazy[S]) String() string { return Join(l.conj, l.items...) }

// WriteTo implements [io.WriterTo].
func (l Lazy[S]) WriteTo(w io.Writer) (int64, error) {
	return writeJoin(w, l.conj, l.items)
}

// AppendTo appends the rendered output to dst, growing it at most once.
func (l Lazy[S]) AppendTo(dst []byte) []byte {
	dst = slices.Grow(dst, l.Len())
	return appendJoin(dst, l.conj, l.items)
}

// Format implements [fmt.Formatter]. The %s and %v verbs without width,
// precision or the # flag write straight into the formatter's buffer;
// anything else is applied to the rendered string.
func (l Lazy[S]) Format(f fmt.State, verb rune) {
	_, hasWidth := f.Width()
	_, hasPrec := f.Precision()
	if (verb == 's' || verb == 'v') && !hasWidth && !hasPrec && !f.Flag('#') {
		_, _ = writeJoin(f, l.conj, l.items)
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), l.String())
}
