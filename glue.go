package oxford

import (
	"fmt"
	"io"
	"strings"
)

// Glued is a deferred plain join: the glue goes between every pair of items,
// with no serial comma or conjunction. It is the lazy counterpart of
// [strings.Join] and, like [Lazy], may be rendered any number of times.
type Glued[S ~string] struct {
	items []S
	glue  string
}

// Glue returns a deferred join of items separated by glue.
//
//	fmt.Sprint(oxford.Glue(" + ", "a", "b")) // "a + b"
func Glue[S ~string](glue string, items ...S) Glued[S] {
	return Glued[S]{items: items, glue: glue}
}

// Len returns the byte length of the rendered output.
func (g Glued[S]) Len() int {
	if len(g.items) == 0 {
		return 0
	}
	n := len(g.glue) * (len(g.items) - 1)
	for _, item := range g.items {
		n += len(item)
	}
	return n
}

// String renders g into a new string.
func (g Glued[S]) String() string {
	var sb strings.Builder
	sb.Grow(g.Len())
	_, _ = g.WriteTo(&sb)
	return sb.String()
}

// WriteTo implements [io.WriterTo].
func (g Glued[S]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range g.items {
		if i > 0 && g.glue != "" {
			n, err := io.WriteString(w, g.glue)
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := io.WriteString(w, string(item))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Format implements [fmt.Formatter] with the same rules as [Lazy.Format].
func (g Glued[S]) Format(f fmt.State, verb rune) {
	_, hasWidth := f.Width()
	_, hasPrec := f.Precision()
	if (verb == 's' || verb == 'v') && !hasWidth && !hasPrec && !f.Flag('#') {
		_, _ = g.WriteTo(f)
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), g.String())
}
