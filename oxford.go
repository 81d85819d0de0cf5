package oxford

import (
	"io"
	"strings"
)

const commaSpace = ", "

// Capacity returns the exact byte length of Join(c, items...). Only item
// lengths are read.
func Capacity[S ~string](c Conjunction, items ...S) int {
	switch n := len(items); n {
	case 0:
		return 0
	case 1:
		return len(items[0])
	case 2:
		size := len(items[0]) + len(items[1])
		if c.IsEmpty() {
			return size + len(commaSpace)
		}
		return size + 1 + c.Len()
	default:
		size := 0
		for _, item := range items {
			size += len(item)
		}
		return size + (n-1)*len(commaSpace) + c.Len()
	}
}

// Join renders items as an English list with a serial comma:
//
//	""                        // zero items
//	"first"                   // one item
//	"first and last"          // two items
//	"first, second, and last" // three or more
//
// With the empty conjunction, two items read "first, last" and longer lists
// become plain comma-separated lists. The result is allocated once.
func Join[S ~string](c Conjunction, items ...S) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return string(items[0])
	}
	var sb strings.Builder
	sb.Grow(Capacity(c, items...))
	buildJoin(&sb, c, items)
	return sb.String()
}

// JoinAnd joins items with [And].
func JoinAnd[S ~string](items ...S) string { return Join(And, items...) }

// JoinOr joins items with [Or].
func JoinOr[S ~string](items ...S) string { return Join(Or, items...) }

// JoinAndOr joins items with [AndOr].
func JoinAndOr[S ~string](items ...S) string { return Join(AndOr, items...) }

// JoinNor joins items with [Nor].
func JoinNor[S ~string](items ...S) string { return Join(Nor, items...) }

// Write renders the joined items to w without building an intermediate
// string. Only errors from w are returned.
func Write[S ~string](w io.Writer, c Conjunction, items ...S) error {
	_, err := writeJoin(w, c, items)
	return err
}

// Marshal returns the joined items as bytes.
func Marshal[S ~string](c Conjunction, items ...S) []byte {
	return appendJoin(make([]byte, 0, Capacity(c, items...)), c, items)
}

// writeJoin is the single rendering pass shared by the eager and lazy paths.
func writeJoin[S ~string](w io.Writer, c Conjunction, items []S) (int64, error) {
	var total int64
	put := func(s string) error {
		if s == "" {
			return nil
		}
		n, err := io.WriteString(w, s)
		total += int64(n)
		return err
	}

	switch n := len(items); n {
	case 0:
		return 0, nil
	case 1:
		err := put(string(items[0]))
		return total, err
	case 2:
		if err := put(string(items[0])); err != nil {
			return total, err
		}
		sep := commaSpace
		if !c.IsEmpty() {
			sep = " "
		}
		if err := put(sep); err != nil {
			return total, err
		}
		if err := put(c.Text()); err != nil {
			return total, err
		}
		err := put(string(items[1]))
		return total, err
	default:
		if err := put(string(items[0])); err != nil {
			return total, err
		}
		for _, item := range items[1 : n-1] {
			if err := put(commaSpace); err != nil {
				return total, err
			}
			if err := put(string(item)); err != nil {
				return total, err
			}
		}
		if err := put(commaSpace); err != nil {
			return total, err
		}
		if err := put(c.Text()); err != nil {
			return total, err
		}
		err := put(string(items[n-1]))
		return total, err
	}
}

// buildJoin is the strings.Builder counterpart of writeJoin. It takes the
// concrete builder so Join's builder stays on the stack.
func buildJoin[S ~string](sb *strings.Builder, c Conjunction, items []S) {
	n := len(items)
	if n < 2 {
		for _, item := range items {
			sb.WriteString(string(item))
		}
		return
	}
	sb.WriteString(string(items[0]))
	if n == 2 {
		if c.IsEmpty() {
			sb.WriteString(commaSpace)
		} else {
			sb.WriteByte(' ')
			sb.WriteString(c.Text())
		}
		sb.WriteString(string(items[1]))
		return
	}
	for _, item := range items[1 : n-1] {
		sb.WriteString(commaSpace)
		sb.WriteString(string(item))
	}
	sb.WriteString(commaSpace)
	sb.WriteString(c.Text())
	sb.WriteString(string(items[n-1]))
}

// appendJoin is the []byte counterpart of writeJoin.
func appendJoin[S ~string](dst []byte, c Conjunction, items []S) []byte {
	switch n := len(items); n {
	case 0:
		return dst
	case 1:
		return append(dst, string(items[0])...)
	case 2:
		dst = append(dst, string(items[0])...)
		if c.IsEmpty() {
			dst = append(dst, commaSpace...)
		} else {
			dst = append(dst, ' ')
			dst = append(dst, c.Text()...)
		}
		return append(dst, string(items[1])...)
	default:
		dst = append(dst, string(items[0])...)
		for _, item := range items[1 : n-1] {
			dst = append(dst, commaSpace...)
			dst = append(dst, string(item)...)
		}
		dst = append(dst, commaSpace...)
		dst = append(dst, c.Text()...)
		return append(dst, string(items[n-1])...)
	}
}
