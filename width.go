package oxford

import "github.com/mattn/go-runewidth"

// Width returns the number of terminal cells Join(c, items...) occupies,
// without rendering it. Wide characters count as two cells.
func Width[S ~string](c Conjunction, items ...S) int {
	switch n := len(items); n {
	case 0:
		return 0
	case 1:
		return runewidth.StringWidth(string(items[0]))
	case 2:
		w := runewidth.StringWidth(string(items[0])) + runewidth.StringWidth(string(items[1]))
		if c.IsEmpty() {
			return w + len(commaSpace)
		}
		return w + 1 + runewidth.StringWidth(c.Text())
	default:
		w := 0
		for _, item := range items {
			w += runewidth.StringWidth(string(item))
		}
		return w + (n-1)*len(commaSpace) + runewidth.StringWidth(c.Text())
	}
}
