package oxford

import "fmt"

// JoinStringers joins the String form of each item.
func JoinStringers[T fmt.Stringer](c Conjunction, items ...T) string {
	strs := make([]string, len(items))
	for i, item := range items {
		strs[i] = item.String()
	}
	return Join(c, strs...)
}

// JoinAny joins arbitrary values. Items implementing [fmt.Stringer] use
// String; everything else is rendered with %v.
func JoinAny[T any](c Conjunction, items ...T) string {
	strs := make([]string, len(items))
	for i, item := range items {
		if str, ok := any(item).(fmt.Stringer); ok {
			strs[i] = str.String()
		} else {
			strs[i] = fmt.Sprintf("%v", item)
		}
	}
	return Join(c, strs...)
}
