package oxford

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// JoinSeq joins the items produced by seq. The sequence is drained before
// rendering because the last item can only be identified at the end.
func JoinSeq[S ~string](c Conjunction, seq iter.Seq[S]) string {
	return Join(c, slices.Collect(seq)...)
}

// JoinChan joins items received from ch until it is closed.
// It is a thin wrapper around [JoinSeq].
func JoinChan[S ~string](c Conjunction, ch <-chan S) string {
	return JoinSeq(c, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

type entry[K cmp.Ordered, V any] struct {
	key   K
	value V
}

// JoinMap joins the values of m ordered by key. Keys are compared with
// [cmp.Compare], so a NaN key sorts first.
func JoinMap[K cmp.Ordered, V ~string](c Conjunction, m map[K]V) string {
	entries := make([]entry[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, entry[K, V]{key: k, value: v})
	}
	slices.SortFunc(entries, func(a, b entry[K, V]) int {
		return cmp.Compare(a.key, b.key)
	})
	values := make([]V, len(entries))
	for i, e := range entries {
		values[i] = e.value
	}
	return Join(c, values...)
}

// JoinSet joins the members of set in sorted order.
func JoinSet[S ~string](c Conjunction, set map[S]struct{}) string {
	return Join(c, slices.Sorted(maps.Keys(set))...)
}
