// Package oxford joins lists of strings as English prose, with a serial
// (Oxford) comma before the final conjunction.
//
// The output depends on the number of items:
//
//	0: ""
//	1: "first"
//	2: "first and last"
//	n: "first, second, …, and last"
//
// The central entry point is [Join], which takes a [Conjunction] and variadic
// items of any string type:
//
//	oxford.Join(oxford.And, "apples", "oranges", "bananas")
//	// apples, oranges, and bananas
//
// [JoinAnd], [JoinOr], [JoinAndOr], and [JoinNor] fix the conjunction.
//
// # Conjunctions
//
// The well-known conjunctions are [And], [Or], [AndOr], [Nor], [Ampersand],
// and [Plus]. Use [Custom] for anything else:
//
//	oxford.Join(oxford.Custom("but not"), "tea", "coffee") // tea but not coffee
//
// The empty conjunction (the zero [Conjunction], or Custom("")) turns the
// output into a plain comma-separated list: "a, b" and "a, b, c".
//
// Conjunctions implement [encoding.TextUnmarshaler] and
// [gopkg.in/yaml.v3.Unmarshaler], so they can be read from configuration
// files.
//
// # Allocation
//
// [Join] measures the output with [Capacity] first and allocates exactly
// once. Where the result only feeds a writer or a fmt verb, [LazyJoin] avoids
// that allocation too:
//
//	fmt.Fprintf(w, "missing %s\n", oxford.LazyAnd(names...))
//
// A [Lazy] value renders through [Lazy.WriteTo], [Lazy.AppendTo], or the fmt
// package, any number of times, always with output identical to [Join].
// [Write] and [Marshal] are eager shortcuts for writers and byte slices.
//
// # Containers
//
// [JoinSeq] and [JoinChan] drain iterators and channels. [JoinMap] joins map
// values in key order and [JoinSet] joins set members in sorted order, so the
// result never depends on map iteration order. Types implementing [Lister]
// work with [JoinLists], and [JoinStringers] and [JoinAny] cover non-string
// items.
//
// # Other helpers
//
// [Glue] is a lazy plain join with no conjunction. [Width] reports the
// terminal width of a join without rendering it.
package oxford
