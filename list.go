package oxford

// Lister provides a flat list of strings. Any container can take part in a
// join by implementing it.
type Lister interface {
	List() []string
}

// JoinLists concatenates the lists of every item, in order, and joins the
// result with c.
func JoinLists[T Lister](c Conjunction, items ...T) string {
	if len(items) == 1 {
		return Join(c, items[0].List()...)
	}
	var all []string
	for _, item := range items {
		all = append(all, item.List()...)
	}
	return Join(c, all...)
}
