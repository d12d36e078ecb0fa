// Package pipeline implements the fetch, filter, group, diff and
// presentation-state pipeline shared by all list screens.
package pipeline

// Section is a labeled group of items displayed together.
type Section[K comparable, V any] struct {
	Key   K
	Items []V
}

// SectionedCollection is an ordered list of sections. Each pipeline
// run produces a fresh value, collections are never mutated in place.
type SectionedCollection[K comparable, V any] []Section[K, V]

// IsEmpty reports whether the collection contains no items.
func (c SectionedCollection[K, V]) IsEmpty() bool {
	return c.ItemCount() == 0
}

// ItemCount returns the total number of items across all sections.
func (c SectionedCollection[K, V]) ItemCount() int {
	count := 0
	for _, section := range c {
		count += len(section.Items)
	}
	return count
}

// Keys returns the section keys in collection order.
func (c SectionedCollection[K, V]) Keys() []K {
	keys := make([]K, 0, len(c))
	for _, section := range c {
		keys = append(keys, section.Key)
	}
	return keys
}
