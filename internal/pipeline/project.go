package pipeline

import (
	"golang.org/x/exp/slices"
)

// Predicate is a pure boolean function over a single item. Active
// predicates are combined with All and are order-independent.
type Predicate[V any] func(V) bool

// All combines predicates so that every one must hold. With no
// predicates it accepts everything.
func All[V any](predicates ...Predicate[V]) Predicate[V] {
	return func(item V) bool {
		for _, predicate := range predicates {
			if !predicate(item) {
				return false
			}
		}
		return true
	}
}

// Project filters raw through the predicate, groups the survivors by
// groupKey and orders the sections with compareKeys.
//
// The distinct key set is derived through a map, then explicitly
// sorted so that the output is identical across repeated invocations.
// Within a section, item order is preserved from the source.
func Project[K comparable, V any](raw []V, predicate Predicate[V], groupKey func(V) K, compareKeys func(K, K) int) SectionedCollection[K, V] {
	if predicate == nil {
		predicate = All[V]()
	}

	grouped := map[K][]V{}
	var keys []K
	for _, item := range raw {
		if !predicate(item) {
			continue
		}
		key := groupKey(item)
		if _, seen := grouped[key]; !seen {
			keys = append(keys, key)
		}
		grouped[key] = append(grouped[key], item)
	}

	slices.SortFunc(keys, compareKeys)

	collection := make(SectionedCollection[K, V], 0, len(keys))
	for _, key := range keys {
		collection = append(collection, Section[K, V]{Key: key, Items: grouped[key]})
	}

	return collection
}
