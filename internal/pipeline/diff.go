package pipeline

import "sort"

// ItemRef identifies one item position within a keyed section.
type ItemRef[K comparable] struct {
	Section K
	Index   int
	ID      string
}

// Move records an item repositioned within its section.
type Move[K comparable] struct {
	Section   K
	FromIndex int
	ToIndex   int
	ID        string
}

// Changeset is the minimal set of structural changes between two
// snapshots. Consumers apply one changeset as a single logical
// transaction.
type Changeset[K comparable] struct {
	SectionInserts []K
	SectionDeletes []K
	ItemInserts    []ItemRef[K]
	ItemDeletes    []ItemRef[K]
	ItemMoves      []Move[K]
	ItemUpdates    []ItemRef[K]
}

// IsEmpty reports whether the changeset contains no changes.
func (c Changeset[K]) IsEmpty() bool {
	return len(c.SectionInserts) == 0 && len(c.SectionDeletes) == 0 &&
		len(c.ItemInserts) == 0 && len(c.ItemDeletes) == 0 &&
		len(c.ItemMoves) == 0 && len(c.ItemUpdates) == 0
}

type itemLocation[K comparable, V any] struct {
	section K
	index   int
	value   V
}

func index[K comparable, V any](c SectionedCollection[K, V], id func(V) string) map[string]itemLocation[K, V] {
	located := map[string]itemLocation[K, V]{}
	for _, section := range c {
		for i, item := range section.Items {
			located[id(item)] = itemLocation[K, V]{section: section.Key, index: i, value: item}
		}
	}
	return located
}

// Diff computes the minimal edit script between two snapshots.
//
// Item identity is the resource id, not structural equality: an item
// present in both snapshots with changed fields is an update, not a
// delete and insert. An item repositioned within its section is a
// move; an item whose section changed is a delete from the old
// section and an insert into the new one.
func Diff[K comparable, V any](old, new SectionedCollection[K, V], id func(V) string, equal func(V, V) bool) Changeset[K] {
	var changes Changeset[K]

	oldByID := index(old, id)
	newByID := index(new, id)

	oldKeys := map[K]bool{}
	for _, section := range old {
		oldKeys[section.Key] = true
	}
	newKeys := map[K]bool{}
	for _, section := range new {
		newKeys[section.Key] = true
	}

	for _, section := range old {
		if !newKeys[section.Key] {
			changes.SectionDeletes = append(changes.SectionDeletes, section.Key)
		}
	}
	for _, section := range new {
		if !oldKeys[section.Key] {
			changes.SectionInserts = append(changes.SectionInserts, section.Key)
		}
	}

	// Items removed entirely or moved to another section.
	for _, section := range old {
		for i, item := range section.Items {
			itemID := id(item)
			located, ok := newByID[itemID]
			if !ok || located.section != section.Key {
				changes.ItemDeletes = append(changes.ItemDeletes, ItemRef[K]{Section: section.Key, Index: i, ID: itemID})
			}
		}
	}

	// Items added or arriving from another section.
	for _, section := range new {
		for i, item := range section.Items {
			itemID := id(item)
			located, ok := oldByID[itemID]
			if !ok || located.section != section.Key {
				changes.ItemInserts = append(changes.ItemInserts, ItemRef[K]{Section: section.Key, Index: i, ID: itemID})
			}
		}
	}

	// Moves and updates for items that stayed in their section.
	for _, section := range new {
		if !oldKeys[section.Key] {
			continue
		}

		type commonItem struct {
			id       string
			oldIndex int
			newIndex int
		}

		var common []commonItem
		for i, item := range section.Items {
			itemID := id(item)
			located, ok := oldByID[itemID]
			if !ok || located.section != section.Key {
				continue
			}
			common = append(common, commonItem{id: itemID, oldIndex: located.index, newIndex: i})

			if equal != nil && !equal(located.value, item) {
				changes.ItemUpdates = append(changes.ItemUpdates, ItemRef[K]{Section: section.Key, Index: i, ID: itemID})
			}
		}

		// common is in new order; items whose old indices do not form
		// an increasing subsequence have been repositioned. The longest
		// increasing subsequence stays put, everything else moves.
		oldIndices := make([]int, len(common))
		for i, item := range common {
			oldIndices[i] = item.oldIndex
		}
		stable := longestIncreasingSubsequence(oldIndices)

		for i, item := range common {
			if !stable[i] {
				changes.ItemMoves = append(changes.ItemMoves, Move[K]{
					Section:   section.Key,
					FromIndex: item.oldIndex,
					ToIndex:   item.newIndex,
					ID:        item.id,
				})
			}
		}
	}

	return changes
}

// longestIncreasingSubsequence marks the members of one longest
// strictly increasing subsequence of values.
func longestIncreasingSubsequence(values []int) []bool {
	member := make([]bool, len(values))
	if len(values) == 0 {
		return member
	}

	// tails[l] is the index of the smallest tail of an increasing
	// subsequence of length l+1; predecessor links rebuild the chain.
	tails := []int{}
	predecessor := make([]int, len(values))

	for i, v := range values {
		pos := sort.Search(len(tails), func(j int) bool {
			return values[tails[j]] >= v
		})
		if pos > 0 {
			predecessor[i] = tails[pos-1]
		} else {
			predecessor[i] = -1
		}
		if pos == len(tails) {
			tails = append(tails, i)
		} else {
			tails[pos] = i
		}
	}

	for i := tails[len(tails)-1]; i >= 0; i = predecessor[i] {
		member[i] = true
	}

	return member
}
