// Package screen holds the UI-independent state machines behind every CRUD
// screen: list loading, wizard steps, draft dedup, and the dashboard fetch.
// Keeping them out of the ui package lets every interaction rule be tested
// without a window.
package screen

import "errors"

var ErrDuplicateItem = errors.New("screen: item with this key already added")

// KeyedItem is a wizard sub-item: it names its own natural key and knows
// which of its fields are required.
type KeyedItem interface {
	Key() string
	Validate() error
}

// KeyedList is an ordered collection that upserts by natural key: the first
// occurrence of a key wins and later ones are rejected or dropped. Every
// wizard shares this container, so dedup happens in one place both when
// server data is merged into a draft and when the draft is serialized.
type KeyedList[T KeyedItem] struct {
	items []T
	index map[string]int
}

// NewKeyedList creates an empty list.
func NewKeyedList[T KeyedItem]() *KeyedList[T] {
	return &KeyedList[T]{index: make(map[string]int)}
}

// Add validates the item and appends it. Returns the validation error when a
// required field is missing, or ErrDuplicateItem when the key is taken; the
// caller surfaces either as a warning, and the list is unchanged.
func (l *KeyedList[T]) Add(item T) error {
	if err := item.Validate(); err != nil {
		return err
	}
	key := item.Key()
	if _, ok := l.index[key]; ok {
		return ErrDuplicateItem
	}
	l.index[key] = len(l.items)
	l.items = append(l.items, item)
	return nil
}

// Merge folds server data into the list, silently keeping the first
// occurrence of each key. Invalid entries are kept as-is; existing records
// are the server's problem, only new admissions are validated.
func (l *KeyedList[T]) Merge(items []T) {
	for _, item := range items {
		key := item.Key()
		if _, ok := l.index[key]; ok {
			continue
		}
		l.index[key] = len(l.items)
		l.items = append(l.items, item)
	}
}

// Remove deletes the item with the given key, preserving order of the rest.
func (l *KeyedList[T]) Remove(key string) {
	i, ok := l.index[key]
	if !ok {
		return
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	delete(l.index, key)
	for j := i; j < len(l.items); j++ {
		l.index[l.items[j].Key()] = j
	}
}

// Items returns the ordered contents. The slice is a copy; by construction it
// contains each key exactly once, so serializing it is already deduplicated.
func (l *KeyedList[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *KeyedList[T]) Len() int {
	return len(l.items)
}
