package screen

import (
	"context"
	"sync"
)

// List is the state behind a collection screen: items, a loading flag, and a
// page-level error banner. A failed reload keeps the previous items so the
// screen stays usable under the banner.
type List[T any] struct {
	mu      sync.Mutex
	fetch   func(context.Context) ([]T, error)
	items   []T
	loaded  bool
	loading bool
	err     string
}

// NewList creates a list controller around a fetch function.
func NewList[T any](fetch func(context.Context) ([]T, error)) *List[T] {
	return &List[T]{fetch: fetch}
}

// Load fetches the collection. On success the items are replaced and any
// banner cleared; on failure the banner is set and the prior items survive.
func (l *List[T]) Load(ctx context.Context) {
	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()

	items, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	l.loaded = true
	if err != nil {
		l.err = err.Error()
		return
	}
	l.items = items
	l.err = ""
}

// Delete runs the delete call and, on success, splices matching items out of
// the local cache instead of re-fetching. On failure the list is untouched;
// the item stays visible until the operator retries or reloads.
func (l *List[T]) Delete(ctx context.Context, del func(context.Context) error, deleted func(T) bool) error {
	if err := del(ctx); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.items[:0]
	for _, item := range l.items {
		if !deleted(item) {
			kept = append(kept, item)
		}
	}
	l.items = kept
	return nil
}

// Items returns a copy of the current items.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Loading reports whether a fetch is in flight.
func (l *List[T]) Loading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

// Error returns the banner message, empty when the last load succeeded.
func (l *List[T]) Error() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Empty reports a successful load that returned nothing, which renders a
// call-to-action rather than the error banner.
func (l *List[T]) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded && l.err == "" && len(l.items) == 0
}
