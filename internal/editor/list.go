// Package editor maintains an in-memory report draft while it is being
// composed. Nothing here touches storage; a draft becomes durable only
// when the caller saves the materialized report.
package editor

import (
	"slices"

	"github.com/P0n40/Shiftdailyreportapp/internal/ident"
)

// Item is a list element addressable by a unique identifier.
type Item interface {
	ItemID() string
	SetItemID(id string)
}

// List is an ordered collection of uniquely-identified items. Order is
// display order and is preserved by every operation except Reorder.
type List[T Item] struct {
	items []T
	newID func() string
}

func NewList[T Item]() *List[T] {
	return &List[T]{newID: ident.New}
}

// Insert appends item to the end of the list and assigns it a fresh
// identifier. Identifiers are never reused, even after removal.
func (l *List[T]) Insert(item T) T {
	item.SetItemID(l.newID())
	l.items = append(l.items, item)
	return item
}

// Remove deletes the item with the given identifier. Removing an
// absent identifier is a no-op.
func (l *List[T]) Remove(id string) {
	for i, it := range l.items {
		if it.ItemID() == id {
			l.items = slices.Delete(l.items, i, i+1)
			return
		}
	}
}

// Update applies fn to the item with the given identifier, leaving its
// list position untouched. A no-op when the identifier is absent.
func (l *List[T]) Update(id string, fn func(T)) {
	for _, it := range l.items {
		if it.ItemID() == id {
			fn(it)
			return
		}
	}
}

// Reorder moves the item at from to position to, shifting intervening
// items by one. Both indices are clamped to valid bounds.
func (l *List[T]) Reorder(from, to int) {
	n := len(l.items)
	if n == 0 {
		return
	}
	from = clamp(from, n)
	to = clamp(to, n)
	if from == to {
		return
	}
	item := l.items[from]
	l.items = slices.Delete(l.items, from, from+1)
	l.items = slices.Insert(l.items, to, item)
}

// Items returns the backing slice in display order.
func (l *List[T]) Items() []T { return l.items }

func (l *List[T]) Len() int { return len(l.items) }

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
