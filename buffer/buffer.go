// This package contains the [Buffer] type, a fixed-size block of element storage.
package buffer

// Buffer exclusively owns a single contiguous block of items whose size is fixed at construction.
//
// Buffer has no growth logic. A larger block is obtained by creating a new Buffer and swapping it
// with the old one. Buffer is not considered thread-safe.
type Buffer[Item any] struct {
	items []Item
}

// New returns a Buffer holding exactly capacity slots. A zero capacity allocates nothing.
func New[Item any](capacity int) *Buffer[Item] {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	if capacity == 0 {
		return &Buffer[Item]{}
	}
	return &Buffer[Item]{
		items: make([]Item, capacity),
	}
}

// Cap returns the number of allocated slots.
func (b *Buffer[Item]) Cap() int {
	return len(b.items)
}

// At returns a pointer to slot i.
//
// No logical bounds check is made; the owner is responsible for keeping i within the live range.
func (b *Buffer[Item]) At(i int) *Item {
	return &b.items[i]
}

// Slice returns slots [lo, hi) as a slice sharing the block's storage.
func (b *Buffer[Item]) Slice(lo, hi int) []Item {
	return b.items[lo:hi:hi]
}

// Swap exchanges the blocks owned by b and other. No items are copied.
func (b *Buffer[Item]) Swap(other *Buffer[Item]) {
	b.items, other.items = other.items, b.items
}

// Release drops the block, leaving b with zero capacity.
func (b *Buffer[Item]) Release() {
	clear(b.items)
	b.items = nil
}
