// Package vector provides [Vector], a generic growable sequence with contiguous storage and
// explicit capacity management.
//
// Storage is a single [buffer.Buffer] owned by the vector. When an operation needs more room
// than the current capacity, the vector allocates a new buffer of max(required, 2*capacity) slots,
// moves the live items into it and releases the old one.
//
// Growth invalidates every pointer returned by [Vector.Index] or [Vector.At] and every slice
// returned by [Vector.Slice]. Insert and Erase without growth keep them valid, but the items they
// refer to shift.
//
// Vectors are not safe for concurrent use. Concurrent reads are fine as long as nothing mutates
// the vector at the same time.
package vector

import (
	"errors"
	"fmt"

	"github.com/teenjuna/vector/buffer"
)

var (
	// ErrOutOfRange is returned by [Vector.At] when the index is not within [0, Len()).
	ErrOutOfRange = errors.New("index out of range")
)

// Cloner is implemented by items that need a deep copy. When Item implements Cloner, every path
// that copies items (as opposed to moving them) calls Clone.
type Cloner[Item any] interface {
	Clone() Item
}

// Vector is a growable sequence of items.
//
// The zero value is an empty vector ready to use. A Vector must not be copied by value after first
// use; use [Vector.Clone] to copy and [Vector.Take] to move.
type Vector[Item any] struct {
	buf      buffer.Buffer[Item]
	size     int
	capacity int
	cfg      *Config
}

// New returns an empty vector. Nothing is allocated.
func New[Item any](configFuncs ...ConfigFunc) *Vector[Item] {
	return &Vector[Item]{
		cfg: newConfig(configFuncs...),
	}
}

// Make returns a vector of size zero-valued items with no spare capacity.
func Make[Item any](size int, configFuncs ...ConfigFunc) *Vector[Item] {
	if size < 0 {
		panic("size can't be < 0")
	}
	v := New[Item](configFuncs...)
	v.adopt(buffer.New[Item](size))
	v.size = size
	return v
}

// Filled returns a vector of size copies of item with no spare capacity.
func Filled[Item any](size int, item Item, configFuncs ...ConfigFunc) *Vector[Item] {
	v := Make[Item](size, configFuncs...)
	items := v.buf.Slice(0, v.size)
	for i := range items {
		items[i] = copyItem(item)
	}
	return v
}

// Of returns a vector holding copies of items, in order, with no spare capacity.
func Of[Item any](items ...Item) *Vector[Item] {
	v := Make[Item](len(items))
	copyItems(v.buf.Slice(0, v.size), items)
	return v
}

// FromHint returns an empty vector whose capacity is at least hint.Capacity().
func FromHint[Item any](hint ReserveHint, configFuncs ...ConfigFunc) *Vector[Item] {
	v := New[Item](configFuncs...)
	v.ReserveHint(hint)
	return v
}

// Clone returns an independent copy of v. The copy has no spare capacity and shares v's
// configuration. Clone of a nil vector is nil.
func (v *Vector[Item]) Clone() *Vector[Item] {
	if v == nil {
		return nil
	}
	c := &Vector[Item]{cfg: v.cfg}
	if v.size == 0 {
		return c
	}
	c.adopt(buffer.New[Item](v.size))
	copyItems(c.buf.Slice(0, v.size), v.buf.Slice(0, v.size))
	c.size = v.size
	return c
}

// Take moves the contents of v into a new vector and leaves v empty with no storage.
func (v *Vector[Item]) Take() *Vector[Item] {
	out := &Vector[Item]{cfg: v.cfg}
	out.Swap(v)
	return out
}

// Assign replaces the contents of v with a copy of other. A nil other empties v.
//
// The copy is built first and swapped in afterwards, so v is left untouched if building it panics.
func (v *Vector[Item]) Assign(other *Vector[Item]) {
	if v == other {
		return
	}
	tmp := other.Clone()
	if tmp == nil {
		tmp = &Vector[Item]{}
	}
	v.Swap(tmp)
	tmp.buf.Release()
}

// Swap exchanges the storage, size and capacity of v and other. It never allocates.
func (v *Vector[Item]) Swap(other *Vector[Item]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// Len returns the number of items.
func (v *Vector[Item]) Len() int {
	return v.size
}

// Cap returns the number of items v can hold without reallocation.
func (v *Vector[Item]) Cap() int {
	return v.capacity
}

// Empty reports whether v has no items.
func (v *Vector[Item]) Empty() bool {
	return v.size == 0
}

// Index returns a pointer to the item at index i. It panics if i is not within [0, Len()).
func (v *Vector[Item]) Index(i int) *Item {
	if i < 0 || i >= v.size {
		panic("index out of range")
	}
	return v.buf.At(i)
}

// At returns a pointer to the item at index i, or [ErrOutOfRange] if i is not within [0, Len()).
func (v *Vector[Item]) At(i int) (*Item, error) {
	if i < 0 || i >= v.size {
		return nil, ErrOutOfRange
	}
	return v.buf.At(i), nil
}

// Get returns the item at index i. It panics if i is not within [0, Len()).
func (v *Vector[Item]) Get(i int) Item {
	return *v.Index(i)
}

// Set replaces the item at index i. It panics if i is not within [0, Len()).
func (v *Vector[Item]) Set(i int, item Item) {
	*v.Index(i) = item
}

// Front returns a pointer to the first item. It panics if v is empty.
func (v *Vector[Item]) Front() *Item {
	if v.size == 0 {
		panic("vector is empty")
	}
	return v.buf.At(0)
}

// Back returns a pointer to the last item. It panics if v is empty.
func (v *Vector[Item]) Back() *Item {
	if v.size == 0 {
		panic("vector is empty")
	}
	return v.buf.At(v.size - 1)
}

// Clear removes all items. Capacity is kept.
func (v *Vector[Item]) Clear() {
	clear(v.buf.Slice(0, v.size))
	v.size = 0
}

// Resize changes the number of items to size. Items past size are dropped when shrinking, and
// zero values are appended when growing.
func (v *Vector[Item]) Resize(size int) {
	if size < 0 {
		panic("size can't be < 0")
	}
	if size == v.size {
		return
	}

	switch {
	case size < v.size:
		clear(v.buf.Slice(size, v.size))
	case size > v.capacity:
		buf := v.grow(size)
		copy(buf.Slice(0, v.size), v.buf.Slice(0, v.size))
		v.install(opResize, buf)
	default:
		clear(v.buf.Slice(v.size, size))
	}

	v.size = size
}

// PushBack appends a copy of item.
func (v *Vector[Item]) PushBack(item Item) {
	v.pushBack(copyItem(item))
}

// MoveBack appends the item pointed to by item and resets it to the zero value. The source is
// reset before appending, so item may point into v itself.
func (v *Vector[Item]) MoveBack(item *Item) {
	v.pushBack(take(item))
}

func (v *Vector[Item]) pushBack(item Item) {
	if v.size < v.capacity {
		*v.buf.At(v.size) = item
	} else {
		buf := v.grow(v.size + 1)
		copy(buf.Slice(0, v.size), v.buf.Slice(0, v.size))
		*buf.At(v.size) = item
		v.install(opPush, buf)
	}
	v.size++
}

// PopBack removes the last item. It panics if v is empty.
func (v *Vector[Item]) PopBack() {
	if v.size == 0 {
		panic("vector is empty")
	}
	v.Erase(v.size - 1)
}

// Insert inserts a copy of item at position pos, shifting the items from pos onward one slot
// back, and returns pos. Inserting at Len() appends. It panics if pos is not within [0, Len()].
func (v *Vector[Item]) Insert(pos int, item Item) int {
	return v.insert(pos, copyItem(item))
}

// InsertMove is like [Vector.Insert], but moves the item pointed to by item and resets it to the
// zero value. The source is reset before shifting, so item may point into v itself.
func (v *Vector[Item]) InsertMove(pos int, item *Item) int {
	if pos < 0 || pos > v.size {
		panic("position out of range")
	}
	return v.insert(pos, take(item))
}

func (v *Vector[Item]) insert(pos int, item Item) int {
	if pos < 0 || pos > v.size {
		panic("position out of range")
	}

	if v.size < v.capacity {
		items := v.buf.Slice(0, v.size+1)
		// Back to front, otherwise the shift overwrites items it hasn't moved yet.
		for i := v.size; i > pos; i-- {
			items[i] = items[i-1]
		}
		items[pos] = item
	} else {
		buf := v.grow(v.size + 1)
		src := v.buf.Slice(0, v.size)
		dst := buf.Slice(0, v.size+1)
		copy(dst[:pos], src[:pos])
		for i := v.size; i > pos; i-- {
			dst[i] = src[i-1]
		}
		dst[pos] = item
		v.install(opInsert, buf)
	}

	v.size++
	return pos
}

// Erase removes the item at position pos, shifting the following items one slot forward, and
// returns pos, which now holds the item that followed the erased one (or equals Len() if the last
// item was erased). It panics if pos is not within [0, Len()).
func (v *Vector[Item]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic("position out of range")
	}

	items := v.buf.Slice(0, v.size)
	// Front to back, the mirror of insert.
	for i := pos; i < v.size-1; i++ {
		items[i] = items[i+1]
	}
	var zero Item
	items[v.size-1] = zero

	v.size--
	return pos
}

// Reserve makes sure v can hold at least capacity items without reallocation. Len is unchanged.
// Unlike growth triggered by appending, the new capacity is exactly the requested one.
func (v *Vector[Item]) Reserve(capacity int) {
	if capacity <= v.capacity {
		return
	}
	buf := buffer.New[Item](capacity)
	copy(buf.Slice(0, v.size), v.buf.Slice(0, v.size))
	v.install(opReserve, buf)
}

// ReserveHint calls [Vector.Reserve] with the capacity carried by hint.
func (v *Vector[Item]) ReserveHint(hint ReserveHint) {
	v.Reserve(hint.Capacity())
}

// String formats the live items like a slice.
func (v *Vector[Item]) String() string {
	return fmt.Sprint(v.Slice())
}

// grow allocates a buffer large enough for required items.
func (v *Vector[Item]) grow(required int) *buffer.Buffer[Item] {
	return buffer.New[Item](growCapacity(v.capacity, required))
}

// install swaps buf in as the vector's storage and releases the previous block, which ends up in
// buf. Items must already be in place.
func (v *Vector[Item]) install(op string, buf *buffer.Buffer[Item]) {
	from := v.capacity
	v.buf.Swap(buf)
	buf.Release()
	v.capacity = v.buf.Cap()
	v.cfg.grew(op, from, v.capacity, v.size)
}

// adopt takes buf as storage of a vector that has none.
func (v *Vector[Item]) adopt(buf *buffer.Buffer[Item]) {
	v.buf.Swap(buf)
	v.capacity = v.buf.Cap()
}

func growCapacity(capacity, required int) int {
	return max(1, required, 2*capacity)
}

// take returns *item and resets it to the zero value.
func take[Item any](item *Item) Item {
	out := *item
	var zero Item
	*item = zero
	return out
}

func copyItem[Item any](item Item) Item {
	if c, ok := any(item).(Cloner[Item]); ok {
		return c.Clone()
	}
	return item
}

func copyItems[Item any](dst, src []Item) {
	for i := range src {
		dst[i] = copyItem(src[i])
	}
}
