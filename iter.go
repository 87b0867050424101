package vector

import "iter"

// All returns a sequence of index-item pairs, front to back.
func (v *Vector[Item]) All() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.buf.At(i)) {
				return
			}
		}
	}
}

// Values returns a sequence of items, front to back.
func (v *Vector[Item]) Values() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.buf.At(i)) {
				return
			}
		}
	}
}

// Backward returns a sequence of index-item pairs, back to front.
func (v *Vector[Item]) Backward() iter.Seq2[int, Item] {
	return func(yield func(int, Item) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.buf.At(i)) {
				return
			}
		}
	}
}

// Slice returns the live items as a slice sharing v's storage. It is invalidated by growth.
func (v *Vector[Item]) Slice() []Item {
	return v.buf.Slice(0, v.size)
}
