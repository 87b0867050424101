package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and equal items in the same order.
func Equal[Item comparable](a, b *Vector[Item]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like [Equal] but compares items with eq.
func EqualFunc[Item any](a, b *Vector[Item], eq func(Item, Item) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// NotEqual is the negation of [Equal].
func NotEqual[Item comparable](a, b *Vector[Item]) bool {
	return !Equal(a, b)
}

// Compare compares a and b lexicographically and returns -1, 0 or +1.
//
// Items are ordered by [cmp.Compare], so a NaN equals another NaN and precedes every other value.
// [Equal] and [Less] use the == and < operators instead, under which a NaN is neither equal to nor
// ordered against anything; Compare can return 0 for vectors that are not [Equal].
func Compare[Item cmp.Ordered](a, b *Vector[Item]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is like [Compare] but compares items with cmp.
func CompareFunc[Item any](a, b *Vector[Item], cmp func(Item, Item) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

// Less reports whether a precedes b lexicographically by the < operator. A proper prefix precedes
// the longer vector.
func Less[Item cmp.Ordered](a, b *Vector[Item]) bool {
	return LessFunc(a, b, func(x, y Item) bool { return x < y })
}

// LessFunc is like [Less] but orders items with less.
func LessFunc[Item any](a, b *Vector[Item], less func(Item, Item) bool) bool {
	as, bs := a.Slice(), b.Slice()
	for i := range min(len(as), len(bs)) {
		if less(as[i], bs[i]) {
			return true
		}
		if less(bs[i], as[i]) {
			return false
		}
	}
	return len(as) < len(bs)
}

// LessOrEqual reports whether a is [Equal] to b or precedes it. For items that aren't totally
// ordered (NaN) this can differ from !Greater(a, b).
func LessOrEqual[Item cmp.Ordered](a, b *Vector[Item]) bool {
	return Equal(a, b) || Less(a, b)
}

// Greater reports whether b precedes a.
func Greater[Item cmp.Ordered](a, b *Vector[Item]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports whether a is equal to b or follows it.
func GreaterOrEqual[Item cmp.Ordered](a, b *Vector[Item]) bool {
	return Equal(a, b) || Less(b, a)
}
