package vector

// ReserveHint carries a capacity to reserve upfront. It is created by [Reserve] and consumed by
// [FromHint] or [Vector.ReserveHint].
type ReserveHint struct {
	capacity int
}

// Reserve returns a [ReserveHint] for capacity items.
func Reserve(capacity int) ReserveHint {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	return ReserveHint{capacity: capacity}
}

// Capacity returns the capacity carried by the hint.
func (h ReserveHint) Capacity() int {
	return h.capacity
}
