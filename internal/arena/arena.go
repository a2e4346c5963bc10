package arena

// Handle addresses a slot in an Arena. The generation distinguishes the
// current occupant of a slot from any earlier one, so a handle held past
// Remove never resolves to a newer object.
type Handle struct {
	slot       uint32
	generation uint32
}

// Nil is the zero handle. Generations start at 1, so Nil never resolves.
var Nil Handle

func (h Handle) IsNil() bool {
	return h.generation == 0
}

// Slot returns the slot index, mostly useful for ordering and debugging.
func (h Handle) Slot() int {
	return int(h.slot)
}

// Node is implemented by values that carry a one-level parent link.
type Node interface {
	Parent() Handle
}

type entry[T Node] struct {
	value      T
	generation uint32
	occupied   bool
}

// Arena is a dense pool of values with O(1) insert, lookup and removal.
type Arena[T Node] struct {
	entries []entry[T]
	free    []uint32
	live    int
}

// New creates an empty arena.
func New[T Node]() *Arena[T] {
	return &Arena[T]{}
}

// Add stores v and returns its handle. Freed slots are reused with a bumped
// generation.
func (a *Arena[T]) Add(v T) Handle {
	a.live++
	if n := len(a.free); n > 0 {
		slot := a.free[n-1]
		a.free = a.free[:n-1]
		e := &a.entries[slot]
		e.value = v
		e.occupied = true
		return Handle{slot: slot, generation: e.generation}
	}
	a.entries = append(a.entries, entry[T]{value: v, generation: 1, occupied: true})
	return Handle{slot: uint32(len(a.entries) - 1), generation: 1}
}

// Get resolves h. Stale or unknown handles report false.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	var zero T
	if int(h.slot) >= len(a.entries) {
		return zero, false
	}
	e := &a.entries[h.slot]
	if !e.occupied || e.generation != h.generation {
		return zero, false
	}
	return e.value, true
}

// Contains reports whether h still resolves.
func (a *Arena[T]) Contains(h Handle) bool {
	_, ok := a.Get(h)
	return ok
}

// Remove frees the slot behind h. It reports false when h was already stale.
func (a *Arena[T]) Remove(h Handle) bool {
	if !a.Contains(h) {
		return false
	}
	e := &a.entries[h.slot]
	var zero T
	e.value = zero
	e.occupied = false
	e.generation++
	a.free = append(a.free, h.slot)
	a.live--
	return true
}

// GetParent resolves the parent link stored on the value behind h.
func (a *Arena[T]) GetParent(h Handle) (T, bool) {
	v, ok := a.Get(h)
	if !ok {
		var zero T
		return zero, false
	}
	return a.Get(v.Parent())
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.live
}

// Each visits live values in slot order until fn returns false.
func (a *Arena[T]) Each(fn func(Handle, T) bool) {
	for i := range a.entries {
		e := &a.entries[i]
		if !e.occupied {
			continue
		}
		if !fn(Handle{slot: uint32(i), generation: e.generation}, e.value) {
			return
		}
	}
}
