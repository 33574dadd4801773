package laserbounce

// ID is a stable handle to an entity in a Store. A removed slot bumps its
// generation, so an ID held past removal never resolves to a later occupant.
type ID struct {
	slot uint32
	gen  uint32
}

// IsZero reports whether id was never issued by a Store.
func (id ID) IsZero() bool {
	return id.gen == 0
}

type slot[T any] struct {
	val  T
	gen  uint32
	live bool
}

// Store is a slot arena of entities with generational IDs.
// Iteration order is slot order, which is stable across removals.
type Store[T any] struct {
	slots     []slot[T]
	free      []uint32
	n         int
	iterating int
}

// Insert adds v and returns its ID.
func (s *Store[T]) Insert(v T) ID {
	// Slots freed during Each are not reused until iteration ends, so an
	// insert from inside fn lands past the range being scanned.
	if s.iterating == 0 && len(s.free) > 0 {
		i := s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
		sl := &s.slots[i]
		sl.val = v
		sl.live = true
		s.n++
		return ID{slot: i, gen: sl.gen}
	}
	s.slots = append(s.slots, slot[T]{val: v, gen: 1, live: true})
	s.n++
	return ID{slot: uint32(len(s.slots) - 1), gen: 1} //#nosec G115 -- slot count is bounded by memory
}

// Remove deletes the entity behind id. It returns false and changes nothing
// when id is stale or was never issued.
func (s *Store[T]) Remove(id ID) bool {
	sl := s.lookup(id)
	if sl == nil {
		return false
	}
	var zero T
	sl.val = zero
	sl.live = false
	sl.gen++
	if sl.gen == 0 {
		sl.gen = 1
	}
	s.free = append(s.free, id.slot)
	s.n--
	return true
}

// Get returns a pointer to the entity behind id. The pointer is valid until
// the next Insert.
func (s *Store[T]) Get(id ID) (*T, bool) {
	sl := s.lookup(id)
	if sl == nil {
		return nil, false
	}
	return &sl.val, true
}

// Has reports whether id refers to a live entity.
func (s *Store[T]) Has(id ID) bool {
	return s.lookup(id) != nil
}

// Len returns the number of live entities.
func (s *Store[T]) Len() int {
	return s.n
}

// Each calls fn for every live entity in slot order until fn returns false.
// fn may Remove any entity, including the current one; removed entities
// are not visited. Entities inserted by fn are not visited either.
func (s *Store[T]) Each(fn func(id ID, v *T) bool) {
	s.iterating++
	defer func() { s.iterating-- }()

	end := len(s.slots)
	for i := 0; i < end; i++ {
		sl := &s.slots[i]
		if !sl.live {
			continue
		}
		if !fn(ID{slot: uint32(i), gen: sl.gen}, &sl.val) { //#nosec G115 -- slot count is bounded by memory
			return
		}
	}
}

// Values returns a copy of every live entity in slot order.
func (s *Store[T]) Values() []T {
	out := make([]T, 0, s.n)
	s.Each(func(_ ID, v *T) bool {
		out = append(out, *v)
		return true
	})
	return out
}

// Clear removes every entity. IDs issued before Clear stay stale forever.
func (s *Store[T]) Clear() {
	s.Each(func(id ID, _ *T) bool {
		s.Remove(id)
		return true
	})
}

func (s *Store[T]) lookup(id ID) *slot[T] {
	if id.gen == 0 || int(id.slot) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[id.slot]
	if !sl.live || sl.gen != id.gen {
		return nil
	}
	return sl
}
