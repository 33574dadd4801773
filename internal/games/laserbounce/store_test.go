package laserbounce

import "testing"

func TestStoreInsertGetRemove(t *testing.T) {
	var s Store[Orb]

	a := s.Insert(Orb{X: 1})
	b := s.Insert(Orb{X: 2})
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	got, ok := s.Get(b)
	if !ok || got.X != 2 {
		t.Fatalf("Get(b) = %v, %v", got, ok)
	}

	if !s.Remove(a) {
		t.Fatal("Remove(a) = false, want true")
	}
	if s.Remove(a) {
		t.Error("second Remove(a) = true, want no-op")
	}
	if s.Has(a) {
		t.Error("Has(a) after remove = true")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestStoreStaleIDNeverAliases(t *testing.T) {
	var s Store[Orb]

	old := s.Insert(Orb{X: 1})
	s.Remove(old)
	fresh := s.Insert(Orb{X: 2}) // reuses the slot

	if old == fresh {
		t.Fatal("reused slot produced the same ID")
	}
	if _, ok := s.Get(old); ok {
		t.Error("stale ID resolved to the new occupant")
	}
	if s.Remove(old) {
		t.Error("Remove(stale) removed the new occupant")
	}
	if !s.Has(fresh) {
		t.Error("new occupant lost")
	}
}

func TestStoreZeroID(t *testing.T) {
	var s Store[Orb]
	s.Insert(Orb{})

	var zero ID
	if !zero.IsZero() {
		t.Error("zero ID not reported as zero")
	}
	if s.Has(zero) || s.Remove(zero) {
		t.Error("zero ID resolved to an entity")
	}
}

func TestStoreRemoveDuringEach(t *testing.T) {
	var s Store[Enemy]
	ids := make([]ID, 5)
	for i := range ids {
		ids[i] = s.Insert(Enemy{X: float64(i)})
	}

	var visited []float64
	s.Each(func(id ID, e *Enemy) bool {
		visited = append(visited, e.X)
		if e.X == 1 {
			s.Remove(id)     // current
			s.Remove(ids[3]) // ahead
		}
		return true
	})

	want := []float64{0, 1, 2, 4}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len = %d, want 3", s.Len())
	}
}

func TestStoreInsertDuringEachNotVisited(t *testing.T) {
	var s Store[Enemy]
	first := s.Insert(Enemy{X: 0})
	s.Insert(Enemy{X: 1})

	visits := 0
	s.Each(func(id ID, _ *Enemy) bool {
		visits++
		if id == first {
			s.Remove(first)
			s.Insert(Enemy{X: 9})
		}
		return true
	})

	if visits != 2 {
		t.Errorf("visits = %d, want 2", visits)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestStoreEachStops(t *testing.T) {
	var s Store[Orb]
	for range 4 {
		s.Insert(Orb{})
	}
	visits := 0
	s.Each(func(ID, *Orb) bool {
		visits++
		return visits < 2
	})
	if visits != 2 {
		t.Errorf("visits = %d, want 2", visits)
	}
}

func TestStoreClear(t *testing.T) {
	var s Store[Orb]
	a := s.Insert(Orb{X: 1})
	s.Insert(Orb{X: 2})

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len after Clear = %d", s.Len())
	}
	b := s.Insert(Orb{X: 3})
	if s.Has(a) {
		t.Error("ID from before Clear still resolves")
	}
	if !s.Has(b) {
		t.Error("insert after Clear lost")
	}
	if vals := s.Values(); len(vals) != 1 || vals[0].X != 3 {
		t.Errorf("Values = %v", vals)
	}
}
