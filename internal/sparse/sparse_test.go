package sparse

import "testing"

func TestInsertContains(t *testing.T) {
	s := NewSparseSet(10)
	if s.Contains(5) {
		t.Fatal("fresh set should not contain 5")
	}
	s.Insert(5)
	if !s.Contains(5) {
		t.Fatal("expected 5 after Insert")
	}
	s.Insert(5) // duplicate is a no-op
	if s.Size() != 1 {
		t.Fatalf("expected Size()=1 after duplicate insert, got %d", s.Size())
	}
}

func TestIterInsertionOrder(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(7)
	s.Insert(2)
	s.Insert(5)

	var got []uint32
	s.Iter(func(v uint32) { got = append(got, v) })

	want := []uint32{7, 2, 5}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("at %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestIterEmpty(t *testing.T) {
	s := NewSparseSet(10)
	called := false
	s.Iter(func(uint32) { called = true })
	if called {
		t.Error("Iter must not call f on an empty set")
	}
}

func TestValues(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(4)
	s.Insert(1)
	vals := s.Values()
	if len(vals) != 2 || vals[0] != 4 || vals[1] != 1 {
		t.Errorf("unexpected Values(): %v", vals)
	}
}

func TestRemoveLastElement(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(5)
	s.Remove(5)
	if s.Size() != 0 || s.Contains(5) {
		t.Error("expected empty set after removing its only element")
	}
}

func TestRemoveMiddleElement(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	s.Remove(1)
	if s.Contains(1) {
		t.Error("1 should be gone")
	}
	if !s.Contains(2) || !s.Contains(3) {
		t.Error("2 and 3 should survive removing 1")
	}
	if s.Size() != 2 {
		t.Errorf("expected Size()=2, got %d", s.Size())
	}
}

func TestRemoveNonExistent(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(5)
	s.Remove(3)
	if s.Size() != 1 {
		t.Errorf("expected Size()=1, got %d", s.Size())
	}
}

func TestClear(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(1)
	s.Insert(2)
	s.Clear()
	if !s.IsEmpty() || s.Size() != 0 {
		t.Error("expected empty set after Clear")
	}
	s.Insert(1) // still usable after Clear
	if !s.Contains(1) {
		t.Error("set should be reusable after Clear")
	}
}

func TestContainsOutOfBounds(t *testing.T) {
	s := NewSparseSet(10)
	s.Insert(5)
	if s.Contains(10) || s.Contains(100) {
		t.Error("Contains must be false for values >= capacity")
	}
}

func TestDefaultCapacity(t *testing.T) {
	s := NewSparseSet(0)
	// Capacity isn't exposed; a value up to the documented default must be
	// insertable without panicking.
	s.Insert(defaultCapacity - 1)
	if !s.Contains(defaultCapacity - 1) {
		t.Errorf("expected capacity-0 to default to %d", defaultCapacity)
	}
}
