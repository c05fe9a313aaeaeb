package utils

import "testing"

func TestOrderedSetNoDuplicates(t *testing.T) {
	s := NewOrderedSet()

	if !s.Add("W-100") {
		t.Error("first Add should return true")
	}
	if s.Add("W-100") {
		t.Error("second Add of same value should return false")
	}
	if s.Size() != 1 {
		t.Errorf("size: got %d, want 1", s.Size())
	}
}

func TestOrderedSetKeepsInsertionOrder(t *testing.T) {
	s := NewOrderedSet("b", "a", "c", "a")

	got := s.Values()
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Values() returned %d members, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestOrderedSetRemove(t *testing.T) {
	s := NewOrderedSet("a", "b", "c")

	if !s.Remove("b") {
		t.Error("Remove of present value should return true")
	}
	if s.Remove("b") {
		t.Error("Remove of absent value should return false")
	}
	if s.Contains("b") {
		t.Error("removed value should not be contained")
	}
	if s.Size() != 2 {
		t.Errorf("size after Remove: got %d, want 2", s.Size())
	}

	got := s.Values()
	want := []string{"a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Values() after Remove = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}
