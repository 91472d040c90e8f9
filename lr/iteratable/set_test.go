package iteratable

import "testing"

func TestAddContains(t *testing.T) {
	s := New()
	if s.Contains("a") {
		t.Fatal("empty set should not contain 'a'")
	}
	if !s.Add("a") {
		t.Fatal("first add of 'a' should report true")
	}
	if s.Add("a") {
		t.Fatal("second add of 'a' should report false")
	}
	if !s.Contains("a") {
		t.Fatal("set should contain 'a' after add")
	}
}

func TestUnionDuringIteration(t *testing.T) {
	s := New("a")
	more := New("b", "c")
	s.IterateOnce()
	seen := map[interface{}]bool{}
	for s.Next() {
		v := s.Item()
		seen[v] = true
		if v == "a" {
			s.Union(more)
		}
	}
	for _, want := range []string{"a", "b", "c"} {
		if !seen[want] {
			t.Errorf("expected to visit %q during iteration, didn't", want)
		}
	}
}

func TestDifferenceAndEquals(t *testing.T) {
	s1 := New(1, 2, 3)
	s2 := New(2, 3)
	d := s1.Difference(s2)
	if d.Size() != 1 || !d.Contains(1) {
		t.Fatalf("expected difference {1}, got %v", d.Values())
	}
	if s1.Equals(s2) {
		t.Fatal("s1 and s2 should not be equal")
	}
	s3 := New(3, 1, 2)
	if !s1.Equals(s3) {
		t.Fatal("sets with same members in different order should be equal")
	}
}

func TestCopyIsIndependent(t *testing.T) {
	s := New("x")
	c := s.Copy()
	c.Add("y")
	if s.Contains("y") {
		t.Fatal("mutating a copy should not affect the original")
	}
}
