package iteratable

import "testing"

func TestSetOrder(t *testing.T) {
	S := NewSet("c", "a", "b", "a")
	if S.Size() != 3 {
		t.Fatalf("expected set of size 3, is %d", S.Size())
	}
	vals := S.Values()
	for i, exp := range []string{"c", "a", "b"} {
		if vals[i] != exp {
			t.Errorf("expected element #%d to be %q, is %v", i, exp, vals[i])
		}
	}
}

func TestSetIterateWhileGrowing(t *testing.T) {
	S := NewSet(1)
	S.IterateOnce()
	visited := 0
	for S.Next() {
		n := S.Item().(int)
		visited++
		if n < 5 {
			S.Add(n + 1)
		}
	}
	if visited != 5 || S.Size() != 5 {
		t.Errorf("expected 5 elements visited and present, have %d/%d", visited, S.Size())
	}
}

func TestSetEquality(t *testing.T) {
	S := NewSet("x", "y")
	T := NewSet("y", "x")
	if !S.Equals(T) {
		t.Errorf("expected sets to be equal regardless of order")
	}
	D := S.Difference(NewSet("y"))
	if D.Size() != 1 || !D.Contains("x") {
		t.Errorf("expected difference to be {x}, is %v", D.Values())
	}
	S.Union(NewSet("z"))
	if S.Equals(T) || S.Size() != 3 {
		t.Errorf("expected union to change S")
	}
}
