package sparse

import "testing"

func TestMatrixSetValue(t *testing.T) {
	M := NewIntMatrix(DefaultNullValue)
	M.Set(2, 3, 4711)
	M.Set(0, 1, 7)
	M.Set(2, 1, 8)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(1, 1); v != M.NullValue() {
		t.Errorf("expected M(1,1) to be null, is %d", v)
	}
	M.Set(2, 3, 1)
	if M.ValueCount() != 3 {
		t.Errorf("expected 3 values, have %d", M.ValueCount())
	}
	if M.M() != 3 || M.N() != 4 {
		t.Errorf("expected matrix of size 3x4, is %dx%d", M.M(), M.N())
	}
}

func TestMatrixRowMajorOrder(t *testing.T) {
	M := NewIntMatrix(-1)
	M.Set(1, 0, 10)
	M.Set(0, 5, 5)
	M.Set(0, 2, 2)
	var order []int32
	M.Each(func(i, j int, v int32) {
		order = append(order, v)
	})
	exp := []int32{2, 5, 10}
	for k := range exp {
		if order[k] != exp[k] {
			t.Fatalf("expected row-major order %v, got %v", exp, order)
		}
	}
	if !M.Has(0, 2) || M.Has(2, 0) {
		t.Errorf("Has() reports wrong positions")
	}
}
