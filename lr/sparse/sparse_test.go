package sparse

import "testing"

func TestMatrixSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	M.Set(2, 3, 4711).Set(0, 9, 1).Set(2, 1, 7).Set(9, 0, 8)
	if v := M.Value(2, 3); v != 4711 {
		t.Errorf("Expected M(2,3) to be 4711, is %d", v)
	}
	if v := M.Value(3, 2); v != M.NullValue() {
		t.Errorf("Expected M(3,2) to be null, is %d", v)
	}
	M.Set(2, 3, 42)
	if v := M.Value(2, 3); v != 42 || M.ValueCount() != 4 {
		t.Errorf("Expected overwrite of M(2,3) to keep 4 values, have %d", M.ValueCount())
	}
	var order []int32
	M.Each(func(i, j int, v int32) {
		order = append(order, v)
	})
	expected := []int32{1, 7, 42, 8}
	for k, v := range expected {
		if order[k] != v {
			t.Errorf("Expected value #%d in row-major order to be %d, is %d", k, v, order[k])
		}
	}
	if row := M.Row(2); len(row) != 2 || row[1] != 7 {
		t.Errorf("Expected row 2 to have 2 values, has %v", row)
	}
}

func TestMatrixBounds(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected Set outside of matrix to panic")
		}
	}()
	NewIntMatrix(2, 2, -1).Set(2, 0, 1)
}
