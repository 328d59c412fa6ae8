package ptr

import "testing"

func TestFloat64(t *testing.T) {
	p := Float64(42.5)
	if p == nil || *p != 42.5 {
		t.Errorf("Float64(42.5) = %v", p)
	}

	a, b := Float64(1), Float64(1)
	if a == b {
		t.Error("each call should return a distinct pointer")
	}
}

func TestInt64(t *testing.T) {
	p := Int64(7)
	if p == nil || *p != 7 {
		t.Errorf("Int64(7) = %v", p)
	}
}
