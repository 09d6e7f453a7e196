package types

import "testing"

func TestValuations_Sum(t *testing.T) {
	v := Valuations{Divisible: []float64{30}, Indivisible: []float64{25, 15, 20, 10}}
	if got := v.Sum(); got != 100 {
		t.Errorf("Sum() = %v, want 100", got)
	}
	if got := (Valuations{}).Sum(); got != 0 {
		t.Errorf("empty Sum() = %v, want 0", got)
	}
}

func TestValuations_DeepCopy(t *testing.T) {
	v := &Valuations{Divisible: []float64{1, 2}, Indivisible: []float64{3}}
	cp := v.DeepCopy()
	cp.Divisible[0] = 9
	cp.Indivisible[0] = 9
	if v.Divisible[0] != 1 || v.Indivisible[0] != 3 {
		t.Error("DeepCopy shares slices with the original")
	}

	var nilV *Valuations
	if nilV.DeepCopy() != nil {
		t.Error("DeepCopy of nil should be nil")
	}
}
