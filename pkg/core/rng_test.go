package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 256; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d differs for identical seeds", i)
		}
	}
}

func TestRNGStreamsDiffer(t *testing.T) {
	a := NewRNGStream(7, 0)
	b := NewRNGStream(7, 1)
	same := 0
	const draws = 256
	for i := 0; i < draws; i++ {
		if a.Bool() == b.Bool() {
			same++
		}
	}
	if same == draws {
		t.Fatal("distinct streams produced identical sequences")
	}
}

func TestRNGBoolBalanced(t *testing.T) {
	r := NewRNG(42)
	trues := 0
	const draws = 10000
	for i := 0; i < draws; i++ {
		if r.Bool() {
			trues++
		}
	}
	if trues < 4500 || trues > 5500 {
		t.Fatalf("got %d trues out of %d, expected roughly half", trues, draws)
	}
}
