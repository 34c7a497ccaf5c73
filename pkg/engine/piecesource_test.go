package engine

import (
	"math/rand"
	"testing"
)

func TestUniformSourceStaysInRange(t *testing.T) {
	s := NewUniformSource(rand.New(rand.NewSource(1)))
	for i := 0; i < 1000; i++ {
		shape := s.Next()
		if shape < 0 || shape >= ShapeCount {
			t.Fatalf("Next() = %v, out of range", shape)
		}
	}
}

func TestBagSourceExhaustsWithoutRepeats(t *testing.T) {
	s := NewBagSource(rand.New(rand.NewSource(1)), 1)
	seen := map[Shape]int{}
	for i := 0; i < int(ShapeCount); i++ {
		seen[s.Next()]++
	}
	for shape := Shape(0); shape < ShapeCount; shape++ {
		if seen[shape] != 1 {
			t.Errorf("shape %v drawn %d times in one bag pass, want 1", shape, seen[shape])
		}
	}
}

func TestBagSourceRefillsAfterExhaustion(t *testing.T) {
	s := NewBagSource(rand.New(rand.NewSource(2)), 2)
	seen := map[Shape]int{}
	for i := 0; i < int(ShapeCount)*2; i++ {
		seen[s.Next()]++
	}
	for shape := Shape(0); shape < ShapeCount; shape++ {
		if seen[shape] != 2 {
			t.Errorf("shape %v drawn %d times across two bag passes, want 2", shape, seen[shape])
		}
	}
}

func TestRecencySourceDoesNotImmediatelyRepeatUnderSkew(t *testing.T) {
	s := NewRecencySource(rand.New(rand.NewSource(3)))
	last := s.Next()
	repeats := 0
	for i := 0; i < 500; i++ {
		next := s.Next()
		if next == last {
			repeats++
		}
		last = next
	}
	if repeats > 50 {
		t.Errorf("recency source repeated the same shape back-to-back %d/500 times, want it rare", repeats)
	}
}

func TestBalanceRelativeSourceKeepsCountsClose(t *testing.T) {
	s := NewBalanceRelativeSource(rand.New(rand.NewSource(4)))
	counts := [ShapeCount]int{}
	for i := 0; i < 700; i++ {
		counts[s.Next()]++
	}
	min, max := counts[0], counts[0]
	for _, c := range counts {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	if max-min > 20 {
		t.Errorf("balance-relative source produced spread %d (min=%d, max=%d), want tightly balanced counts", max-min, min, max)
	}
}

func TestWeightedChoiceFallsBackToUniformWhenAllWeightsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	idx := weightedChoice(rng, func(i int) float64 { return 0 })
	if idx < 0 || idx >= int(ShapeCount) {
		t.Fatalf("weightedChoice fallback = %d, out of range", idx)
	}
}
