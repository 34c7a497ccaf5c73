package engine

import (
	"math"
	"math/rand"
)

// PieceSourceKind selects the policy a PieceSource draws shapes with.
type PieceSourceKind int

const (
	// SourceUniform draws each shape independently, uniformly over 7.
	SourceUniform PieceSourceKind = iota
	// SourceBag draws without replacement from a multiset of N copies
	// of each shape, refilling the bag when it empties.
	SourceBag
	// SourceRecency weighs each shape by how long it's been since it
	// was last drawn, raised to the 2.5 power.
	SourceRecency
	// SourceBalanceRelative weighs each shape inversely to how often
	// it has been drawn relative to the others.
	SourceBalanceRelative
)

// PieceSource is a restartable, stateful producer of an infinite
// sequence of shapes. It is a sum type over the four policies rather
// than an interface, so it stays a plain value the Game façade owns.
// Its state is unexported and it is not serialized.
type PieceSource struct {
	kind PieceSourceKind
	rng  *rand.Rand

	// Bag state.
	bagMultiplicity int
	bagLeft         [ShapeCount]int

	// Recency state: hops since each shape was last drawn.
	lastGenerated [ShapeCount]int

	// BalanceRelative state: draws of each shape so far, rebalanced.
	relativeCounts [ShapeCount]int
}

// NewUniformSource returns a PieceSource that draws uniformly at random.
func NewUniformSource(rng *rand.Rand) *PieceSource {
	return &PieceSource{kind: SourceUniform, rng: rng}
}

// NewBagSource returns a PieceSource drawing without replacement from
// a bag of `multiplicity` copies of each shape.
func NewBagSource(rng *rand.Rand, multiplicity int) *PieceSource {
	if multiplicity < 1 {
		multiplicity = 1
	}
	s := &PieceSource{kind: SourceBag, rng: rng, bagMultiplicity: multiplicity}
	for i := range s.bagLeft {
		s.bagLeft[i] = multiplicity
	}
	return s
}

// NewRecencySource returns a PieceSource weighted by recency.
func NewRecencySource(rng *rand.Rand) *PieceSource {
	s := &PieceSource{kind: SourceRecency, rng: rng}
	for i := range s.lastGenerated {
		s.lastGenerated[i] = 1
	}
	return s
}

// NewBalanceRelativeSource returns a PieceSource weighted to keep
// per-shape draw counts close to one another.
func NewBalanceRelativeSource(rng *rand.Rand) *PieceSource {
	return &PieceSource{kind: SourceBalanceRelative, rng: rng}
}

// Next draws the next shape according to the source's policy.
func (s *PieceSource) Next() Shape {
	switch s.kind {
	case SourceBag:
		return s.nextBag()
	case SourceRecency:
		return s.nextRecency()
	case SourceBalanceRelative:
		return s.nextBalanceRelative()
	default:
		return Shape(s.rng.Intn(int(ShapeCount)))
	}
}

func (s *PieceSource) nextBag() Shape {
	idx := weightedChoice(s.rng, func(i int) float64 {
		if s.bagLeft[i] > 0 {
			return 1
		}
		return 0
	})
	s.bagLeft[idx]--
	total := 0
	for _, c := range s.bagLeft {
		total += c
	}
	if total == 0 {
		for i := range s.bagLeft {
			s.bagLeft[i] = s.bagMultiplicity
		}
	}
	return Shape(idx)
}

func (s *PieceSource) nextRecency() Shape {
	idx := weightedChoice(s.rng, func(i int) float64 {
		return math.Pow(float64(s.lastGenerated[i]), 2.5)
	})
	for i := range s.lastGenerated {
		s.lastGenerated[i]++
	}
	s.lastGenerated[idx] = 0
	return Shape(idx)
}

func (s *PieceSource) nextBalanceRelative() Shape {
	idx := weightedChoice(s.rng, func(i int) float64 {
		return math.Exp(-float64(s.relativeCounts[i]))
	})
	s.relativeCounts[idx]++
	min := s.relativeCounts[0]
	for _, c := range s.relativeCounts {
		if c < min {
			min = c
		}
	}
	if min > 0 {
		for i := range s.relativeCounts {
			s.relativeCounts[i] -= min
		}
	}
	return Shape(idx)
}

// weightedChoice samples an index in [0, ShapeCount) proportional to
// weight(i); falls back to uniform if every weight is zero.
func weightedChoice(rng *rand.Rand, weight func(int) float64) int {
	var total float64
	for i := 0; i < int(ShapeCount); i++ {
		total += weight(i)
	}
	if total <= 0 {
		return rng.Intn(int(ShapeCount))
	}
	r := rng.Float64() * total
	for i := 0; i < int(ShapeCount); i++ {
		w := weight(i)
		if r < w {
			return i
		}
		r -= w
	}
	return int(ShapeCount) - 1
}
