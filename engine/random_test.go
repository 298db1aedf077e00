package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/term-pong/vmath"
)

var (
	_ RandSource = (*vmath.FastRand)(nil)
	_ RandSource = (*rand.Rand)(nil)
)

// seqRand replays a fixed sequence of Intn results
type seqRand struct {
	seq []int
	i   int
}

func (s *seqRand) Intn(n int) int {
	v := s.seq[s.i%len(s.seq)] % n
	s.i++
	return v
}

func TestRandomDirectionMapping(t *testing.T) {
	d := math.Sqrt2 / 2
	tests := []struct {
		seq  []int
		want vmath.Vec2F
	}{
		{[]int{0, 0}, vmath.V2F(-d, -d)},
		{[]int{0, 1}, vmath.V2F(-d, d)},
		{[]int{1, 0}, vmath.V2F(d, -d)},
		{[]int{1, 1}, vmath.V2F(d, d)},
	}

	for _, tt := range tests {
		got := RandomDirection(&seqRand{seq: tt.seq})
		if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
			t.Errorf("seq %v: expected %v, got %v", tt.seq, tt.want, got)
		}
	}
}

func TestRandomDirectionDistribution(t *testing.T) {
	const draws = 10000
	rng := vmath.NewFastRand(2024)
	counts := map[[2]bool]int{}

	for i := 0; i < draws; i++ {
		v := RandomDirection(rng)
		if math.Abs(vmath.V2FMag(v)-1) > 1e-9 {
			t.Fatalf("draw %d: magnitude %v not unit", i, vmath.V2FMag(v))
		}
		counts[[2]bool{v.X > 0, v.Y > 0}]++
	}

	if len(counts) != 4 {
		t.Fatalf("Expected all four diagonals, got %d", len(counts))
	}
	// Binomial sd is ~43 for p=0.25, n=10000; allow ~7 sd
	for k, c := range counts {
		if c < 2200 || c > 2800 {
			t.Errorf("Diagonal %v drawn %d times, expected ~2500", k, c)
		}
	}
}

func TestRandomDirectionWithMathRand(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if !isUnitDiagonal(RandomDirection(rng)) {
			t.Fatal("Expected unit diagonal from math/rand source")
		}
	}
}
