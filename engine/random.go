package engine

import (
	"github.com/lixenwraith/term-pong/vmath"
)

// RandSource draws integers in [0, n)
// Satisfied by *vmath.FastRand and *math/rand.Rand
type RandSource interface {
	Intn(n int) int
}

// RandomDirection returns one of the four unit diagonals, uniformly
func RandomDirection(rng RandSource) vmath.Vec2F {
	return randVec(rng, 1, 1)
}

// randVec picks ±x and ±y independently, then normalizes
func randVec(rng RandSource, x, y float64) vmath.Vec2F {
	if rng.Intn(2) == 0 {
		x = -x
	}
	if rng.Intn(2) == 0 {
		y = -y
	}
	return vmath.V2FNormalize(vmath.V2F(x, y))
}
