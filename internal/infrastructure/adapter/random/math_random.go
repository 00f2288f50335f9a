package random

import (
	"math/rand/v2"

	"github.com/brunovale/mock-payment-gateway/internal/domain/port/core"
)

// MathRandomSource implements the RandomSource interface on top of the
// shared math/rand/v2 generator, which is safe for concurrent use
type MathRandomSource struct{}

// NewMathRandomSource creates the production random source
func NewMathRandomSource() core.RandomSource {
	return &MathRandomSource{}
}

// Float64 returns a uniformly distributed value in [0, 1)
func (r *MathRandomSource) Float64() float64 {
	return rand.Float64()
}

// Intn returns a uniformly distributed value in [0, n)
func (r *MathRandomSource) Intn(n int) int {
	return rand.IntN(n)
}
