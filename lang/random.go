package lang

// lcg is the deterministic generator behind RANDOM, SHUFFLE, and
// SAMPLE. Scripts must produce identical sequences on every platform,
// so the generator is fixed: a linear congruential step with the
// Numerical Recipes constants over a 32-bit modulus.
type lcg struct {
	seed uint64
}

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32

	// DefaultSeed is the generator state every interpreter starts
	// from.
	DefaultSeed = 12345
)

// next advances the generator and returns a value in [0, 1).
func (r *lcg) next() float64 {
	r.seed = (r.seed*lcgMultiplier + lcgIncrement) % lcgModulus

	return float64(r.seed) / float64(lcgModulus)
}
