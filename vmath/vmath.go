package vmath

import "github.com/go-gl/mathgl/mgl64"

// Clamp restricts v to [lo, hi]. If hi < lo the range collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return mgl64.Clamp(v, lo, hi)
}

// --- Random ---

// FastRand is a xorshift64 generator. Not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator. The seed is scrambled with a splitmix64 step so that small
// or adjacent seeds start from well-spread states; xorshift never leaves the zero state
func NewFastRand(seed uint64) *FastRand {
	z := seed + 0x9e3779b97f4a7c15
	z = (z ^ z>>30) * 0xbf58476d1ce4e5b9
	z = (z ^ z>>27) * 0x94d049bb133111eb
	z ^= z >> 31
	if z == 0 {
		z = 1
	}
	return &FastRand{state: z}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
