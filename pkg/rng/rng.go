// Package rng provides a small seedable pseudo-random sequence generator.
//
// The generator is a multiply-with-carry pair operating on 32-bit
// two's-complement state, so a given seed always yields the same
// infinite sequence on every platform. World generation depends on
// that: the same seed must always produce the same city.
package rng

const (
	initW = 123456789
	initZ = 987654321

	// 2^32, the divisor that maps a uint32 into [0,1).
	span = 4294967296.0
)

// RNG is a reseedable multiply-with-carry generator.
// The zero value behaves like New(0) only after Seed is called.
type RNG struct {
	w int32
	z int32
}

// New returns a generator seeded with seed.
func New(seed int64) *RNG {
	r := &RNG{}
	r.Seed(seed)
	return r
}

// Seed resets the internal state from seed.
func (r *RNG) Seed(seed int64) {
	r.w = int32(uint32(initW + seed))
	r.z = int32(uint32(initZ - seed))
}

// Random returns the next value in [0,1) and advances the state.
func (r *RNG) Random() float64 {
	r.z = step(36969, r.z)
	r.w = step(18000, r.w)
	result := uint32(r.z)<<16 + uint32(r.w&0xffff)
	return float64(result) / span
}

// step advances one half of the generator. The shift is arithmetic and
// the sum wraps to 32 bits.
func step(mul int64, v int32) int32 {
	return int32(uint32(mul*int64(v&0xffff) + int64(v>>16)))
}

// Intn returns floor(Random()*n), an integer in [0,n).
func (r *RNG) Intn(n int) int {
	return int(r.Random() * float64(n))
}

// Range returns an integer in the inclusive range [lo,hi].
func (r *RNG) Range(lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// Chance draws once and reports whether the draw fell below p.
func (r *RNG) Chance(p float64) bool {
	return r.Random() < p
}
