package alveare

import "math"

// Rand is a Mulberry32 generator. It is small, fast and fully determined by
// its 32-bit state, so two instances built from the same seed produce the same
// stream forever. The stream matches the generator used by the web client, so
// seeds shared between players reproduce the same boards.
type Rand struct {
	state uint32
}

// mulberryIncrement is the odd constant added to the state on every draw.
const mulberryIncrement = 0x6D2B79F5

// NewRand seeds a generator. Only the low 32 bits of seed are used.
func NewRand(seed int64) *Rand {
	return &Rand{state: uint32(seed)}
}

// Uint32 advances the state and returns the next mixed value.
func (r *Rand) Uint32() uint32 {
	r.state += mulberryIncrement
	t := r.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return t ^ t>>14
}

// Float64 returns a uniform value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// IntRange returns an integer in [min, max). It follows
// floor(uniform*(max-min)) + min exactly, including for a range of one.
func (r *Rand) IntRange(min, max int) int {
	return int(math.Floor(r.Float64()*float64(max-min))) + min
}

// Sample draws n distinct elements without replacement. Each draw picks an
// index in the shrinking remainder and removes it, so the result order is
// the draw order. n is clamped to len(items).
func Sample[T any](r *Rand, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	pool := make([]T, len(items))
	copy(pool, items)
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		idx := r.IntRange(0, len(pool))
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}

// Shuffle permutes s in place with a downward Fisher-Yates walk: for i from
// the last index down to 1, swap s[i] with s[j] for j uniform in [0, i].
func Shuffle[T any](r *Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.IntRange(0, i+1)
		s[i], s[j] = s[j], s[i]
	}
}
