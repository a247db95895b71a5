package gen

import "math"

// Int64Range returns a Source of int64 uniformly distributed over the
// inclusive range [lo, hi]. Values shrink toward the in-range value
// closest to zero, halving the remaining distance at each step.
// Panics if lo > hi.
func Int64Range(lo, hi int64) Source[int64] {
	if lo > hi {
		panic("gen: Int64Range called with lo > hi")
	}
	target := shrinkTarget(lo, hi)
	// span == 0 stands for the full 2^64 range.
	span := uint64(hi) - uint64(lo) + 1
	return Make(
		func(r *Rand) int64 {
			return lo + int64(uniformUint64(r, span))
		},
		func(v int64) []int64 { return halvings(v, target) },
	)
}

// shrinkTarget is the value of [lo, hi] closest to zero.
func shrinkTarget(lo, hi int64) int64 {
	switch {
	case lo > 0:
		return lo
	case hi < 0:
		return hi
	default:
		return 0
	}
}

// uniformUint64 returns a uniform value in [0, span), where span == 0
// stands for 2^64.
func uniformUint64(r *Rand, span uint64) uint64 {
	switch {
	case span == 0:
		return r.Uint64()
	case span <= math.MaxInt64:
		return uint64(r.Int63n(int64(span)))
	default:
		// span exceeds 2^63, so a raw 64-bit draw lands inside it
		// more than half the time.
		for {
			if v := r.Uint64(); v < span {
				return v
			}
		}
	}
}

// halvings lists shrink candidates for v ordered simplest first: the
// target itself, then values stepping back toward v by halved
// distances. Returns nil when v is already the target.
func halvings(v, target int64) []int64 {
	if v == target {
		return nil
	}
	var out []int64
	for delta := v - target; delta != 0; delta /= 2 {
		out = append(out, v-delta)
	}
	return out
}
