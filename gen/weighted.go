package gen

// BoundaryWeight is the per-value probability with which
// WeightWithValues emits one of its designated values instead of
// deferring to the base Source. At 0.1 a designated value is missed by
// a whole 100-trial run with probability 0.9^100, about 3 in 100,000,
// while the bulk of draws still comes from the base distribution.
const BoundaryWeight = 0.1

// maxWeightedShare caps the total probability mass diverted to
// designated values so that a long value list cannot starve the base
// Source.
const maxWeightedShare = 0.5

// WeightWithValues returns a Source that usually defers to base but,
// with a fixed probability per draw, emits one of the designated
// values instead. Every value base can produce remains producible with
// its relative likelihood intact; the designated values simply gain a
// guaranteed minimum share of draws. The composite holds no mutable
// state, so independent draws stay independent.
//
// Shrinking is delegated to base, which the designated values must
// belong to.
// Panics if values is empty.
func WeightWithValues[T any](base Source[T], values ...T) Source[T] {
	if len(values) == 0 {
		panic("gen: WeightWithValues called with no values")
	}
	share := BoundaryWeight * float64(len(values))
	if share > maxWeightedShare {
		share = maxWeightedShare
	}
	vals := append([]T(nil), values...)
	return Make(
		func(r *Rand) T {
			if r.Float64() < share {
				return vals[r.Intn(len(vals))]
			}
			return base.Next(r)
		},
		base.Shrinks,
	)
}
