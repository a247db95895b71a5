package gen

// Source pairs a sampling function with a shrink function. The shrink
// function declares, for any value the Source can produce, candidate
// simpler values ordered simplest first; a shrinking engine walks those
// candidates while the property under test keeps failing.
type Source[T any] struct {
	sample func(*Rand) T
	shrink func(T) []T
}

// Make constructs a Source from a sampling function and an optional
// shrink function. A nil shrink means values of this Source do not
// shrink.
// Panics if sample is nil.
func Make[T any](sample func(*Rand) T, shrink func(T) []T) Source[T] {
	if sample == nil {
		panic("gen: Make called with nil sample function")
	}
	return Source[T]{sample: sample, shrink: shrink}
}

// Next draws one value using r.
func (s Source[T]) Next(r *Rand) T {
	return s.sample(r)
}

// Shrinks returns candidate simpler values for v, ordered simplest
// first. An empty result means v cannot shrink further.
func (s Source[T]) Shrinks(v T) []T {
	if s.shrink == nil {
		return nil
	}
	return s.shrink(v)
}

// Constant returns a Source that always produces v.
func Constant[T any](v T) Source[T] {
	return Make(func(*Rand) T { return v }, nil)
}

// As maps a Source into another domain through the function pair to and
// from. from must be the exact, side-effect-free inverse of to over the
// Source's range: shrinking relies on it to move a mapped value back
// into the base domain, shrink it there, and map the candidates
// forward again.
func As[T, U any](s Source[T], to func(T) U, from func(U) T) Source[U] {
	return Make(
		func(r *Rand) U { return to(s.Next(r)) },
		func(u U) []U {
			base := s.Shrinks(from(u))
			if len(base) == 0 {
				return nil
			}
			out := make([]U, len(base))
			for i, b := range base {
				out[i] = to(b)
			}
			return out
		},
	)
}
