package dates

import (
	"testing"
	"time"

	"github.com/lischenko/quicktheories/arg"
	"github.com/lischenko/quicktheories/gen"
)

// between reports whether d lies in [lo, hi] inclusively.
func between(d, lo, hi time.Time) bool {
	return !d.Before(lo) && !d.After(hi)
}

// expectInvalidArgument runs fn and fails unless it panics with an
// *arg.InvalidArgumentError.
func expectInvalidArgument(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		recovered := recover()
		if recovered == nil {
			t.Fatal("expected construction to fail")
		}
		err, ok := arg.AsInvalidArgument(recovered)
		if !ok {
			t.Fatalf("expected an InvalidArgumentError panic, got %v", recovered)
		}
		if err.Message == "" {
			t.Error("InvalidArgumentError carries no message")
		}
	}()
	fn()
}

func TestWithDaysStaysBetweenEpochAndOffset(t *testing.T) {
	epoch := OfEpochDay(0)

	t.Run("positive offset", func(t *testing.T) {
		src := WithDays(10)
		hi := OfEpochDay(10)
		for seed := int64(1); seed <= 10; seed++ {
			r := gen.NewRand(seed)
			for i := 0; i < 100; i++ {
				if d := src.Next(r); !between(d, epoch, hi) {
					t.Fatalf("seed=%d: %v outside [epoch, epoch+10d]", seed, d)
				}
			}
		}
	})

	t.Run("negative offset", func(t *testing.T) {
		src := WithDays(-10)
		lo := OfEpochDay(-10)
		for seed := int64(1); seed <= 10; seed++ {
			r := gen.NewRand(seed)
			for i := 0; i < 100; i++ {
				if d := src.Next(r); !between(d, lo, epoch) {
					t.Fatalf("seed=%d: %v outside [epoch-10d, epoch]", seed, d)
				}
			}
		}
	})

	t.Run("extreme offsets", func(t *testing.T) {
		for _, days := range []int64{MaxEpochDay, MinEpochDay} {
			src := WithDays(days)
			lo, hi := epoch, OfEpochDay(days)
			if days < 0 {
				lo, hi = hi, lo
			}
			r := gen.NewRand(3)
			for i := 0; i < 100; i++ {
				if d := src.Next(r); !between(d, lo, hi) {
					t.Fatalf("WithDays(%d): %v out of range", days, d)
				}
			}
		}
	})
}

func TestWithDaysZeroAlwaysYieldsEpoch(t *testing.T) {
	src := WithDays(0)
	epoch := OfEpochDay(0)
	r := gen.NewRand(2)
	for i := 0; i < 100; i++ {
		if d := src.Next(r); !d.Equal(epoch) {
			t.Fatalf("WithDays(0) produced %v, want the epoch", d)
		}
	}
}

func TestWithDaysBetweenStaysInBounds(t *testing.T) {
	intervals := []struct{ lo, hi int64 }{
		{-30, 30},
		{100, 200},
		{-200, -100},
		{MinEpochDay, MaxEpochDay},
	}

	for _, iv := range intervals {
		src := WithDaysBetween(iv.lo, iv.hi)
		lo, hi := OfEpochDay(iv.lo), OfEpochDay(iv.hi)
		for seed := int64(1); seed <= 10; seed++ {
			r := gen.NewRand(seed)
			for i := 0; i < 100; i++ {
				if d := src.Next(r); !between(d, lo, hi) {
					t.Fatalf("interval [%d, %d] seed=%d: produced %v", iv.lo, iv.hi, seed, d)
				}
			}
		}
	}
}

// Probabilistic and therefore flaky-sensitive: with gen.BoundaryWeight
// = 0.1 per endpoint, an endpoint is missed across 200 draws with
// probability 0.9^200, under one in a billion. A failure here almost
// certainly means the weighting broke, not bad luck.
func TestWithDaysBetweenCoversBothBoundaries(t *testing.T) {
	src := WithDaysBetween(-1000, 1000)
	start, end := OfEpochDay(-1000), OfEpochDay(1000)

	r := gen.NewRand(17)
	var sawStart, sawEnd bool
	for i := 0; i < 200; i++ {
		d := src.Next(r)
		if d.Equal(start) {
			sawStart = true
		}
		if d.Equal(end) {
			sawEnd = true
		}
	}
	if !sawStart || !sawEnd {
		t.Errorf("endpoints missing after 200 draws: start=%v end=%v", sawStart, sawEnd)
	}
}

func TestWithDaysCoversItsBoundary(t *testing.T) {
	src := WithDays(500)
	boundary := OfEpochDay(500)

	r := gen.NewRand(19)
	for i := 0; i < 200; i++ {
		if src.Next(r).Equal(boundary) {
			return
		}
	}
	t.Error("boundary date missing after 200 draws")
}

func TestWithDaysBetweenDegenerateInterval(t *testing.T) {
	src := WithDaysBetween(7, 7)
	want := OfEpochDay(7)
	r := gen.NewRand(23)
	for i := 0; i < 100; i++ {
		if d := src.Next(r); !d.Equal(want) {
			t.Fatalf("degenerate interval produced %v, want %v", d, want)
		}
	}
}

func TestEpochDayRoundTrip(t *testing.T) {
	offsets := gen.Int64Range(MinEpochDay, MaxEpochDay)
	r := gen.NewRand(29)
	for i := 0; i < 1000; i++ {
		days := offsets.Next(r)
		if got := EpochDay(OfEpochDay(days)); got != days {
			t.Fatalf("round trip: %d -> %v -> %d", days, OfEpochDay(days), got)
		}
	}

	for _, days := range []int64{MinEpochDay, -1, 0, 1, MaxEpochDay} {
		if got := EpochDay(OfEpochDay(days)); got != days {
			t.Errorf("round trip: %d -> %d", days, got)
		}
	}
}

func TestEpochDayFloorsPreEpochInstants(t *testing.T) {
	// One second before the epoch is still the previous day.
	if got := EpochDay(OfEpochDay(0).Add(-time.Second)); got != -1 {
		t.Errorf("got day %d, want -1", got)
	}
	if got := EpochDay(OfEpochDay(0).Add(time.Second)); got != 0 {
		t.Errorf("got day %d, want 0", got)
	}
}

func TestDateShrinksTowardEpoch(t *testing.T) {
	src := WithDaysBetween(-1000, 1000)
	candidates := src.Shrinks(OfEpochDay(800))
	if len(candidates) == 0 {
		t.Fatal("expected shrink candidates")
	}
	if !candidates[0].Equal(OfEpochDay(0)) {
		t.Errorf("simplest candidate is %v, want the epoch", candidates[0])
	}
	for _, c := range candidates {
		d := EpochDay(c)
		if d < 0 || d >= 800 {
			t.Errorf("candidate %v (day %d) not between epoch and the failing value", c, d)
		}
	}
}

func TestValidationRejects(t *testing.T) {
	t.Run("WithDays below minimum", func(t *testing.T) {
		expectInvalidArgument(t, func() { WithDays(MinEpochDay - 1) })
	})

	t.Run("WithDays above maximum", func(t *testing.T) {
		expectInvalidArgument(t, func() { WithDays(MaxEpochDay + 1) })
	})

	t.Run("WithDaysBetween reversed interval", func(t *testing.T) {
		expectInvalidArgument(t, func() { WithDaysBetween(5, 3) })
	})

	t.Run("WithDaysBetween end above maximum", func(t *testing.T) {
		expectInvalidArgument(t, func() { WithDaysBetween(MinEpochDay, MaxEpochDay+1) })
	})

	t.Run("WithDaysBetween start below minimum", func(t *testing.T) {
		expectInvalidArgument(t, func() { WithDaysBetween(MinEpochDay-1, 0) })
	})
}
