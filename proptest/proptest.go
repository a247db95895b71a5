// Package proptest runs properties against randomly generated inputs.
//
// A property is a predicate over values drawn from a gen.Source. The
// runner draws a configurable number of trials and, when a trial
// fails, shrinks the counterexample toward a simpler value before
// reporting it together with the seed needed to reproduce the run.
//
// Basic usage:
//
//	func TestDatesStayInRange(t *testing.T) {
//	    src := dates.WithDaysBetween(-30, 30)
//	    proptest.ForAll(t, "dates stay in range", src, func(d time.Time) bool {
//	        return dates.EpochDay(d) >= -30 && dates.EpochDay(d) <= 30
//	    })
//	}
package proptest

import (
	"os"
	"strconv"
	"time"
)

// Config controls property test behavior.
type Config struct {
	// Trials is the number of draws per property. Default: 100.
	Trials int

	// Seed is the random seed for reproducibility.
	// Set to 0 for a time-based seed.
	Seed int64

	// Verbose enables additional logging.
	Verbose bool

	// CorpusPath, when non-empty, names the sqlite failure store that
	// counterexamples are recorded into.
	CorpusPath string
}

// DefaultConfig returns sensible defaults for property testing.
func DefaultConfig() Config {
	return Config{
		Trials: 100,
		Seed:   0, // resolved from QT_SEED or the clock at run time
	}
}

// effectiveSeed returns the seed to run with: the QT_SEED environment
// variable wins, then the configured seed, then the clock.
func effectiveSeed(cfg Config) int64 {
	if env := os.Getenv("QT_SEED"); env != "" {
		if seed, err := strconv.ParseInt(env, 10, 64); err == nil {
			return seed
		}
	}

	if cfg.Seed != 0 {
		return cfg.Seed
	}

	return time.Now().UnixNano()
}
