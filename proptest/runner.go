package proptest

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lischenko/quicktheories/corpus"
	"github.com/lischenko/quicktheories/gen"
)

// maxShrinkCandidates bounds how many shrink candidates are evaluated
// while minimizing a counterexample.
const maxShrinkCandidates = 1000

// failure describes a shrunk counterexample.
type failure[T any] struct {
	value T
	trial int
	seed  int64
}

// Check runs prop against cfg.Trials values drawn from src. On failure
// the counterexample is shrunk, reported through t.Errorf together
// with the seed, and recorded to the corpus when one is configured.
func Check[T any](t *testing.T, name string, cfg Config, src gen.Source[T], prop func(T) bool) {
	t.Helper()

	if cfg.Trials <= 0 {
		cfg.Trials = 100
	}

	seed := effectiveSeed(cfg)

	if cfg.Verbose {
		t.Logf("proptest %q: running %d trials with seed %d", name, cfg.Trials, seed)
	}

	f, ok := runTrials(seed, cfg.Trials, src, prop)
	if ok {
		if cfg.Verbose {
			t.Logf("proptest %q: passed %d trials", name, cfg.Trials)
		}
		return
	}

	record(t, name, cfg, f)
	t.Errorf("proptest %q failed on trial %d with value %+v (seed=%d, use QT_SEED=%d to reproduce)",
		name, f.trial, f.value, f.seed, f.seed)
}

// MustCheck is like Check but calls t.Fatal instead of t.Error on failure.
func MustCheck[T any](t *testing.T, name string, cfg Config, src gen.Source[T], prop func(T) bool) {
	t.Helper()

	if cfg.Trials <= 0 {
		cfg.Trials = 100
	}

	seed := effectiveSeed(cfg)

	f, ok := runTrials(seed, cfg.Trials, src, prop)
	if ok {
		return
	}

	record(t, name, cfg, f)
	t.Fatalf("proptest %q failed on trial %d with value %+v (seed=%d, use QT_SEED=%d to reproduce)",
		name, f.trial, f.value, f.seed, f.seed)
}

// ForAll runs a property with configuration loaded from
// quicktheories.ini, falling back to defaults when the file is absent.
func ForAll[T any](t *testing.T, name string, src gen.Source[T], prop func(T) bool) {
	t.Helper()
	Check(t, name, fileConfig(), src, prop)
}

// RunSeeds replays a property with specific seeds, running the full
// trial count for each. Useful for pinning regressions on seeds
// recorded in the corpus.
func RunSeeds[T any](t *testing.T, name string, seeds []int64, src gen.Source[T], prop func(T) bool) {
	t.Helper()

	for _, seed := range seeds {
		f, ok := runTrials(seed, DefaultConfig().Trials, src, prop)
		if !ok {
			t.Errorf("proptest %q failed on trial %d with value %+v (seed=%d)",
				name, f.trial, f.value, seed)
		}
	}
}

// runTrials draws values from src until one fails prop or the trial
// budget runs out. A failing value is shrunk before being returned.
func runTrials[T any](seed int64, trials int, src gen.Source[T], prop func(T) bool) (failure[T], bool) {
	r := gen.NewRand(seed)

	for i := 0; i < trials; i++ {
		v := src.Next(r)
		if !prop(v) {
			return failure[T]{value: shrink(src, v, prop), trial: i + 1, seed: seed}, false
		}
	}

	return failure[T]{seed: seed}, true
}

// shrink walks src's shrink candidates while they keep failing prop,
// returning the simplest failing value it can reach within the
// candidate budget.
func shrink[T any](src gen.Source[T], v T, prop func(T) bool) T {
	budget := maxShrinkCandidates
	for {
		advanced := false
		for _, c := range src.Shrinks(v) {
			if budget == 0 {
				return v
			}
			budget--
			if !prop(c) {
				v = c
				advanced = true
				break
			}
		}
		if !advanced {
			return v
		}
	}
}

// record stores a counterexample in the corpus when one is configured.
// Corpus trouble is logged, never allowed to mask the test failure.
func record[T any](t *testing.T, property string, cfg Config, f failure[T]) {
	t.Helper()

	if cfg.CorpusPath == "" {
		return
	}

	store, err := corpus.Open(cfg.CorpusPath)
	if err != nil {
		t.Logf("proptest: opening corpus %s: %v", cfg.CorpusPath, err)
		return
	}
	defer store.Close()

	rec := corpus.Failure{
		Property: property,
		Seed:     f.seed,
		Trial:    f.trial,
		Value:    fmt.Sprintf("%+v", f.value),
	}
	if err := store.Record(rec); err != nil {
		t.Logf("proptest: recording failure: %v", err)
	}
}

var (
	loadOnce   sync.Once
	loadedConf Config
)

// fileConfig loads quicktheories.ini once per process.
func fileConfig() Config {
	loadOnce.Do(func() { loadedConf = LoadConfig() })
	return loadedConf
}
