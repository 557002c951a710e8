package proptest

import (
	"os"
	"strconv"
	"testing"
	"time"
)

// Config controls property test behavior.
type Config struct {
	// NumTrials is the number of test iterations. Default: 100.
	NumTrials int

	// Seed is the random seed for reproducibility. Default: time-based.
	// Set to 0 for random seed.
	Seed int64

	// Verbose enables additional logging.
	Verbose bool
}

// DefaultConfig returns sensible defaults for property testing.
func DefaultConfig() Config {
	return Config{
		NumTrials: 100,
		Seed:      0, // Will be set from time or environment
	}
}

// getEffectiveSeed returns the seed to use, checking environment first.
func getEffectiveSeed(cfg Config) int64 {
	// Check environment variable for reproducibility
	if envSeed := os.Getenv("PROPTEST_SEED"); envSeed != "" {
		if seed, err := strconv.ParseInt(envSeed, 10, 64); err == nil {
			return seed
		}
	}

	if cfg.Seed != 0 {
		return cfg.Seed
	}

	return time.Now().UnixNano()
}

// Check runs a property multiple times with different random inputs.
// On failure, it logs the seed for reproducibility.
//
// Example:
//
//	proptest.Check(t, "positive ints", proptest.Config{NumTrials: 50}, func(g *proptest.Generator) bool {
//	    n := g.IntRange(1, 100)
//	    return n >= 1 && n <= 100
//	})
func Check(t *testing.T, name string, cfg Config, prop func(g *Generator) bool) {
	t.Helper()

	if cfg.NumTrials <= 0 {
		cfg.NumTrials = 100
	}

	seed := getEffectiveSeed(cfg)
	g := New(seed)

	if cfg.Verbose {
		t.Logf("proptest %q: running %d trials with seed %d", name, cfg.NumTrials, seed)
	}

	for i := 0; i < cfg.NumTrials; i++ {
		if !prop(g) {
			t.Errorf("proptest %q failed on trial %d (seed=%d, use PROPTEST_SEED=%d to reproduce)",
				name, i+1, seed, seed)
			return
		}
	}

	if cfg.Verbose {
		t.Logf("proptest %q: passed %d trials", name, cfg.NumTrials)
	}
}

// QuickCheck runs a property with default configuration (100 trials).
//
// Example:
//
//	proptest.QuickCheck(t, "strings are non-negative length", func(g *proptest.Generator) bool {
//	    s := g.String(100)
//	    return len(s) >= 0
//	})
func QuickCheck(t *testing.T, name string, prop func(g *Generator) bool) {
	t.Helper()
	Check(t, name, DefaultConfig(), prop)
}

// ForAll runs a property that generates a value and returns both the value
// and whether the property holds. On failure, it logs the generated value.
//
// Example:
//
//	proptest.ForAll(t, "positive ints", 100, func(g *proptest.Generator) (int, bool) {
//	    n := g.IntRange(1, 100)
//	    return n, n >= 1 && n <= 100
//	})
func ForAll[T any](t *testing.T, name string, numTrials int, prop func(g *Generator) (T, bool)) {
	t.Helper()

	seed := getEffectiveSeed(Config{})
	g := New(seed)

	for i := 0; i < numTrials; i++ {
		val, ok := prop(g)
		if !ok {
			t.Errorf("proptest %q failed on trial %d with value %+v (seed=%d, use PROPTEST_SEED=%d to reproduce)",
				name, i+1, val, seed, seed)
			return
		}
	}
}
