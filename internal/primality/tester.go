package primality

import (
	"math"
	"math/rand/v2"

	"github.com/dshills/primes/internal/filter"
)

const (
	// DefaultLargeThreshold is where the tester switches to the
	// probabilistic path.
	DefaultLargeThreshold = 10_000_000

	// DefaultFalsePositiveRate bounds the chance that a composite above the
	// threshold is reported prime.
	DefaultFalsePositiveRate = 1e-6
)

// Source is the cache of confirmed primes consulted for trial division.
type Source interface {
	Contains(v uint64) bool
	// UpTo returns the cached primes <= limit in ascending order.
	UpTo(limit uint64) []uint64
}

// Options configures a Tester. Zero values select the defaults.
type Options struct {
	LargeThreshold    uint64
	FalsePositiveRate float64
	// Rand picks witness bases. It does not need to be cryptographically
	// strong.
	Rand *rand.Rand
}

// Tester classifies integers using a prime cache and a witness test.
// It is not safe for concurrent use.
type Tester struct {
	source    Source
	threshold uint64
	rounds    int
	rng       *rand.Rand
}

// New creates a Tester backed by source.
func New(source Source, opts Options) *Tester {
	t := &Tester{
		source:    source,
		threshold: opts.LargeThreshold,
		rounds:    Rounds(opts.FalsePositiveRate),
		rng:       opts.Rand,
	}
	if t.threshold == 0 {
		t.threshold = DefaultLargeThreshold
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return t
}

// Threshold returns the value at which the large path takes over.
func (t *Tester) Threshold() uint64 { return t.threshold }

// RoundCount returns the number of Miller–Rabin rounds per large test.
func (t *Tester) RoundCount() int { return t.rounds }

// IsLarge reports whether v is classified by the large path.
func (t *Tester) IsLarge(v uint64) bool { return v >= t.threshold }

// IsPrime is the standard path. The cache must hold every prime up to
// ISqrt(v).
func (t *Tester) IsPrime(v uint64) bool {
	if !filter.PossiblyPrime(v) {
		return false
	}
	if v <= 17 || t.source.Contains(v) {
		return true
	}
	return t.DefinitelyPrime(v)
}

// DefinitelyPrime trial-divides v by the cached primes above 13 and up to
// its square root. Divisors up to 13 are the filter chain's job.
func (t *Tester) DefinitelyPrime(v uint64) bool {
	for _, p := range t.source.UpTo(ISqrt(v)) {
		if p <= 13 {
			continue
		}
		if p >= v {
			break
		}
		if v%p == 0 {
			return false
		}
	}
	return true
}

// IsPrimeLarge is the probabilistic path. A false result is always correct;
// a true result is wrong with probability below the configured rate.
func (t *Tester) IsPrimeLarge(v uint64) bool {
	if !filter.PossiblyPrimeLarge(v) {
		return false
	}
	// No factor up to 19 and below 23², so prime.
	if v < 23*23 {
		return true
	}
	return MillerRabin(v, t.rounds, t.rng)
}

// Check dispatches on magnitude: IsPrime below the threshold, IsPrimeLarge
// at or above it.
func (t *Tester) Check(v uint64) bool {
	if t.IsLarge(v) {
		return t.IsPrimeLarge(v)
	}
	return t.IsPrime(v)
}

// Rounds returns the number of witness rounds k for which 4^-k does not
// exceed rate. Rates outside (0, 1) select DefaultFalsePositiveRate.
func Rounds(rate float64) int {
	if rate <= 0 || rate >= 1 {
		rate = DefaultFalsePositiveRate
	}
	k := int(math.Ceil(math.Log(1/rate) / math.Log(4)))
	return max(k, 1)
}

// ISqrt returns the largest r with r*r <= v.
func ISqrt(v uint64) uint64 {
	r := uint64(math.Sqrt(float64(v)))
	for r > 0 && (r > math.MaxUint32 || r*r > v) {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= v {
		r++
	}
	return r
}
