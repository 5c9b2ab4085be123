package primality

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/dshills/primes/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bruteForce(n uint64) bool {
	if n < 2 {
		return false
	}
	for i := uint64(2); i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func sieveList(limit uint64) *cache.List {
	var primes []uint64
	for v := uint64(2); v <= limit; v++ {
		if bruteForce(v) {
			primes = append(primes, v)
		}
	}
	return cache.NewList(primes)
}

func newTestTester(source Source) *Tester {
	return New(source, Options{Rand: rand.New(rand.NewPCG(1, 2))})
}

func TestIsPrime_MatchesBruteForce(t *testing.T) {
	tester := newTestTester(sieveList(100))
	for v := uint64(0); v < 10000; v++ {
		if got, want := tester.IsPrime(v), bruteForce(v); got != want {
			t.Fatalf("IsPrime(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestIsPrimeLarge_MatchesBruteForce(t *testing.T) {
	tester := newTestTester(cache.NewList(nil))
	for v := uint64(0); v < 10000; v++ {
		if got, want := tester.IsPrimeLarge(v), bruteForce(v); got != want {
			t.Fatalf("IsPrimeLarge(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestIsPrime_Scenarios(t *testing.T) {
	tester := newTestTester(sieveList(100))
	assert.True(t, tester.IsPrime(97))
	assert.False(t, tester.IsPrime(100))
	assert.True(t, tester.IsPrime(2))
	assert.True(t, tester.IsPrime(3))
	assert.False(t, tester.IsPrime(1))
	assert.False(t, tester.IsPrime(0))
	assert.False(t, tester.IsPrime(289), "17² must be caught by trial division")
	assert.False(t, tester.IsPrime(9991), "97 * 103")
}

func TestDefinitelyPrime_UsesOnlyDivisorsAboveThirteen(t *testing.T) {
	tester := newTestTester(sieveList(100))
	// 3 * 5 * 7 is left to the filter chain.
	assert.True(t, tester.DefinitelyPrime(105))
	assert.False(t, tester.DefinitelyPrime(17*19))
}

func TestIsPrimeLarge_KnownValues(t *testing.T) {
	tester := newTestTester(cache.NewList(nil))

	primes := []uint64{
		10_000_019,
		998_244_353,
		1_000_000_007,
		999_999_999_989,
		2_305_843_009_213_693_951,
		18_446_744_073_709_551_557,
	}
	for _, p := range primes {
		assert.True(t, tester.IsPrimeLarge(p), "IsPrimeLarge(%d)", p)
	}

	composites := []uint64{
		10_000_000,
		1_000_000_007 * 998_244_353,
		3_215_031_751,     // strong pseudoprime to bases 2, 3, 5, 7
		2_152_302_898_747, // strong pseudoprime to bases 2 through 11
		4_294_967_297,     // 641 * 6700417
		math.MaxUint64,
	}
	for _, c := range composites {
		assert.False(t, tester.IsPrimeLarge(c), "IsPrimeLarge(%d)", c)
	}
}

func TestCheck_Dispatch(t *testing.T) {
	tester := New(sieveList(100), Options{LargeThreshold: 1000, Rand: rand.New(rand.NewPCG(3, 4))})
	assert.Equal(t, uint64(1000), tester.Threshold())
	assert.False(t, tester.IsLarge(999))
	assert.True(t, tester.IsLarge(1000))
	for v := uint64(0); v < 10000; v++ {
		require.Equal(t, bruteForce(v), tester.Check(v), "Check(%d)", v)
	}
}

func TestNew_Defaults(t *testing.T) {
	tester := New(cache.NewList(nil), Options{})
	assert.Equal(t, uint64(DefaultLargeThreshold), tester.Threshold())
	assert.Equal(t, 10, tester.RoundCount())
}

func TestRounds(t *testing.T) {
	tests := []struct {
		rate float64
		want int
	}{
		{1e-6, 10},
		{1e-3, 5},
		{0.25, 1},
		{0.5, 1},
		{1e-12, 20},
		{0, 10},
		{-1, 10},
		{1, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Rounds(tt.rate), "Rounds(%g)", tt.rate)
	}
}

func TestISqrt(t *testing.T) {
	const m = math.MaxUint32
	tests := []struct {
		v, want uint64
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{99, 9},
		{100, 10},
		{10_000_000, 3162},
		{m * m, m},
		{m*m - 1, m - 1},
		{math.MaxUint64, m},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ISqrt(tt.v), "ISqrt(%d)", tt.v)
	}
}

func TestWheelIsPrime_MatchesBruteForce(t *testing.T) {
	ctx := context.Background()
	for v := uint64(0); v < 10000; v++ {
		got, err := WheelIsPrime(ctx, v)
		require.NoError(t, err)
		if got != bruteForce(v) {
			t.Fatalf("WheelIsPrime(%d) = %v, want %v", v, got, !got)
		}
	}
}

func TestWheelIsPrime_Large(t *testing.T) {
	ctx := context.Background()
	ok, err := WheelIsPrime(ctx, 999_999_999_989)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = WheelIsPrime(ctx, 999_983*999_979)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWheelIsPrime_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := WheelIsPrime(ctx, 2_305_843_009_213_693_951)
	assert.ErrorIs(t, err, context.Canceled)

	// Small values finish before the first poll.
	ok, err := WheelIsPrime(ctx, 97)
	require.NoError(t, err)
	assert.True(t, ok)
}
