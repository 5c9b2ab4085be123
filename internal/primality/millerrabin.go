package primality

import (
	"math/bits"
	"math/rand/v2"
)

// MillerRabin runs k rounds of the witness test on n with random bases in
// [2, n-2]. It never reports a prime as composite. n must be odd and > 3.
func MillerRabin(n uint64, k int, rng *rand.Rand) bool {
	d := n - 1
	r := 0
	for d&1 == 0 {
		d >>= 1
		r++
	}

	for range k {
		a := 2 + rng.Uint64N(n-3)
		if !witnessPasses(n, a, d, r) {
			return false
		}
	}
	return true
}

// witnessPasses reports whether base a fails to prove n composite, where
// n-1 = 2^r * d with d odd.
func witnessPasses(n, a, d uint64, r int) bool {
	x := powMod(a, d, n)
	if x == 1 || x == n-1 {
		return true
	}
	for i := 1; i < r; i++ {
		x = mulMod(x, x, n)
		if x == n-1 {
			return true
		}
	}
	return false
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

func powMod(base, exp, m uint64) uint64 {
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}
