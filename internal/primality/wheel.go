package primality

import "context"

var (
	wheelPrimes   = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	wheelResidues = [...]uint64{1, 7, 11, 13, 17, 19, 23, 29}
)

// wheelPollEvery is the number of wheel turns between context checks.
const wheelPollEvery = 1024

// WheelIsPrime is an exact test that checks the primes up to 29 and then
// only the candidate divisors congruent to 1, 7, 11, 13, 17, 19, 23 or 29
// modulo 30, up to the square root of v. It returns ctx.Err() if the
// context is done before a verdict.
func WheelIsPrime(ctx context.Context, v uint64) (bool, error) {
	if v < 2 {
		return false, nil
	}
	for _, p := range wheelPrimes {
		if v == p {
			return true, nil
		}
		if v%p == 0 {
			return false, nil
		}
	}

	done := ctx.Done()
	for base, turns := uint64(30), 0; ; base, turns = base+30, turns+1 {
		for _, r := range wheelResidues {
			d := base + r
			if d > v/d {
				return true, nil
			}
			if v%d == 0 {
				return false, nil
			}
		}
		if turns%wheelPollEvery == 0 {
			select {
			case <-done:
				return false, ctx.Err()
			default:
			}
		}
	}
}
