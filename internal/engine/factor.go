package engine

import "context"

// factorPollEvery is the number of trial divisors between context checks.
const factorPollEvery = 1024

// PrimeFactors returns the prime factors of v in ascending order, repeated
// per multiplicity. Values below 2 have no factors.
func (e *Engine) PrimeFactors(ctx context.Context, v uint64) ([]uint64, error) {
	factors := []uint64{}
	if v < 2 {
		return factors, nil
	}
	for v%2 == 0 {
		factors = append(factors, 2)
		v /= 2
	}

	done := ctx.Done()
	tk := e.ticker(OpFactor, 0)
	n := 0
	for d := uint64(3); d <= v/d; d += 2 {
		for v%d == 0 {
			factors = append(factors, d)
			v /= d
		}
		n++
		if n%factorPollEvery == 0 && canceled(done) {
			return factors, &CanceledError{Op: OpFactor, Last: d, Err: ctx.Err()}
		}
		tk.step(d, len(factors))
	}
	if v > 1 {
		factors = append(factors, v)
	}
	return factors, nil
}
