package engine

import (
	"context"
	"math"

	"github.com/dshills/primes/internal/primality"
	"github.com/sirupsen/logrus"
)

// ExtendTo tests every integer from just above the cache maximum (or 2)
// through bound and inserts each prime. The context is polled before every
// candidate; on cancellation the cache holds exactly the primes up to the
// returned CanceledError's Last.
func (e *Engine) ExtendTo(ctx context.Context, bound uint64) error {
	start := max(e.list.Max()+1, 2)
	if start > bound {
		return nil
	}

	done := ctx.Done()
	tk := e.ticker(OpExtend, bound)
	before := e.list.Len()
	for c := start; ; c++ {
		if canceled(done) {
			return &CanceledError{Op: OpExtend, Last: c - 1, Err: ctx.Err()}
		}
		if e.tester.IsPrime(c) {
			e.list.Insert(c)
		}
		tk.step(c, e.list.Len())
		if c == bound {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"op":    OpExtend,
		"from":  start,
		"to":    bound,
		"added": e.list.Len() - before,
	}).Debug("prime cache extended")
	return nil
}

// NextPrime returns the smallest prime strictly greater than start, or 2
// when start < 2. A prime found directly past the cache maximum is added to
// the cache.
func (e *Engine) NextPrime(ctx context.Context, start uint64) (uint64, error) {
	if start < 2 {
		return 2, nil
	}
	if p, ok := e.list.Successor(start); ok {
		return p, nil
	}
	if start == math.MaxUint64 {
		return 0, ErrOverflow
	}

	contiguous := e.list.Len() > 0 && start == e.list.Max()
	first := start + 1
	if first%2 == 0 {
		first++
	}

	done := ctx.Done()
	tk := e.ticker(OpNext, 0)
	for c := first; c > start; c += 2 {
		if canceled(done) {
			return 0, &CanceledError{Op: OpNext, Last: c - 2, Err: ctx.Err()}
		}
		ok, err := e.isPrime(ctx, c)
		if err != nil {
			return 0, err
		}
		if ok {
			if contiguous {
				e.list.Insert(c)
			}
			return c, nil
		}
		tk.step(c, 0)
	}
	return 0, ErrOverflow
}

// PreviousPrime returns the largest prime strictly less than start. The
// boolean is false when start <= 2, since no prime lies below 2.
func (e *Engine) PreviousPrime(ctx context.Context, start uint64) (uint64, bool, error) {
	if start <= 2 {
		return 0, false, nil
	}
	if start <= e.list.Max()+1 {
		if p, ok := e.list.Predecessor(start); ok {
			return p, true, nil
		}
	}

	c := start - 1
	if c > 2 && c%2 == 0 {
		c--
	}

	done := ctx.Done()
	tk := e.ticker(OpPrevious, 0)
	for ; c >= 3; c -= 2 {
		if c <= e.list.Max() {
			p, _ := e.list.Predecessor(c + 1)
			return p, true, nil
		}
		if canceled(done) {
			return 0, false, &CanceledError{Op: OpPrevious, Last: c + 2, Err: ctx.Err()}
		}
		ok, err := e.isPrime(ctx, c)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return c, true, nil
		}
		tk.step(c, 0)
	}
	return 2, true, nil
}

// CountInRange counts the primes in [lo, hi]. The cached part of the range
// is counted from the cache; the rest is scanned over odd candidates, with 2
// handled up front. When the scan starts right after the cache maximum the
// primes it confirms are added to the cache.
func (e *Engine) CountInRange(ctx context.Context, lo, hi uint64) (int, error) {
	if lo > hi {
		return 0, nil
	}

	top := e.list.Max()
	count := 0
	if lo <= top {
		count = e.list.CountBetween(lo, min(hi, top))
		if hi <= top {
			return count, nil
		}
	}

	from := max(lo, top+1)
	contiguous := from <= max(top+1, 2)
	if from <= 2 && hi >= 2 {
		count++
		if contiguous {
			e.list.Insert(2)
		}
	}

	first := max(from, 3)
	if first%2 == 0 {
		first++
	}
	if first > hi {
		return count, nil
	}

	done := ctx.Done()
	tk := e.ticker(OpCount, hi)
	for c := first; ; c += 2 {
		if canceled(done) {
			return count, &CanceledError{Op: OpCount, Last: c - 2, Err: ctx.Err()}
		}
		ok, err := e.isPrime(ctx, c)
		if err != nil {
			return count, err
		}
		if ok {
			count++
			if contiguous {
				e.list.Insert(c)
			}
		}
		tk.step(c, count)
		if hi-c < 2 {
			break
		}
	}
	return count, nil
}

// CheckPrime classifies v with the given method.
func (e *Engine) CheckPrime(ctx context.Context, v uint64, method Method) (bool, error) {
	switch method {
	case MethodTrial:
		if err := e.ExtendTo(ctx, primality.ISqrt(v)); err != nil {
			return false, err
		}
		return e.tester.IsPrime(v), nil
	case MethodWheel:
		ok, err := primality.WheelIsPrime(ctx, v)
		if err != nil {
			return false, &CanceledError{Op: OpCheck, Err: err}
		}
		return ok, nil
	default:
		return e.isPrime(ctx, v)
	}
}

// ListUpTo extends the cache through bound and returns the primes <= bound.
func (e *Engine) ListUpTo(ctx context.Context, bound uint64) ([]uint64, error) {
	if err := e.ExtendTo(ctx, bound); err != nil {
		return nil, err
	}
	return e.list.Between(2, bound), nil
}

// HighestKnown returns the cache maximum; false when the cache is empty.
func (e *Engine) HighestKnown() (uint64, bool) {
	if e.list.Len() == 0 {
		return 0, false
	}
	return e.list.Max(), true
}
