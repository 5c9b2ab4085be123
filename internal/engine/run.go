package engine

import (
	"context"
	"fmt"
	"time"
)

// Run executes req and returns its Result. If the context is canceled the
// result is still returned, marked Canceled with a partial-progress
// message, together with the *CanceledError.
func (e *Engine) Run(ctx context.Context, req Request) (*Result, error) {
	want, ok := arity[req.Op]
	if !ok {
		return nil, fmt.Errorf("unknown operation %q", req.Op)
	}
	if len(req.Args) != want {
		return nil, fmt.Errorf("%s takes %d argument(s), got %d", req.Op, want, len(req.Args))
	}

	start := time.Now()
	res := &Result{Operation: req.Op, Input: req.Args}
	if res.Input == nil {
		res.Input = []uint64{}
	}

	var err error
	switch req.Op {
	case OpCheck:
		res.Method = req.Method
		if res.Method == "" {
			res.Method = MethodAuto
		}
		var prime bool
		if prime, err = e.CheckPrime(ctx, req.Args[0], res.Method); err == nil {
			res.IsPrime = &prime
		}
	case OpList:
		res.Primes, err = e.ListUpTo(ctx, req.Args[0])
		if err == nil {
			n := len(res.Primes)
			res.Count = &n
		}
	case OpHighest:
		if v, ok := e.HighestKnown(); ok {
			res.Value = &v
		} else {
			res.Message = "no primes cached yet"
		}
	case OpNext:
		var v uint64
		if v, err = e.NextPrime(ctx, req.Args[0]); err == nil {
			res.Value = &v
		}
	case OpPrevious:
		var (
			v     uint64
			found bool
		)
		if v, found, err = e.PreviousPrime(ctx, req.Args[0]); err == nil {
			if found {
				res.Value = &v
			} else {
				res.Message = "no prime below 2"
			}
		}
	case OpCount:
		var n int
		n, err = e.CountInRange(ctx, req.Args[0], req.Args[1])
		if err == nil {
			res.Count = &n
		}
	case OpFactor:
		res.Factors, err = e.PrimeFactors(ctx, req.Args[0])
	}

	res.Cache = CacheInfo{Size: e.list.Len(), Max: e.list.Max()}
	res.Timing = Timing{TotalMs: time.Since(start).Milliseconds()}

	if err != nil {
		if IsCanceled(err) {
			res.Canceled = true
			res.Factors = nil
			res.Message = fmt.Sprintf("interrupted: %d primes cached, up to %d", res.Cache.Size, res.Cache.Max)
			return res, err
		}
		return nil, err
	}
	return res, nil
}
