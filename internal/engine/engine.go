package engine

import (
	"context"
	"math/rand/v2"

	"github.com/dshills/primes/internal/cache"
	"github.com/dshills/primes/internal/primality"
)

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	LargeThreshold    uint64
	FalsePositiveRate float64
	ProgressEvery     uint64
	Progress          ProgressFunc
	Rand              *rand.Rand
}

// Engine answers prime queries and grows the cache as it goes. It is not
// safe for concurrent use.
type Engine struct {
	list          *cache.List
	tester        *primality.Tester
	progress      ProgressFunc
	progressEvery uint64
}

// New creates an Engine over list.
func New(list *cache.List, opts Options) *Engine {
	e := &Engine{
		list: list,
		tester: primality.New(list, primality.Options{
			LargeThreshold:    opts.LargeThreshold,
			FalsePositiveRate: opts.FalsePositiveRate,
			Rand:              opts.Rand,
		}),
		progress:      opts.Progress,
		progressEvery: opts.ProgressEvery,
	}
	if e.progressEvery == 0 {
		e.progressEvery = DefaultProgressEvery
	}
	return e
}

// Cache returns the list the engine reads and extends.
func (e *Engine) Cache() *cache.List {
	return e.list
}

// Tester returns the primality tester bound to the cache.
func (e *Engine) Tester() *primality.Tester {
	return e.tester
}

// isPrime classifies v by magnitude. Below the threshold the cache is first
// extended to the square root of v so trial division is complete.
func (e *Engine) isPrime(ctx context.Context, v uint64) (bool, error) {
	if v <= e.list.Max() {
		return e.list.Contains(v), nil
	}
	if e.tester.IsLarge(v) {
		return e.tester.IsPrimeLarge(v), nil
	}
	if err := e.ExtendTo(ctx, primality.ISqrt(v)); err != nil {
		return false, err
	}
	return e.tester.IsPrime(v), nil
}

func canceled(done <-chan struct{}) bool {
	select {
	case <-done:
		return true
	default:
		return false
	}
}
