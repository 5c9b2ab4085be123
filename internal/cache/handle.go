package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Handle is a List bound to the Store it was loaded from. The list is
// written back exactly once, by Release.
type Handle struct {
	*List
	store    Store
	released bool
}

// Open loads the primes held by store. Storage that exists but cannot be
// parsed fails with an *InitializationError.
func Open(ctx context.Context, store Store) (*Handle, error) {
	primes, err := store.Load(ctx)
	if err != nil {
		if !IsInitializationError(err) {
			err = &InitializationError{Location: store.Location(), Err: err}
		}
		return nil, err
	}
	list := NewList(primes)
	logrus.WithFields(logrus.Fields{
		"store":  store.Location(),
		"primes": list.Len(),
		"max":    list.Max(),
	}).Debug("prime cache loaded")
	return &Handle{List: list, store: store}, nil
}

// Store returns the backing store.
func (h *Handle) Store() Store {
	return h.store
}

// Release persists the full list, overwriting the store. Calls after the
// first are no-ops.
func (h *Handle) Release(ctx context.Context) error {
	if h.released {
		return nil
	}
	h.released = true
	if err := h.store.Save(ctx, h.primes); err != nil {
		logrus.WithError(err).WithField("store", h.store.Location()).Warn("prime cache flush failed")
		return fmt.Errorf("flushing prime cache to %s: %w", h.store.Location(), err)
	}
	return nil
}

// With opens the cache, runs fn, and releases the cache on every exit path,
// including a panic in fn. A flush failure is joined with fn's error.
func With(ctx context.Context, store Store, fn func(h *Handle) error) (err error) {
	h, err := Open(ctx, store)
	if err != nil {
		return err
	}
	defer func() {
		// The flush must still run after the caller's context is canceled.
		if rerr := h.Release(context.WithoutCancel(ctx)); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()
	return fn(h)
}
