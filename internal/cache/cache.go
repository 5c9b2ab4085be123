package cache

import (
	"slices"
	"sort"
)

// List is the ordered, deduplicated set of confirmed primes.
//
// Elements are strictly ascending at all times. Under normal operation the
// list is gap-free from 2 up to its maximum, which makes it usable as a
// trial-division source for any value up to Max()². List is not safe for
// concurrent mutation.
type List struct {
	primes []uint64
}

// NewList builds a List from arbitrary input, sorting and removing
// duplicates.
func NewList(values []uint64) *List {
	primes := slices.Clone(values)
	slices.Sort(primes)
	return &List{primes: slices.Compact(primes)}
}

// Len returns the number of cached primes.
func (l *List) Len() int {
	return len(l.primes)
}

// Max returns the largest known prime, or 0 if the list is empty.
func (l *List) Max() uint64 {
	if len(l.primes) == 0 {
		return 0
	}
	return l.primes[len(l.primes)-1]
}

// Contains reports whether v is in the list.
func (l *List) Contains(v uint64) bool {
	_, found := slices.BinarySearch(l.primes, v)
	return found
}

// Insert adds v if it is not already present, keeping ascending order.
// Appending past the maximum is the common case and costs O(1).
func (l *List) Insert(v uint64) bool {
	if n := len(l.primes); n == 0 || v > l.primes[n-1] {
		l.primes = append(l.primes, v)
		return true
	}
	i, found := slices.BinarySearch(l.primes, v)
	if found {
		return false
	}
	l.primes = slices.Insert(l.primes, i, v)
	return true
}

// UpTo returns the cached primes <= limit. The returned slice aliases the
// list and must not be modified.
func (l *List) UpTo(limit uint64) []uint64 {
	i := sort.Search(len(l.primes), func(i int) bool { return l.primes[i] > limit })
	return l.primes[:i:i]
}

// Between returns a copy of the cached primes in [lo, hi].
func (l *List) Between(lo, hi uint64) []uint64 {
	if lo > hi {
		return nil
	}
	start := sort.Search(len(l.primes), func(i int) bool { return l.primes[i] >= lo })
	end := sort.Search(len(l.primes), func(i int) bool { return l.primes[i] > hi })
	return slices.Clone(l.primes[start:end])
}

// CountBetween returns the number of cached primes in [lo, hi].
func (l *List) CountBetween(lo, hi uint64) int {
	if lo > hi {
		return 0
	}
	start := sort.Search(len(l.primes), func(i int) bool { return l.primes[i] >= lo })
	end := sort.Search(len(l.primes), func(i int) bool { return l.primes[i] > hi })
	return end - start
}

// Successor returns the smallest cached prime strictly greater than v.
func (l *List) Successor(v uint64) (uint64, bool) {
	i := sort.Search(len(l.primes), func(i int) bool { return l.primes[i] > v })
	if i == len(l.primes) {
		return 0, false
	}
	return l.primes[i], true
}

// Predecessor returns the largest cached prime strictly less than v.
func (l *List) Predecessor(v uint64) (uint64, bool) {
	i := sort.Search(len(l.primes), func(i int) bool { return l.primes[i] >= v })
	if i == 0 {
		return 0, false
	}
	return l.primes[i-1], true
}

// Primes returns a copy of the full ordered set.
func (l *List) Primes() []uint64 {
	return slices.Clone(l.primes)
}
