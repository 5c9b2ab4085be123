// Package engine runs the prime operations on top of the prime cache and
// the primality tester.
//
// The cache is only ever extended contiguously, so it stays gap-free from 2
// up to its maximum and doubles as the trial-division source for the
// standard primality path. Queries that fall inside the cached region are
// answered from the cache; the rest scan candidates, polling the context
// before each one and reporting a [CanceledError] that carries the last
// fully tested candidate. An optional [ProgressFunc] observes long scans
// at a fixed iteration cadence.
//
// [Engine.Run] is the operation surface used by the CLI: check, list,
// highest, next, prev, count and factor, each producing a [Result].
package engine
