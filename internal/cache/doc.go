// Package cache holds the set of primes discovered so far and persists it
// between invocations.
//
// [List] is the in-memory ordered set. A [Store] loads and saves it: the
// default [FileStore] writes one decimal value per line under
// $XDG_CACHE_HOME/primes (or the OS-appropriate equivalent), and
// [RedisStore] keeps the set in a Redis sorted set. [With] ties a loaded
// list to the lifetime of one operation and flushes it exactly once on
// every exit path.
package cache
