// Package filter provides cheap exact divisibility tests by the primes up
// to 19, used to reject most composites before any trial division.
package filter
