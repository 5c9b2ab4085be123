// Package primality classifies single integers as prime or composite.
//
// [Tester] has two paths selected by magnitude. Below the large-number
// threshold it applies the cheap divisibility chain and then trial-divides
// by cached primes, which requires the cache to be complete up to the
// square root of the value. At or above the threshold it applies the
// extended chain and a Miller–Rabin witness test whose round count is
// derived from a target false-positive rate.
//
// [WheelIsPrime] is an independent exact test using a modulus-30 wheel. It
// needs no cache and polls its context while it runs.
package primality
