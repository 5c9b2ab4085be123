// Primes is a prime number toolkit backed by a persistent cache.
//
// Every prime it confirms is kept, so later runs start where earlier ones
// stopped. Ctrl-C interrupts a long scan, keeps what was found and prints a
// partial result.
//
// Usage:
//
//	primes check 97                  # primality test
//	primes check 97 --method wheel   # exact test by wheel factorization
//	primes list 100                  # every prime up to 100
//	primes highest                   # largest cached prime
//	primes next 14                   # smallest prime after 14
//	primes prev 14                   # largest prime before 14
//	primes count 10 20               # primes in [10, 20]
//	primes factor 360                # prime factorization
//	primes cache show                # cache location and size
package main
