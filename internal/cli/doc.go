// Package cli wires together the Cobra command tree for the primes binary.
//
// Each operation command (check, list, highest, next, prev, count, factor)
// loads layered configuration, opens the configured cache store, runs one
// engine request while a progress indicator draws on stderr, flushes the
// cache on every exit path and writes the result in the requested format.
// SIGINT and SIGTERM cancel the running scan; the partial result is still
// printed and the process exits with ExitCanceled.
package cli
