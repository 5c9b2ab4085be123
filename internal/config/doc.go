// Package config loads and merges primes configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (PRIMES_STORE, PRIMES_CACHE_FILE, PRIMES_FORMAT, etc.)
//  3. A .env file in the working directory
//  4. Config file ($XDG_CONFIG_HOME/primes/config.json)
//  5. Built-in defaults
//
// Use [Load] to obtain a merged and validated [Config], [Save] to write the
// config file, and [SetField] to update a single key.
package config
