package main

import (
	"os"

	"github.com/dshills/primes/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
