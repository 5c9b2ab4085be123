package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/primes/internal/engine"
)

// listWrap is the number of primes per line in text list output.
const listWrap = 10

// TextWriter outputs a human-readable answer.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, res *engine.Result) error {
	ew := &errWriter{w: w}

	ew.println(headline(res))

	if res.Operation == engine.OpList {
		for i := 0; i < len(res.Primes); i += listWrap {
			end := min(i+listWrap, len(res.Primes))
			ew.printf("  %s\n", joinUints(res.Primes[i:end], ", "))
		}
	}

	if res.Message != "" {
		ew.println(res.Message)
	}

	ew.println(strings.Repeat("─", 40))
	ew.printf("Cache: %d primes, max %d\n", res.Cache.Size, res.Cache.Max)
	ew.printf("Completed in %dms\n", res.Timing.TotalMs)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
