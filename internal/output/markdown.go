package output

import (
	"io"

	"github.com/dshills/primes/internal/engine"
)

// MarkdownWriter outputs a markdown summary suitable for notes or issues.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, res *engine.Result) error {
	ew := &errWriter{w: w}

	ew.printf("## primes %s\n\n", res.Operation)
	ew.printf("%s\n\n", headline(res))

	if res.Operation == engine.OpList && len(res.Primes) > 0 {
		ew.printf("<details>\n<summary>%d primes</summary>\n\n", len(res.Primes))
		ew.printf("```\n%s\n```\n\n", joinUints(res.Primes, ", "))
		ew.printf("</details>\n\n")
	}

	if res.Canceled {
		ew.printf("> :warning: %s\n\n", res.Message)
	} else if res.Message != "" {
		ew.printf("> %s\n\n", res.Message)
	}

	ew.printf("| Cache size | Largest cached |\n")
	ew.printf("|------------|----------------|\n")
	ew.printf("| %d | %d |\n\n", res.Cache.Size, res.Cache.Max)

	ew.printf("*Completed in %dms*\n", res.Timing.TotalMs)

	return ew.err
}
