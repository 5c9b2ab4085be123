package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/primes/internal/engine"
)

// Writer writes a result in a specific format.
type Writer interface {
	Write(w io.Writer, res *engine.Result) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "yaml":
		return &YAMLWriter{}, nil
	case "markdown":
		return &MarkdownWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteResult writes the result to the specified output (file path or stdout).
func WriteResult(res *engine.Result, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	var w io.Writer
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	return writer.Write(w, res)
}

func joinUints(vals []uint64, sep string) string {
	var b strings.Builder
	for i, v := range vals {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(strconv.FormatUint(v, 10))
	}
	return b.String()
}

// headline is the one-sentence answer shared by the text and markdown
// writers.
func headline(res *engine.Result) string {
	arg := func(i int) uint64 {
		if i < len(res.Input) {
			return res.Input[i]
		}
		return 0
	}
	switch res.Operation {
	case engine.OpCheck:
		if res.IsPrime == nil {
			return fmt.Sprintf("Is %d prime? unknown", arg(0))
		}
		return fmt.Sprintf("Is %d prime? %t", arg(0), *res.IsPrime)
	case engine.OpList:
		return fmt.Sprintf("Primes up to %d (%d):", arg(0), len(res.Primes))
	case engine.OpHighest:
		if res.Value == nil {
			return "Highest known prime: none"
		}
		return fmt.Sprintf("Highest known prime: %d", *res.Value)
	case engine.OpNext:
		if res.Value == nil {
			return fmt.Sprintf("Next prime after %d: unknown", arg(0))
		}
		return fmt.Sprintf("Next prime after %d: %d", arg(0), *res.Value)
	case engine.OpPrevious:
		if res.Value == nil {
			return fmt.Sprintf("Previous prime before %d: none", arg(0))
		}
		return fmt.Sprintf("Previous prime before %d: %d", arg(0), *res.Value)
	case engine.OpCount:
		if res.Count == nil {
			return fmt.Sprintf("Primes in [%d, %d]: unknown", arg(0), arg(1))
		}
		return fmt.Sprintf("Primes in [%d, %d]: %d", arg(0), arg(1), *res.Count)
	case engine.OpFactor:
		if res.Factors == nil {
			return fmt.Sprintf("Prime factors of %d: unknown", arg(0))
		}
		if len(res.Factors) == 0 {
			return fmt.Sprintf("Prime factors of %d: none", arg(0))
		}
		return fmt.Sprintf("Prime factors of %d: %s", arg(0), joinUints(res.Factors, ", "))
	default:
		return string(res.Operation)
	}
}
