package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/primes/internal/engine"
)

func TestMarkdownWriter_List(t *testing.T) {
	res := &engine.Result{
		Operation: engine.OpList,
		Input:     []uint64{20},
		Primes:    []uint64{2, 3, 5, 7, 11, 13, 17, 19},
		Count:     intPtr(8),
		Cache:     engine.CacheInfo{Size: 8, Max: 19},
		Timing:    engine.Timing{TotalMs: 2},
	}

	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "## primes list") {
		t.Error("Should have heading")
	}
	if !strings.Contains(out, "<details>") {
		t.Error("Should have collapsible section")
	}
	if !strings.Contains(out, "2, 3, 5, 7, 11, 13, 17, 19") {
		t.Error("Should list the primes")
	}
	if !strings.Contains(out, "| 8 | 19 |") {
		t.Error("Should have cache table row")
	}
}

func TestMarkdownWriter_Canceled(t *testing.T) {
	res := &engine.Result{
		Operation: engine.OpCount,
		Input:     []uint64{1, 1000000},
		Canceled:  true,
		Message:   "interrupted: 10 primes cached, up to 29",
	}

	var buf bytes.Buffer
	w := &MarkdownWriter{}
	if err := w.Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Primes in [1, 1000000]: unknown") {
		t.Errorf("Should report unknown count, got:\n%s", out)
	}
	if !strings.Contains(out, ":warning: interrupted") {
		t.Error("Should flag the interruption")
	}
	if strings.Contains(out, "<details>") {
		t.Error("Non-list result should not have a collapsible section")
	}
}
