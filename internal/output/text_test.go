package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/primes/internal/engine"
)

func boolPtr(b bool) *bool     { return &b }
func uintPtr(v uint64) *uint64 { return &v }
func intPtr(n int) *int        { return &n }

func TestTextWriter_Headlines(t *testing.T) {
	tests := []struct {
		name string
		res  *engine.Result
		want string
	}{
		{"check prime", &engine.Result{Operation: engine.OpCheck, Input: []uint64{97}, IsPrime: boolPtr(true)}, "Is 97 prime? true"},
		{"check composite", &engine.Result{Operation: engine.OpCheck, Input: []uint64{91}, IsPrime: boolPtr(false)}, "Is 91 prime? false"},
		{"highest", &engine.Result{Operation: engine.OpHighest, Input: []uint64{}, Value: uintPtr(101)}, "Highest known prime: 101"},
		{"highest empty", &engine.Result{Operation: engine.OpHighest, Input: []uint64{}}, "Highest known prime: none"},
		{"next", &engine.Result{Operation: engine.OpNext, Input: []uint64{14}, Value: uintPtr(17)}, "Next prime after 14: 17"},
		{"prev", &engine.Result{Operation: engine.OpPrevious, Input: []uint64{14}, Value: uintPtr(13)}, "Previous prime before 14: 13"},
		{"prev none", &engine.Result{Operation: engine.OpPrevious, Input: []uint64{2}}, "Previous prime before 2: none"},
		{"count", &engine.Result{Operation: engine.OpCount, Input: []uint64{10, 20}, Count: intPtr(4)}, "Primes in [10, 20]: 4"},
		{"factor", &engine.Result{Operation: engine.OpFactor, Input: []uint64{360}, Factors: []uint64{2, 2, 2, 3, 3, 5}}, "Prime factors of 360: 2, 2, 2, 3, 3, 5"},
		{"factor one", &engine.Result{Operation: engine.OpFactor, Input: []uint64{1}, Factors: []uint64{}}, "Prime factors of 1: none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := &TextWriter{}
			if err := w.Write(&buf, tt.res); err != nil {
				t.Fatalf("Write error: %v", err)
			}
			first, _, _ := strings.Cut(buf.String(), "\n")
			if first != tt.want {
				t.Errorf("first line = %q, want %q", first, tt.want)
			}
		})
	}
}

func TestTextWriter_List(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}
	res := &engine.Result{
		Operation: engine.OpList,
		Input:     []uint64{31},
		Primes:    primes,
		Count:     intPtr(len(primes)),
		Cache:     engine.CacheInfo{Size: 11, Max: 31},
		Timing:    engine.Timing{TotalMs: 3},
	}

	var buf bytes.Buffer
	w := &TextWriter{}
	if err := w.Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Primes up to 31 (11):") {
		t.Error("Output should show list heading with count")
	}
	if !strings.Contains(out, "  2, 3, 5, 7, 11, 13, 17, 19, 23, 29\n  31\n") {
		t.Errorf("Output should wrap primes ten per line, got:\n%s", out)
	}
	if !strings.Contains(out, "Cache: 11 primes, max 31") {
		t.Error("Output should show cache summary")
	}
	if !strings.Contains(out, "Completed in 3ms") {
		t.Error("Output should show timing")
	}
}

func TestTextWriter_Canceled(t *testing.T) {
	res := &engine.Result{
		Operation: engine.OpList,
		Input:     []uint64{1000000},
		Canceled:  true,
		Message:   "interrupted: 120 primes cached, up to 661",
	}

	var buf bytes.Buffer
	w := &TextWriter{}
	if err := w.Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if !strings.Contains(buf.String(), "interrupted: 120 primes cached, up to 661") {
		t.Error("Output should include the interruption message")
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, bytes.ErrTooLarge }

func TestTextWriter_WriteError(t *testing.T) {
	res := &engine.Result{Operation: engine.OpHighest, Input: []uint64{}}
	w := &TextWriter{}
	if err := w.Write(failWriter{}, res); err == nil {
		t.Error("Expected error from failing writer")
	}
}

func TestGetWriter(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml", "markdown"} {
		if _, err := GetWriter(format); err != nil {
			t.Errorf("GetWriter(%q) error: %v", format, err)
		}
	}
	if _, err := GetWriter("sarif"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
