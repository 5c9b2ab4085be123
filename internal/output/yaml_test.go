package output

import (
	"bytes"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dshills/primes/internal/engine"
)

func TestYAMLWriter(t *testing.T) {
	res := &engine.Result{
		Operation: engine.OpFactor,
		Input:     []uint64{360},
		Factors:   []uint64{2, 2, 2, 3, 3, 5},
		Cache:     engine.CacheInfo{Size: 3, Max: 5},
	}

	var buf bytes.Buffer
	w := &YAMLWriter{}
	if err := w.Write(&buf, res); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var parsed engine.Result
	if err := yaml.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if parsed.Operation != engine.OpFactor {
		t.Errorf("Operation = %q, want %q", parsed.Operation, engine.OpFactor)
	}
	if len(parsed.Factors) != 6 || parsed.Factors[5] != 5 {
		t.Errorf("Factors = %v, want [2 2 2 3 3 5]", parsed.Factors)
	}
	if parsed.Cache.Size != 3 {
		t.Errorf("Cache.Size = %d, want 3", parsed.Cache.Size)
	}
}
